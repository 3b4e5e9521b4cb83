package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application. Components take
// it by pointer and tolerate nil so tests can skip registration entirely.
type Metrics struct {
	DetectionsTotal   *prometheus.CounterVec
	DetectionLatency  prometheus.Histogram
	PositionFailures  *prometheus.CounterVec
	FenceCacheHits    prometheus.Counter
	FenceCacheMisses  prometheus.Counter
	InvalidFences     prometheus.Counter
	SuspiciousFences  prometheus.Counter
	HTTPLatency       *prometheus.HistogramVec
	ConfirmationsSeen prometheus.Counter
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		DetectionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "storesense_detections_total",
			Help: "Detection passes by resulting method (none when no store matched)",
		}, []string{"method"}),
		DetectionLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "storesense_detection_duration_seconds",
			Help:    "End-to-end latency of a detection pass",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 15},
		}),
		PositionFailures: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "storesense_position_failures_total",
			Help: "Position acquisition failures by kind",
		}, []string{"kind"}),
		FenceCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "storesense_fence_cache_hits_total",
			Help: "Geofence cache hits",
		}),
		FenceCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "storesense_fence_cache_misses_total",
			Help: "Geofence cache misses",
		}),
		InvalidFences: promauto.NewCounter(prometheus.CounterOpts{
			Name: "storesense_invalid_fences_total",
			Help: "Catalog geofences that failed validation and were replaced by a synthesized default",
		}),
		SuspiciousFences: promauto.NewCounter(prometheus.CounterOpts{
			Name: "storesense_suspicious_fences_total",
			Help: "Valid geofences flagged as implausibly large",
		}),
		HTTPLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "storesense_http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "status"}),
		ConfirmationsSeen: promauto.NewCounter(prometheus.CounterOpts{
			Name: "storesense_store_confirmations_total",
			Help: "User confirmations of detected stores, including manual selections",
		}),
	}
}

// ObserveDetection records one detection pass.
func (m *Metrics) ObserveDetection(method string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.DetectionsTotal.WithLabelValues(method).Inc()
	m.DetectionLatency.Observe(elapsed.Seconds())
}

// IncPositionFailure counts a failed acquisition.
func (m *Metrics) IncPositionFailure(kind string) {
	if m == nil {
		return
	}
	m.PositionFailures.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncFenceCacheHit() {
	if m == nil {
		return
	}
	m.FenceCacheHits.Inc()
}

func (m *Metrics) IncFenceCacheMiss() {
	if m == nil {
		return
	}
	m.FenceCacheMisses.Inc()
}

func (m *Metrics) IncInvalidFence() {
	if m == nil {
		return
	}
	m.InvalidFences.Inc()
}

func (m *Metrics) IncSuspiciousFence() {
	if m == nil {
		return
	}
	m.SuspiciousFences.Inc()
}

func (m *Metrics) IncConfirmation() {
	if m == nil {
		return
	}
	m.ConfirmationsSeen.Inc()
}
