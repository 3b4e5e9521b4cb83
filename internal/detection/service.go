package detection

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"storesense/internal/catalog"
	"storesense/internal/geo"
	"storesense/internal/geofence"
	"storesense/internal/platform/metrics"
	"storesense/internal/positioning"
	"storesense/internal/wireless"
)

// Candidate stores are fetched well beyond the match threshold so wireless
// matching and the nearby list see stores GPS alone would miss.
const candidateRadiusFactor = 3

// Config holds the engine tunables.
type Config struct {
	// MaxDistanceM is the distance-fallback match threshold.
	MaxDistanceM float64
	// WatchRadiusM is the candidate search radius in continuous mode.
	WatchRadiusM float64
	// WirelessFallback lets a pass continue on wireless signals alone when
	// position acquisition fails. Off by default: callers should know GPS
	// was unavailable.
	WirelessFallback bool
}

func (c Config) withDefaults() Config {
	if c.MaxDistanceM <= 0 {
		c.MaxDistanceM = 50
	}
	if c.WatchRadiusM <= 0 {
		c.WatchRadiusM = 150
	}
	return c
}

// Service is the detection orchestrator. Construct one per process and share
// it; all state (fence cache, confirmed set, candidate cache) is
// mutex-guarded.
type Service struct {
	logger    *slog.Logger
	tracer    trace.Tracer
	metrics   *metrics.Metrics
	positions PositionSource
	wifi      WirelessSensor
	catalog   Catalog
	confirmed *ConfirmedSet
	fences    *geofence.Cache
	events    EventSink
	cfg       Config

	mu             sync.Mutex
	lastCandidates []catalog.Store
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

// WithMetrics enables Prometheus instrumentation.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// WithPositionSource wires the GPS boundary. Without it, only explicit-signal
// detection (DetectAt) works.
func WithPositionSource(src PositionSource) Option {
	return func(s *Service) { s.positions = src }
}

// WithWirelessSensor wires the wireless boundary.
func WithWirelessSensor(sensor WirelessSensor) Option {
	return func(s *Service) { s.wifi = sensor }
}

// WithEventSink streams detection events.
func WithEventSink(sink EventSink) Option {
	return func(s *Service) { s.events = sink }
}

// WithFenceCache overrides the default geofence cache (tests tune the TTL).
func WithFenceCache(cache *geofence.Cache) Option {
	return func(s *Service) { s.fences = cache }
}

// WithConfig overrides the engine tunables.
func WithConfig(cfg Config) Option {
	return func(s *Service) { s.cfg = cfg.withDefaults() }
}

// New constructs the orchestrator. The catalog and confirmed-store storage
// are required; sensors and sinks are optional boundaries.
func New(cat Catalog, storage ConfirmedStorage, opts ...Option) (*Service, error) {
	if cat == nil {
		return nil, fmt.Errorf("detection: catalog is required")
	}
	if storage == nil {
		return nil, fmt.Errorf("detection: confirmed-store storage is required")
	}
	s := &Service{
		logger:    slog.Default(),
		tracer:    otel.Tracer("storesense/detection"),
		catalog:   cat,
		confirmed: NewConfirmedSet(storage),
		fences:    geofence.NewCache(),
		cfg:       Config{}.withDefaults(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Init loads the confirmed-store set from durable storage.
func (s *Service) Init(ctx context.Context) error {
	return s.confirmed.Load(ctx)
}

// Detect runs one full detection pass against the live sensors.
func (s *Service) Detect(ctx context.Context) (Result, error) {
	ctx, span := s.tracer.Start(ctx, "detection.detect")
	defer span.End()
	start := time.Now()

	point, observations, posErr := s.acquire(ctx)
	if posErr != nil {
		kind := "unavailable"
		if errors.Is(posErr, positioning.ErrPermissionDenied) {
			kind = "permission_denied"
		}
		s.metrics.IncPositionFailure(kind)
		if !s.cfg.WirelessFallback || len(observations) == 0 {
			return Result{}, posErr
		}
		s.logger.Warn("position unavailable, continuing wireless-only", "error", posErr)
	}

	result := s.evaluate(ctx, point, observations, s.cfg.MaxDistanceM*candidateRadiusFactor)
	s.metrics.ObserveDetection(methodLabel(result), time.Since(start))
	s.emitDetection(ctx, result)
	return result, nil
}

// DetectAt runs one detection pass over signals the caller already has, e.g.
// a fix and scan shipped by the mobile app in an HTTP request. No sensors are
// touched.
func (s *Service) DetectAt(ctx context.Context, point geo.Point, observations []wireless.Observation) (Result, error) {
	ctx, span := s.tracer.Start(ctx, "detection.detect_at")
	defer span.End()
	start := time.Now()

	result := s.evaluate(ctx, &point, observations, s.cfg.MaxDistanceM*candidateRadiusFactor)
	s.metrics.ObserveDetection(methodLabel(result), time.Since(start))
	s.emitDetection(ctx, result)
	return result, nil
}

func methodLabel(r Result) string {
	if r.Store == nil {
		return "none"
	}
	return string(r.Method)
}

// acquire gathers the GPS fix and wireless observations concurrently. The
// two acquisitions have no ordering dependency; fusion waits for both.
func (s *Service) acquire(ctx context.Context) (*geo.Point, []wireless.Observation, error) {
	var (
		point        *geo.Point
		observations []wireless.Observation
		posErr       error
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if s.positions == nil {
			posErr = fmt.Errorf("%w: no position source configured", positioning.ErrUnavailable)
			return nil
		}
		p, err := s.positions.Current(gctx)
		if err != nil {
			posErr = err
			return nil
		}
		point = &p
		return nil
	})
	g.Go(func() error {
		observations = s.gatherWireless(gctx)
		return nil
	})
	_ = g.Wait()

	return point, observations, posErr
}

// gatherWireless collects the current association plus a best-effort scan.
// Unsupported platforms degrade to no observations, never to an error.
func (s *Service) gatherWireless(ctx context.Context) []wireless.Observation {
	if s.wifi == nil {
		return nil
	}

	var out []wireless.Observation
	seen := make(map[wireless.Network]bool)

	current, err := s.wifi.Current(ctx)
	switch {
	case errors.Is(err, wireless.ErrUnsupported):
		return nil
	case err != nil:
		s.logger.Debug("current wireless lookup failed", "error", err)
	case current != nil && current.Usable():
		out = append(out, *current)
		seen[current.Network] = true
	}

	scanned, err := s.wifi.Scan(ctx)
	if err != nil && !errors.Is(err, wireless.ErrUnsupported) {
		s.logger.Debug("wireless scan failed", "error", err)
	}
	for _, obs := range scanned {
		if obs.Usable() && !seen[obs.Network] {
			out = append(out, obs)
			seen[obs.Network] = true
		}
	}
	return out
}

// evaluate is steps 2-6 of a detection pass: candidates, two-pass GPS match,
// wireless match, fusion, confirmation policy. Geometry never suspends; the
// only awaits happened upstream in acquire.
func (s *Service) evaluate(ctx context.Context, point *geo.Point, observations []wireless.Observation, searchRadiusM float64) Result {
	ctx, span := s.tracer.Start(ctx, "detection.evaluate")
	defer span.End()

	candidates := s.candidates(ctx, point, searchRadiusM)

	gps := s.matchByPosition(point, candidates)
	wifi := s.matchByWireless(observations, candidates)
	result, agreed := fuse(gps, wifi, candidates)

	// Two independent signals naming the same store count as verification;
	// only single-signal matches below the threshold prompt the user.
	if result.Store != nil && !agreed {
		result.RequiresConfirmation = !s.confirmed.Contains(result.Store.ID) &&
			result.Confidence < confirmationThreshold
	}

	span.SetAttributes(
		attribute.String("detection.method", string(result.Method)),
		attribute.Int("detection.confidence", result.Confidence),
		attribute.Int("detection.candidates", len(candidates)),
	)
	return result
}

// candidates fetches nearby stores, falling back to the last snapshot when
// the catalog is unreachable or no position is available.
func (s *Service) candidates(ctx context.Context, point *geo.Point, radiusM float64) []catalog.Store {
	if point != nil {
		stores, err := s.catalog.FetchNearby(ctx, *point, radiusM)
		if err == nil {
			s.mu.Lock()
			s.lastCandidates = stores
			s.mu.Unlock()
			return stores
		}
		s.logger.Warn("catalog fetch failed, using cached candidates", "error", err)
	}
	return s.cachedCandidates()
}

func (s *Service) cachedCandidates() []catalog.Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastCandidates
}

type gpsMatch struct {
	store      catalog.Store
	distanceM  float64
	inside     bool
	confidence int
}

type wifiMatch struct {
	store      catalog.Store
	confidence int
}

// matchByPosition is the two-pass selection. Pass 1: geofence containment,
// ties broken by distance to the containing store's own center; any
// containment beats pass 2. Pass 2: nearest candidate within the match
// threshold.
func (s *Service) matchByPosition(point *geo.Point, candidates []catalog.Store) *gpsMatch {
	if point == nil || len(candidates) == 0 {
		return nil
	}

	var best *gpsMatch
	for i := range candidates {
		store := candidates[i]
		fence := s.fenceFor(store)
		if !geofence.Contains(*point, fence) {
			continue
		}
		d := geo.Distance(*point, store.Location)
		if best == nil || d < best.distanceM {
			best = &gpsMatch{
				store:      store,
				distanceM:  d,
				inside:     true,
				confidence: geofence.Confidence(d, true, geofence.EdgeMargin(*point, fence)),
			}
		}
	}
	if best != nil {
		return best
	}

	for i := range candidates {
		store := candidates[i]
		d := geo.Distance(*point, store.Location)
		if d > s.cfg.MaxDistanceM {
			continue
		}
		if best == nil || d < best.distanceM {
			best = &gpsMatch{
				store:      store,
				distanceM:  d,
				confidence: geofence.Confidence(d, false, 0),
			}
		}
	}
	return best
}

// fenceFor resolves a store's effective fence: cache, then the catalog
// definition (validated), then a synthesized default. Invalid definitions
// degrade to the default rather than aborting the pass.
func (s *Service) fenceFor(store catalog.Store) geofence.Fence {
	if fence, ok := s.fences.Get(store.ID); ok {
		s.metrics.IncFenceCacheHit()
		return fence
	}
	s.metrics.IncFenceCacheMiss()

	fence := store.Fence
	if fence != nil {
		if err := geofence.Validate(fence); err != nil {
			s.logger.Warn("invalid geofence, synthesizing default",
				"store_id", store.ID,
				"error", err,
			)
			s.metrics.IncInvalidFence()
			fence = nil
		} else if geofence.IsSuspicious(fence) {
			s.logger.Warn("suspiciously large geofence", "store_id", store.ID)
			s.metrics.IncSuspiciousFence()
		}
	}
	if fence == nil {
		fence = geofence.SynthesizeDefault(store.Location, store.Chain, store.Name)
	}

	s.fences.Set(store.ID, fence)
	return fence
}

// matchByWireless scores observations against candidate networks and keeps
// the best store.
func (s *Service) matchByWireless(observations []wireless.Observation, candidates []catalog.Store) *wifiMatch {
	if len(observations) == 0 || len(candidates) == 0 {
		return nil
	}

	index := make(map[string][]wireless.Network, len(candidates))
	byID := make(map[string]catalog.Store, len(candidates))
	for _, c := range candidates {
		if len(c.Networks) == 0 {
			continue
		}
		index[c.ID] = c.Networks
		byID[c.ID] = c
	}

	matches := wireless.MatchStores(observations, index)
	if len(matches) == 0 {
		return nil
	}
	return &wifiMatch{store: byID[matches[0].StoreID], confidence: matches[0].Confidence}
}
