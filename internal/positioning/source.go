package positioning

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"storesense/internal/geo"
)

// Defaults for single-shot acquisition.
const (
	DefaultTimeout   = 15 * time.Second
	DefaultMaxFixAge = 10 * time.Second
)

// Source wraps the platform sensor with permission handling, fix freshness,
// and subscription bookkeeping.
type Source struct {
	sensor    Sensor
	logger    *slog.Logger
	timeout   time.Duration
	maxFixAge time.Duration
	watchCfg  WatchConfig
	now       func() time.Time
}

// Option configures a Source.
type Option func(*Source)

// WithTimeout bounds a single-shot acquisition.
func WithTimeout(d time.Duration) Option {
	return func(s *Source) { s.timeout = d }
}

// WithMaxFixAge sets the acceptable age of a cached platform fix.
func WithMaxFixAge(d time.Duration) Option {
	return func(s *Source) { s.maxFixAge = d }
}

// WithWatchConfig sets the continuous-stream rate-limit parameters.
func WithWatchConfig(cfg WatchConfig) Option {
	return func(s *Source) { s.watchCfg = cfg }
}

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Source) { s.now = now }
}

// New constructs a Source over a platform sensor.
func New(sensor Sensor, logger *slog.Logger, opts ...Option) (*Source, error) {
	if sensor == nil {
		return nil, fmt.Errorf("positioning: sensor is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Source{
		sensor:    sensor,
		logger:    logger,
		timeout:   DefaultTimeout,
		maxFixAge: DefaultMaxFixAge,
		watchCfg:  WatchConfig{MinInterval: 5 * time.Second, MinDisplacementM: 10},
		now:       time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// Distance returns the great-circle distance between two points in meters.
func (s *Source) Distance(a, b geo.Point) float64 {
	return geo.Distance(a, b)
}

// Current acquires a fresh position, bounded by the configured timeout. A
// cached platform fix older than the max fix age is rejected and re-requested
// within the remaining deadline.
func (s *Source) Current(ctx context.Context) (geo.Point, error) {
	if err := s.ensurePermission(ctx); err != nil {
		return geo.Point{}, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	// One retry: the first Fix may hand back a stale cached position.
	for attempt := 0; attempt < 2; attempt++ {
		fix, err := s.sensor.Fix(ctx)
		if err != nil {
			if errors.Is(err, ErrPermissionDenied) {
				return geo.Point{}, err
			}
			return geo.Point{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		if s.now().Sub(fix.ObservedAt) <= s.maxFixAge {
			return fix.Point, nil
		}
		s.logger.Debug("rejecting stale position fix",
			"age", s.now().Sub(fix.ObservedAt),
			"max_age", s.maxFixAge,
		)
	}
	return geo.Point{}, fmt.Errorf("%w: only stale fixes available", ErrUnavailable)
}

func (s *Source) ensurePermission(ctx context.Context) error {
	perm, err := s.sensor.Permission(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	switch perm {
	case PermissionGranted:
		return nil
	case PermissionBlocked:
		return ErrPermissionDenied
	}

	// Denied but askable: prompt once.
	perm, err = s.sensor.RequestPermission(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if perm != PermissionGranted {
		return ErrPermissionDenied
	}
	return nil
}

// Subscription is a handle on a continuous position stream. Cancel is
// idempotent; once it returns, no further callbacks fire.
type Subscription struct {
	id   uuid.UUID
	mu   sync.Mutex
	done bool
	stop func()
}

// ID identifies the subscription in logs.
func (sub *Subscription) ID() uuid.UUID { return sub.id }

// Cancel tears the stream down. Safe to call multiple times.
func (sub *Subscription) Cancel() {
	sub.mu.Lock()
	if sub.done {
		sub.mu.Unlock()
		return
	}
	sub.done = true
	stop := sub.stop
	sub.mu.Unlock()

	// Outside the lock: the sensor's stop may wait for an in-flight callback,
	// and callbacks take the same lock in deliver.
	if stop != nil {
		stop()
	}
}

// deliver runs a callback unless the subscription was canceled. Holding the
// lock across the callback is what makes Cancel's no-further-callbacks
// guarantee synchronous.
func (sub *Subscription) deliver(f func()) {
	sub.mu.Lock()
	defer sub.mu.Unlock()
	if sub.done {
		return
	}
	f()
}

// Watch starts a continuous stream. Updates and errors are delivered in the
// order the platform produces them.
func (s *Source) Watch(onUpdate func(geo.Point), onError func(error)) (*Subscription, error) {
	if err := s.ensurePermission(context.Background()); err != nil {
		return nil, err
	}

	sub := &Subscription{id: uuid.New()}
	stop, err := s.sensor.Watch(context.Background(), s.watchCfg,
		func(fix Fix) {
			sub.deliver(func() { onUpdate(fix.Point) })
		},
		func(err error) {
			if onError == nil {
				return
			}
			sub.deliver(func() { onError(fmt.Errorf("%w: %v", ErrUnavailable, err)) })
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	sub.stop = stop

	s.logger.Debug("position watch started", "subscription_id", sub.id)
	return sub, nil
}
