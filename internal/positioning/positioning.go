package positioning

import (
	"context"
	"errors"
	"time"

	"storesense/internal/geo"
)

// Errors callers branch on. Permission denial should surface a prompt, not a
// silent retry; unavailability may be retried or served from a cached fix.
var (
	ErrPermissionDenied = errors.New("location permission denied")
	ErrUnavailable      = errors.New("location unavailable")
)

// Permission is the platform authorization state for location access.
type Permission int

const (
	// PermissionGranted allows fixes.
	PermissionGranted Permission = iota
	// PermissionDenied was refused but the platform allows asking again.
	PermissionDenied
	// PermissionBlocked was permanently refused; only OS settings can undo it.
	PermissionBlocked
)

// Fix is a raw position delivered by the platform sensor.
type Fix struct {
	Point      geo.Point
	AccuracyM  float64
	ObservedAt time.Time
}

// WatchConfig carries the platform's stream rate-limit parameters. These are
// configuration passed through to the sensor, not logic reimplemented here.
type WatchConfig struct {
	MinInterval      time.Duration
	MinDisplacementM float64
}

// Sensor is the platform location boundary. Fix may return a cached platform
// fix; Source enforces freshness. Watch delivers fixes until the returned
// stop function is called.
type Sensor interface {
	Permission(ctx context.Context) (Permission, error)
	RequestPermission(ctx context.Context) (Permission, error)
	Fix(ctx context.Context) (Fix, error)
	Watch(ctx context.Context, cfg WatchConfig, onFix func(Fix), onErr func(error)) (stop func(), err error)
}
