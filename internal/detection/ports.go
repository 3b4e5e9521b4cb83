package detection

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"storesense/internal/catalog"
	"storesense/internal/events"
	"storesense/internal/geo"
	"storesense/internal/wireless"
)

// PositionSource delivers device positions, single-shot and streamed.
type PositionSource interface {
	Current(ctx context.Context) (geo.Point, error)
	Watch(onUpdate func(geo.Point), onError func(error)) (Canceler, error)
}

// Canceler tears down a position stream. Cancel must be idempotent.
type Canceler interface {
	Cancel()
}

// WirelessSensor exposes the platform wireless state.
type WirelessSensor interface {
	Current(ctx context.Context) (*wireless.Observation, error)
	Scan(ctx context.Context) ([]wireless.Observation, error)
}

// Catalog is the external store directory.
type Catalog interface {
	FetchNearby(ctx context.Context, p geo.Point, radiusM float64) ([]catalog.Store, error)
	SearchByText(ctx context.Context, query string) ([]catalog.Store, error)
}

// ConfirmedStorage persists the set of user-verified store IDs.
type ConfirmedStorage interface {
	Load(ctx context.Context) (map[string]struct{}, error)
	Save(ctx context.Context, ids map[string]struct{}) error
}

// EventSink receives detection lifecycle events, fire-and-forget.
type EventSink interface {
	Emit(ctx context.Context, event events.Event) error
}
