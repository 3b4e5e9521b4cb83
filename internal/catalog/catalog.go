package catalog

import (
	"context"

	"storesense/internal/geo"
)

// Catalog is the external store-directory collaborator. Results are a
// read-only snapshot valid for one detection pass.
type Catalog interface {
	// FetchNearby returns stores within radiusM meters of p, nearest first.
	FetchNearby(ctx context.Context, p geo.Point, radiusM float64) ([]Store, error)
	// SearchByText returns stores matching a free-text query.
	SearchByText(ctx context.Context, query string) ([]Store, error)
}
