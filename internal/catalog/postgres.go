package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"strings"

	_ "github.com/lib/pq"

	"storesense/internal/geo"
	"storesense/internal/geofence"
	"storesense/internal/wireless"
)

// Postgres is a catalog backed by a stores table. Nearby queries use a
// bounding-box SQL pre-filter (index-friendly range conditions on lat/lng)
// and refine with haversine in Go, mirroring how the geofence engine treats
// bounding boxes as a cheap rejection step.
type Postgres struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgres wraps an open database handle.
func NewPostgres(db *sql.DB, logger *slog.Logger) *Postgres {
	return &Postgres{db: db, logger: logger}
}

// EnsureSchema creates the stores table when absent. Production deployments
// run migrations instead; this keeps dev wiring and integration tests lean.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := p.db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS stores (
			id          TEXT PRIMARY KEY,
			name        TEXT NOT NULL,
			chain       TEXT NOT NULL DEFAULT '',
			address     TEXT NOT NULL DEFAULT '',
			postal_code TEXT NOT NULL DEFAULT '',
			lat         DOUBLE PRECISION NOT NULL,
			lng         DOUBLE PRECISION NOT NULL,
			fence       JSONB,
			networks    JSONB
		)`)
	if err != nil {
		return fmt.Errorf("ensure stores schema: %w", err)
	}
	_, err = p.db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS stores_lat_lng_idx ON stores (lat, lng)`)
	if err != nil {
		return fmt.Errorf("ensure stores index: %w", err)
	}
	return nil
}

// Upsert writes a store row, replacing any existing definition.
func (p *Postgres) Upsert(ctx context.Context, store Store) error {
	var fenceJSON []byte
	if store.Fence != nil {
		encoded, err := geofence.Encode(store.Fence)
		if err != nil {
			return fmt.Errorf("upsert store %s: %w", store.ID, err)
		}
		fenceJSON = encoded
	}
	networksJSON, err := json.Marshal(store.Networks)
	if err != nil {
		return fmt.Errorf("upsert store %s: %w", store.ID, err)
	}

	_, err = p.db.ExecContext(ctx, `
		INSERT INTO stores (id, name, chain, address, postal_code, lat, lng, fence, networks)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			chain = EXCLUDED.chain,
			address = EXCLUDED.address,
			postal_code = EXCLUDED.postal_code,
			lat = EXCLUDED.lat,
			lng = EXCLUDED.lng,
			fence = EXCLUDED.fence,
			networks = EXCLUDED.networks`,
		store.ID, store.Name, store.Chain, store.Address, store.PostalCode,
		store.Location.Lat, store.Location.Lng, nullableBytes(fenceJSON), networksJSON)
	if err != nil {
		return fmt.Errorf("upsert store %s: %w", store.ID, err)
	}
	return nil
}

func nullableBytes(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return b
}

func (p *Postgres) FetchNearby(ctx context.Context, pt geo.Point, radiusM float64) ([]Store, error) {
	// Degree window slightly wider than the radius; haversine refines below.
	dLat := radiusM / 111132.0
	dLng := radiusM / (111320.0 * math.Max(0.01, math.Cos(pt.Lat*math.Pi/180)))

	rows, err := p.db.QueryContext(ctx, `
		SELECT id, name, chain, address, postal_code, lat, lng, fence, networks
		FROM stores
		WHERE lat BETWEEN $1 AND $2 AND lng BETWEEN $3 AND $4`,
		pt.Lat-dLat, pt.Lat+dLat, pt.Lng-dLng, pt.Lng+dLng)
	if err != nil {
		return nil, fmt.Errorf("fetch nearby stores: %w", err)
	}
	defer rows.Close()

	type scored struct {
		store    Store
		distance float64
	}
	var hits []scored
	for rows.Next() {
		store, err := p.scanStore(rows)
		if err != nil {
			return nil, err
		}
		if d := geo.Distance(pt, store.Location); d <= radiusM {
			hits = append(hits, scored{store: store, distance: d})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("fetch nearby stores: %w", err)
	}

	sort.Slice(hits, func(i, j int) bool { return hits[i].distance < hits[j].distance })
	out := make([]Store, len(hits))
	for i, h := range hits {
		out[i] = h.store
	}
	return out, nil
}

// escapeLike neutralizes LIKE metacharacters so user queries match them
// literally.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func (p *Postgres) SearchByText(ctx context.Context, query string) ([]Store, error) {
	pattern := "%" + escapeLike(query) + "%"
	rows, err := p.db.QueryContext(ctx, `
		SELECT id, name, chain, address, postal_code, lat, lng, fence, networks
		FROM stores
		WHERE name ILIKE $1 OR chain ILIKE $1 OR address ILIKE $1 OR postal_code ILIKE $1
		ORDER BY name`, pattern)
	if err != nil {
		return nil, fmt.Errorf("search stores: %w", err)
	}
	defer rows.Close()

	var out []Store
	for rows.Next() {
		store, err := p.scanStore(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, store)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search stores: %w", err)
	}
	return out, nil
}

func (p *Postgres) scanStore(rows *sql.Rows) (Store, error) {
	var (
		store        Store
		fenceJSON    []byte
		networksJSON []byte
	)
	if err := rows.Scan(&store.ID, &store.Name, &store.Chain, &store.Address,
		&store.PostalCode, &store.Location.Lat, &store.Location.Lng,
		&fenceJSON, &networksJSON); err != nil {
		return Store{}, fmt.Errorf("scan store row: %w", err)
	}

	if len(fenceJSON) > 0 {
		fence, err := geofence.Decode(fenceJSON)
		if err != nil {
			// Malformed fence data degrades the store to fence-less rather
			// than failing the whole query.
			if p.logger != nil {
				p.logger.Warn("dropping malformed geofence", "store_id", store.ID, "error", err)
			}
		} else {
			store.Fence = fence
		}
	}
	if len(networksJSON) > 0 {
		var networks []wireless.Network
		if err := json.Unmarshal(networksJSON, &networks); err != nil {
			return Store{}, fmt.Errorf("decode networks for store %s: %w", store.ID, err)
		}
		store.Networks = networks
	}
	return store, nil
}
