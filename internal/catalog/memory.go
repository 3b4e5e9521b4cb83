package catalog

import (
	"context"
	"sort"
	"sync"

	"storesense/internal/geo"
)

// Memory is an in-memory catalog for tests and development wiring. It
// intentionally favors clarity over performance: a linear haversine scan is
// plenty for the store counts it is meant to hold.
type Memory struct {
	mu     sync.RWMutex
	stores []Store
}

// NewMemory builds a catalog over a fixed store snapshot.
func NewMemory(stores ...Store) *Memory {
	return &Memory{stores: stores}
}

// Add inserts or replaces a store by ID.
func (m *Memory) Add(store Store) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, s := range m.stores {
		if s.ID == store.ID {
			m.stores[i] = store
			return
		}
	}
	m.stores = append(m.stores, store)
}

func (m *Memory) FetchNearby(_ context.Context, p geo.Point, radiusM float64) ([]Store, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	type scored struct {
		store    Store
		distance float64
	}
	var hits []scored
	for _, s := range m.stores {
		if d := geo.Distance(p, s.Location); d <= radiusM {
			hits = append(hits, scored{store: s, distance: d})
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].distance < hits[j].distance })

	out := make([]Store, len(hits))
	for i, h := range hits {
		out[i] = h.store
	}
	return out, nil
}

func (m *Memory) SearchByText(_ context.Context, query string) ([]Store, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Store
	for _, s := range m.stores {
		if s.MatchesQuery(query) {
			out = append(out, s)
		}
	}
	return out, nil
}
