package catalog

import (
	"strings"

	"storesense/internal/geo"
	"storesense/internal/geofence"
	"storesense/internal/wireless"
)

// Store is a physical retail location as known to the catalog. The detection
// engine only reads stores; it may lazily attach a synthesized fence for a
// pass but never writes one back.
type Store struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Chain      string     `json:"chain,omitempty"`
	Address    string     `json:"address,omitempty"`
	PostalCode string     `json:"postal_code,omitempty"`
	Location   geo.Point  `json:"location"`
	// Fence is nil for stores without a registered boundary.
	Fence    geofence.Fence     `json:"-"`
	Networks []wireless.Network `json:"networks,omitempty"`
}

// MatchesQuery reports whether the store matches a free-text search: a
// case-insensitive substring test over name, chain, address, and postal code.
func (s Store) MatchesQuery(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return false
	}
	for _, field := range []string{s.Name, s.Chain, s.Address, s.PostalCode} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
