// Package confirmedstore persists the set of store IDs the user has
// explicitly verified. The format is opaque to the engine; a JSON array of
// IDs is sufficient.
package confirmedstore

import "context"

// Store is the durable boundary for the confirmed-store set.
type Store interface {
	// Load returns the persisted set, empty when nothing was saved yet.
	Load(ctx context.Context) (map[string]struct{}, error)
	// Save replaces the persisted set with a snapshot.
	Save(ctx context.Context, ids map[string]struct{}) error
}
