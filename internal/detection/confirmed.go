package detection

import (
	"context"
	"fmt"
	"sync"
)

// ConfirmedSet tracks the store IDs the user has explicitly verified. It is
// empty at cold start, loaded from durable storage on init, appended to via
// confirmation or manual selection, and never implicitly cleared.
type ConfirmedSet struct {
	mu      sync.RWMutex
	ids     map[string]struct{}
	storage ConfirmedStorage
}

// NewConfirmedSet wraps the storage boundary. Call Load before first use.
func NewConfirmedSet(storage ConfirmedStorage) *ConfirmedSet {
	return &ConfirmedSet{ids: make(map[string]struct{}), storage: storage}
}

// Load replaces the in-memory set with the persisted one.
func (c *ConfirmedSet) Load(ctx context.Context) error {
	ids, err := c.storage.Load(ctx)
	if err != nil {
		return fmt.Errorf("load confirmed set: %w", err)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ids = ids
	return nil
}

// Contains reports whether a store was confirmed before.
func (c *ConfirmedSet) Contains(storeID string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.ids[storeID]
	return ok
}

// Confirm inserts a store ID and persists a snapshot. Idempotent: confirming
// an already-confirmed store changes nothing and skips the storage write.
func (c *ConfirmedSet) Confirm(ctx context.Context, storeID string) error {
	c.mu.Lock()
	if _, ok := c.ids[storeID]; ok {
		c.mu.Unlock()
		return nil
	}
	c.ids[storeID] = struct{}{}
	snapshot := make(map[string]struct{}, len(c.ids))
	for id := range c.ids {
		snapshot[id] = struct{}{}
	}
	c.mu.Unlock()

	if err := c.storage.Save(ctx, snapshot); err != nil {
		return fmt.Errorf("persist confirmed set: %w", err)
	}
	return nil
}
