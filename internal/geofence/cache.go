package geofence

import (
	"sync"
	"time"
)

// DefaultCacheTTL bounds how long a resolved fence is reused before being
// recomputed from the store's authoritative definition.
const DefaultCacheTTL = 5 * time.Minute

type cacheEntry struct {
	fence    Fence
	cachedAt time.Time
}

// Cache is an explicit expiring map keyed by store ID. Eviction is a pure
// function of wall-clock time; the clock is injectable so expiry is testable
// without sleeping. Safe for concurrent use.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithTTL overrides the default entry lifetime.
func WithTTL(ttl time.Duration) CacheOption {
	return func(c *Cache) { c.ttl = ttl }
}

// WithClock overrides the wall clock, for tests.
func WithClock(now func() time.Time) CacheOption {
	return func(c *Cache) { c.now = now }
}

// NewCache constructs an empty cache with the default TTL.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     DefaultCacheTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Get returns the cached fence for a store, or false on a miss or an expired
// entry. Expired entries are removed lazily on the next Get.
func (c *Cache) Get(storeID string) (Fence, bool) {
	c.mu.RLock()
	entry, ok := c.entries[storeID]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.cachedAt) > c.ttl {
		c.mu.Lock()
		// Re-check under the write lock; another goroutine may have refreshed.
		if cur, ok := c.entries[storeID]; ok && cur.cachedAt == entry.cachedAt {
			delete(c.entries, storeID)
		}
		c.mu.Unlock()
		return nil, false
	}
	return entry.fence, true
}

// Set stores or refreshes the fence for a store.
func (c *Cache) Set(storeID string, f Fence) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[storeID] = cacheEntry{fence: f, cachedAt: c.now()}
}

// Invalidate drops the entry for a store, if present.
func (c *Cache) Invalidate(storeID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, storeID)
}

// Len reports the number of entries, including any not yet lazily expired.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
