// File: services/planner/cache.go
package planner

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"tripmesh/utils"

	"go.uber.org/zap"
)

// ResultCache is a process-wide expiring cache for enrichment lookups (POIs,
// hotels, transport quotes). Entries are stored and returned as deep copies
// so callers can mutate results without corrupting the cache, and expire
// lazily on the next access past the TTL. Concurrent requests share one
// instance; a lost update between two requests filling the same key is
// tolerated.
type ResultCache[T any] struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]cacheEntry
}

type cacheEntry struct {
	payload  []byte
	storedAt time.Time
}

// NewResultCache returns a cache whose entries expire after ttl.
func NewResultCache[T any](ttl time.Duration) *ResultCache[T] {
	return &ResultCache[T]{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]cacheEntry),
	}
}

// BuildCacheKey composes the canonical cache key from a subject name, a date
// (or "any") and a purpose tag.
func BuildCacheKey(name, date, tag string) string {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		normalized = "unknown"
	}
	if date == "" {
		date = "any"
	}
	return normalized + "|" + date + "|" + tag
}

// Get returns a deep copy of the stored payload when present and fresh.
// Stale entries are evicted and reported as a miss.
func (c *ResultCache[T]) Get(key string) (T, bool) {
	var zero T
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return zero, false
	}
	if c.now().Sub(entry.storedAt) > c.ttl {
		delete(c.entries, key)
		return zero, false
	}
	var out T
	if err := json.Unmarshal(entry.payload, &out); err != nil {
		delete(c.entries, key)
		return zero, false
	}
	return out, true
}

// Set stores a deep copy of the payload with the current timestamp,
// overwriting any prior entry for the key.
func (c *ResultCache[T]) Set(key string, payload T) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{payload: data, storedAt: c.now()}
}

// GetOrFetch returns the cached value for key, or runs fetch and populates
// the cache. Fetch failures degrade to the fallback value (which is cached
// too) so a transient provider outage costs one enrichment, not the request.
func (c *ResultCache[T]) GetOrFetch(key string, fetch func() (T, error), fallback T) T {
	if cached, ok := c.Get(key); ok {
		return cached
	}
	value, err := fetch()
	if err != nil {
		utils.GetLogger().Warn("cache fetch failed, using fallback",
			zap.String("key", key), zap.Error(err))
		value = fallback
	}
	c.Set(key, value)
	return value
}
