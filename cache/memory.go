package cache

import (
	"sync"
	"time"
)

// entry holds a cached report with its insertion time.
type entry struct {
	value   string
	savedAt time.Time
}

// MemoryCache is a thread-safe in-memory report cache with TTL support.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
}

// NewMemoryCache creates an in-memory cache. A zero or negative ttl means
// entries never expire.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl < 0 {
		ttl = 0
	}
	return &MemoryCache{
		entries: make(map[string]entry),
		ttl:     ttl,
	}
}

// Get retrieves a report. Expired entries are removed on access.
func (c *MemoryCache) Get(key string) (string, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return "", false
	}
	if c.ttl > 0 && time.Since(e.savedAt) > c.ttl {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return "", false
	}
	return e.value, true
}

// Set stores a report. It never fails.
func (c *MemoryCache) Set(key string, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, savedAt: time.Now()}
	return nil
}

// Clear removes all entries.
func (c *MemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Entries returns all non-expired entries, used for cache export.
func (c *MemoryCache) Entries() map[string]string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]string, len(c.entries))
	now := time.Now()
	for key, e := range c.entries {
		if c.ttl > 0 && now.Sub(e.savedAt) > c.ttl {
			continue
		}
		out[key] = e.value
	}
	return out
}

var _ ReportCache = (*MemoryCache)(nil)
