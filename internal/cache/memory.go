package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache keeps a bounded set of recent provider bodies in process.
// The least recently used entry is evicted once capacity is reached.
type MemoryCache struct {
	lru *expirable.LRU[string, memoryEntry]
	now func() time.Time
}

// NewMemoryCache creates a cache holding at most capacity entries. Entries
// never outlive maxTTL; a shorter ttl passed to Set wins.
func NewMemoryCache(capacity int, maxTTL time.Duration) *MemoryCache {
	if capacity <= 0 {
		capacity = 1
	}
	return &MemoryCache{
		lru: expirable.NewLRU[string, memoryEntry](capacity, nil, maxTTL),
		now: time.Now,
	}
}

// Get returns the cached value when it exists and has not expired.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	e, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	if !c.now().Before(e.expiresAt) {
		c.lru.Remove(key)
		return nil, false
	}
	return e.value, true
}

// Set stores value under key for ttl.
func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) {
	if ttl <= 0 {
		return
	}
	c.lru.Add(key, memoryEntry{value: value, expiresAt: c.now().Add(ttl)})
}

// Len reports the number of stored entries.
func (c *MemoryCache) Len() int {
	return c.lru.Len()
}

// Ping always succeeds.
func (c *MemoryCache) Ping(context.Context) error { return nil }

// Close drops every entry.
func (c *MemoryCache) Close() error {
	c.lru.Purge()
	return nil
}
