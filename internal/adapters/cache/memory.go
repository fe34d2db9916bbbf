// Package cache holds the in-process feed page cache.
package cache

import (
	"context"
	"sync"
	"time"
)

// expired entries are swept on Set once the map holds this many keys
const sweepThreshold = 256

type entry struct {
	value   []byte
	expires time.Time
}

// PageCacheMemory process-local PageCache. Expired entries are dropped lazily on read.
type PageCacheMemory struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

// NewPageCacheMemory now may be nil, in which case time.Now is used
func NewPageCacheMemory(ttl time.Duration, now func() time.Time) *PageCacheMemory {
	if now == nil {
		now = time.Now
	}
	return &PageCacheMemory{
		ttl:     ttl,
		now:     now,
		entries: make(map[string]entry),
	}
}

func (c *PageCacheMemory) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false, nil
	}
	if !c.now().Before(e.expires) {
		delete(c.entries, key)
		return nil, false, nil
	}
	return e.value, true, nil
}

func (c *PageCacheMemory) Set(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if len(c.entries) >= sweepThreshold {
		for k, e := range c.entries {
			if !now.Before(e.expires) {
				delete(c.entries, k)
			}
		}
	}
	c.entries[key] = entry{value: value, expires: now.Add(c.ttl)}
	return nil
}

func (c *PageCacheMemory) Invalidate(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]entry)
	return nil
}

// Len number of stored entries, expired ones included until swept
func (c *PageCacheMemory) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
