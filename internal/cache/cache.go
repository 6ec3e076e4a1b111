// Package cache provides a generic TTL cache with per-entry expiry
package cache

import (
	"sync"
	"time"
)

const sweepInterval = time.Minute

// item wraps a cached value with its expiration time
type item[T any] struct {
	value     T
	expiresAt time.Time
}

// Cache is a generic thread-safe cache. Each entry carries its own TTL,
// so feeds with very different refresh rates can share one cache type.
type Cache[T any] struct {
	items map[string]item[T]
	mu    sync.RWMutex
	stop  chan struct{}
}

// New creates a cache and starts its background sweep goroutine
func New[T any]() *Cache[T] {
	c := &Cache[T]{
		items: make(map[string]item[T]),
		stop:  make(chan struct{}),
	}
	go c.cleanup()
	return c
}

// Get retrieves a value, returning (value, true) if found and not expired
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, exists := c.items[key]
	if !exists || time.Now().After(item.expiresAt) {
		var zero T
		return zero, false
	}
	return item.value, true
}

// Set stores a value that expires after ttl
func (c *Cache[T]) Set(key string, value T, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = item[T]{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

// GetOrLoad returns the cached value for key, or runs loader and caches
// its result for ttl. The loader runs outside the cache lock; a failed
// load caches nothing, so the next call retries.
func (c *Cache[T]) GetOrLoad(key string, ttl time.Duration, loader func() (T, error)) (T, error) {
	if value, ok := c.Get(key); ok {
		return value, nil
	}

	value, err := loader()
	if err != nil {
		var zero T
		return zero, err
	}

	c.Set(key, value, ttl)
	return value, nil
}

// Invalidate removes a key from the cache
func (c *Cache[T]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Clear removes all items from the cache
func (c *Cache[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]item[T])
}

// Size returns the number of items (including expired)
func (c *Cache[T]) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Close stops the background cleanup goroutine
func (c *Cache[T]) Close() {
	close(c.stop)
}

// cleanup runs periodically to remove expired items
func (c *Cache[T]) cleanup() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stop:
			return
		}
	}
}

func (c *Cache[T]) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for key, item := range c.items {
		if now.After(item.expiresAt) {
			delete(c.items, key)
		}
	}
}
