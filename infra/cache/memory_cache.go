package cache

import (
	"context"
	"sync"
	"time"

	"github.com/vaporkeys/storefront/pkg/domain"
)

// MemoryCache implements cache.ProductCache using in-memory storage
type MemoryCache struct {
	cache     map[string]*cacheEntry
	mu        sync.RWMutex
	done      chan struct{}
	closeOnce sync.Once
}

type cacheEntry struct {
	product   *domain.Product
	expiresAt time.Time
}

// NewMemoryCache creates a new in-memory product cache
func NewMemoryCache() *MemoryCache {
	cache := &MemoryCache{
		cache: make(map[string]*cacheEntry),
		done:  make(chan struct{}),
	}

	// Start cleanup goroutine
	go cache.cleanup()

	return cache
}

// Close stops the cleanup goroutine. Safe to call more than once.
func (c *MemoryCache) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
	})
}

// Get retrieves a product from cache
func (c *MemoryCache) Get(_ context.Context, uid string) (*domain.Product, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.cache[uid]
	if !exists {
		return nil, nil
	}

	if time.Now().After(entry.expiresAt) {
		return nil, nil
	}

	return entry.product, nil
}

// Set stores a product in cache with TTL
func (c *MemoryCache) Set(
	_ context.Context,
	uid string,
	product *domain.Product,
	ttl time.Duration,
) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache[uid] = &cacheEntry{
		product:   product,
		expiresAt: time.Now().Add(ttl),
	}

	return nil
}

// Delete removes a product from cache
func (c *MemoryCache) Delete(_ context.Context, uid string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.cache, uid)
	return nil
}

// Clear drops every cached product. Used by the revalidation webhook.
func (c *MemoryCache) Clear(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cache = make(map[string]*cacheEntry)
	return nil
}

// cleanup removes expired entries from cache
func (c *MemoryCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.mu.Lock()
			now := time.Now()
			for uid, entry := range c.cache {
				if now.After(entry.expiresAt) {
					delete(c.cache, uid)
				}
			}
			c.mu.Unlock()
		}
	}
}
