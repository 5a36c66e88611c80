package provider

import (
	"context"
	"log/slog"
	"time"

	"github.com/vaporkeys/storefront/pkg/cache"
	"github.com/vaporkeys/storefront/pkg/domain"
	"github.com/vaporkeys/storefront/pkg/provider/content"
)

// CachedContentStore implements content.Store with read-through caching.
// The content-store webhook clears the cache when documents change.
type CachedContentStore struct {
	next   content.Store
	cache  cache.ProductCache
	ttl    time.Duration
	logger *slog.Logger
}

// NewCachedContentStore creates a new CachedContentStore.
func NewCachedContentStore(
	next content.Store,
	productCache cache.ProductCache,
	ttl time.Duration,
	logger *slog.Logger,
) *CachedContentStore {
	return &CachedContentStore{
		next:   next,
		cache:  productCache,
		ttl:    ttl,
		logger: logger,
	}
}

// GetProductByUID fetches a product by UID, using cache.
func (c *CachedContentStore) GetProductByUID(
	ctx context.Context,
	uid string,
) (*domain.Product, error) {
	if product, err := c.cache.Get(ctx, uid); err == nil && product != nil {
		c.logger.Debug("Cache hit for product", "uid", uid)
		return product, nil
	} else if err != nil {
		c.logger.Error("Error getting product from cache", "uid", uid, "error", err)
	}

	c.logger.Debug("Cache miss for product, fetching from content store", "uid", uid)

	product, err := c.next.GetProductByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if err := c.cache.Set(ctx, uid, product, c.ttl); err != nil {
		c.logger.Error("Error caching product", "uid", uid, "error", err)
	}

	return product, nil
}
