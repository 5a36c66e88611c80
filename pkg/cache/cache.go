package cache

import (
	"context"
	"time"

	"github.com/vaporkeys/storefront/pkg/domain"
)

// ProductCache defines the interface for caching product documents fetched
// from the content store. Get returns (nil, nil) on a miss or expired entry.
type ProductCache interface {
	Get(ctx context.Context, uid string) (*domain.Product, error)
	Set(ctx context.Context, uid string, product *domain.Product, ttl time.Duration) error
	Delete(ctx context.Context, uid string) error
	Clear(ctx context.Context) error
}
