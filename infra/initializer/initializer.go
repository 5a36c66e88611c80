package initializer

import (
	"fmt"
	"log/slog"

	infracache "github.com/vaporkeys/storefront/infra/cache"
	infraprovider "github.com/vaporkeys/storefront/infra/provider"
	"github.com/vaporkeys/storefront/infra/provider/prismic"
	"github.com/vaporkeys/storefront/infra/provider/stripepayment"
	"github.com/vaporkeys/storefront/pkg/cache"
	"github.com/vaporkeys/storefront/pkg/config"
	"github.com/vaporkeys/storefront/pkg/provider/content"
)

// InitializeDependencies builds the infrastructure dependencies: logger,
// content store (optionally cached), product cache, and payment provider.
func InitializeDependencies(cfg *config.App) (*config.Deps, error) {
	logger := setupLogger(cfg.Log)

	if cfg.PaymentProviders == nil ||
		cfg.PaymentProviders.Stripe == nil ||
		cfg.PaymentProviders.Stripe.ApiKey == "" {
		return nil, fmt.Errorf("stripe API key is not configured")
	}

	productCache, err := buildProductCache(cfg.Content, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize product cache: %w", err)
	}

	var store content.Store = prismic.New(cfg.Content, logger)
	if cfg.Content.CacheTTL > 0 {
		logger.Info("Product caching enabled", "ttl", cfg.Content.CacheTTL)
		store = infraprovider.NewCachedContentStore(
			store,
			productCache,
			cfg.Content.CacheTTL,
			logger,
		)
	}

	payments := stripepayment.New(cfg.PaymentProviders.Stripe, logger)

	return &config.Deps{
		ContentStore:    store,
		PaymentProvider: payments,
		ProductCache:    productCache,
		Logger:          logger,
		Config:          cfg,
	}, nil
}

// buildProductCache picks Redis when a cache URL is configured, otherwise
// an in-memory cache.
func buildProductCache(
	cfg *config.Content,
	logger *slog.Logger,
) (cache.ProductCache, error) {
	if cfg.CacheUrl != "" {
		logger.Info("Using Redis product cache", "prefix", cfg.CachePrefix)
		return infracache.NewRedisProductCache(cfg.CacheUrl, cfg.CachePrefix, logger)
	}
	return infracache.NewMemoryCache(), nil
}
