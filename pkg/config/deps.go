package config

import (
	"log/slog"

	"github.com/vaporkeys/storefront/pkg/cache"
	"github.com/vaporkeys/storefront/pkg/provider/content"
	"github.com/vaporkeys/storefront/pkg/provider/payment"
)

// Deps holds all infrastructure dependencies for building the app and services.
type Deps struct {
	ContentStore    content.Store
	PaymentProvider payment.Provider
	ProductCache    cache.ProductCache
	Logger          *slog.Logger
	Config          *App
}
