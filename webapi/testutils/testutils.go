package testutils

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gofiber/fiber/v2"

	infracache "github.com/vaporkeys/storefront/infra/cache"
	"github.com/vaporkeys/storefront/pkg/cache"
	"github.com/vaporkeys/storefront/pkg/config"
	"github.com/vaporkeys/storefront/pkg/provider/content"
	"github.com/vaporkeys/storefront/pkg/provider/payment"
	"github.com/vaporkeys/storefront/webapi"
)

// NewTestApp builds a Fiber app wired with the given fakes and a test
// configuration. Pass nil for productCache to get a fresh in-memory cache.
func NewTestApp(
	store content.Store,
	payments payment.Provider,
	productCache cache.ProductCache,
) *fiber.App {
	if productCache == nil {
		productCache = infracache.NewMemoryCache()
	}
	return webapi.New(config.Deps{
		ContentStore:    store,
		PaymentProvider: payments,
		ProductCache:    productCache,
		Logger:          slog.Default(),
		Config: &config.App{
			Env: "test",
			Server: &config.Server{
				Scheme: "http",
				Host:   "localhost",
				Port:   3000,
			},
			Content: &config.Content{
				DefaultProductUID: "vapor75",
			},
			RateLimit: &config.RateLimit{
				MaxRequests: 100,
				Window:      time.Minute,
			},
		},
	})
}

// MakeRequest is a helper for making HTTP requests against a test app.
func MakeRequest(app *fiber.App, method, path, body string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	resp, err := app.Test(req, 1000000)
	if err != nil {
		panic(err) // For standalone tests, panic on error
	}
	return resp
}
