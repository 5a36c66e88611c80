// Package webapi provides the HTTP surface of the storefront. It is
// organized into sub-packages:
// - checkout: checkout-session creation endpoint
// - success: order-confirmation page
// - revalidate: content-store cache webhook
package webapi

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/gofiber/template/html/v2"

	"github.com/vaporkeys/storefront/pkg/config"
	checkoutsvc "github.com/vaporkeys/storefront/pkg/service/checkout"
	"github.com/vaporkeys/storefront/web"
	checkoutweb "github.com/vaporkeys/storefront/webapi/checkout"
	"github.com/vaporkeys/storefront/webapi/common"
	"github.com/vaporkeys/storefront/webapi/revalidate"
	successweb "github.com/vaporkeys/storefront/webapi/success"
)

// New builds the checkout service from deps and returns the Fiber app with
// all routes and middleware registered.
func New(deps config.Deps) *fiber.App {
	checkoutSvc := checkoutsvc.New(
		deps.ContentStore,
		deps.PaymentProvider,
		deps.Logger,
	)

	engine := html.NewFileSystem(web.Views(), ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				status = fiberErr.Code
			}
			return common.ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	// Configure rate limiting middleware
	// Uses X-Forwarded-For header when behind a proxy
	// Falls back to X-Real-IP or direct IP if needed
	app.Use(limiter.New(limiter.Config{
		Max:        deps.Config.RateLimit.MaxRequests,
		Expiration: deps.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(
				c,
				fiber.StatusTooManyRequests,
				"Too Many Requests",
				"Rate limit exceeded",
			)
		},
	}))
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New())

	// Storefront landing page; also the cancel-URL target.
	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("home", fiber.Map{
			"ProductUID": deps.Config.Content.DefaultProductUID,
		})
	})
	app.Use("/static", filesystem.New(filesystem.Config{
		Root: web.Static(),
	}))

	checkoutweb.Routes(app, checkoutSvc, deps.Logger)
	successweb.Routes(app, checkoutSvc, deps.Logger)
	revalidate.Routes(app, deps.ProductCache, deps.Logger)

	return app
}
