package revalidate

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/vaporkeys/storefront/pkg/cache"
	"github.com/vaporkeys/storefront/webapi/common"
)

// RevalidateResponse reports a completed cache purge.
type RevalidateResponse struct {
	Revalidated bool  `json:"revalidated"`
	Now         int64 `json:"now"`
}

// Routes registers the content-revalidation webhook. The content store
// calls it when documents change so the next fetch is fresh.
func Routes(app *fiber.App, productCache cache.ProductCache, logger *slog.Logger) {
	app.Post("/api/revalidate", PostRevalidate(productCache, logger))
}

// PostRevalidate returns a Fiber handler that clears the product cache.
func PostRevalidate(productCache cache.ProductCache, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := productCache.Clear(c.Context()); err != nil {
			logger.Error("failed to clear product cache", "error", err)
			return common.ErrorResponseJSON(
				c,
				fiber.StatusInternalServerError,
				"Failed to revalidate content",
				nil,
			)
		}

		return c.JSON(RevalidateResponse{
			Revalidated: true,
			Now:         time.Now().UnixMilli(),
		})
	}
}
