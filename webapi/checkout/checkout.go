package checkout

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/vaporkeys/storefront/pkg/domain"
	checkoutsvc "github.com/vaporkeys/storefront/pkg/service/checkout"
)

// Routes registers HTTP routes for checkout-related operations.
func Routes(app *fiber.App, svc *checkoutsvc.Service, logger *slog.Logger) {
	// The uid segment is optional so a missing uid reaches the handler
	// and gets a 400 instead of the router's 404.
	app.Post("/api/checkout/:uid?", PostCheckout(svc, logger))
}

// PostCheckout returns a Fiber handler that creates a checkout session for
// the product identified by the route uid and responds with its URL.
// @Summary Create a checkout session
// @Description Creates a hosted-checkout session for the product and returns the redirect URL.
// @Tags checkout
// @Produce json
// @Param uid path string true "Product UID"
// @Success 200 {object} CheckoutResponse "Session created"
// @Failure 400 {object} ErrorResponse "Missing product uid"
// @Failure 500 {object} ErrorResponse "Session creation failed"
// @Router /api/checkout/{uid} [post]
func PostCheckout(svc *checkoutsvc.Service, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uid := c.Params("uid")

		origin := c.Get(fiber.HeaderOrigin)
		if origin == "" {
			origin = c.BaseURL()
		}

		url, err := svc.Start(c.Context(), uid, origin)
		if err != nil {
			if errors.Is(err, domain.ErrMissingProductUID) {
				return c.Status(fiber.StatusBadRequest).
					JSON(ErrorResponse{Error: MsgMissingProductUID})
			}
			logger.Error(
				"failed to create checkout session",
				"uid", uid,
				"error", err,
			)
			return c.Status(fiber.StatusInternalServerError).
				JSON(ErrorResponse{Error: MsgSessionCreateFailed})
		}

		return c.JSON(CheckoutResponse{URL: url})
	}
}
