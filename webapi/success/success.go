package success

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/vaporkeys/storefront/pkg/domain"
	checkoutsvc "github.com/vaporkeys/storefront/pkg/service/checkout"
)

// Messages shown on the confirmation page. Mirrors the storefront copy.
const (
	MsgSessionIDNotFound = "Không tìm thấy ID phiên"
	MsgOrderLookupFailed = "Không thể tải thông tin đơn hàng"
)

// Routes registers the order-confirmation page.
func Routes(app *fiber.App, svc *checkoutsvc.Service, logger *slog.Logger) {
	app.Get("/success", GetSuccess(svc, logger))
}

// GetSuccess returns a Fiber handler that renders the order-confirmation
// page for the session_id query parameter, or a problem page when the id
// is missing or the session cannot be retrieved. Retrieval failures are
// logged server-side only.
func GetSuccess(svc *checkoutsvc.Service, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sessionID := c.Query("session_id")

		confirmation, err := svc.Confirm(c.Context(), sessionID)
		if err != nil {
			if errors.Is(err, domain.ErrMissingSessionID) {
				return c.Render("problem", fiber.Map{
					"Detail": MsgSessionIDNotFound,
				})
			}
			logger.Error(
				"failed to retrieve checkout session",
				"session_id", sessionID,
				"error", err,
			)
			return c.Render("problem", fiber.Map{
				"Detail": MsgOrderLookupFailed,
			})
		}

		return c.Render("success", fiber.Map{
			"SessionID":     confirmation.SessionID,
			"CustomerEmail": confirmation.CustomerEmail,
			"Amount":        confirmation.Amount,
		})
	}
}
