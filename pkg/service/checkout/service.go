package checkout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vaporkeys/storefront/pkg/domain"
	"github.com/vaporkeys/storefront/pkg/provider/content"
	"github.com/vaporkeys/storefront/pkg/provider/payment"
)

// Every session is created in USD with exactly one line item and
// quantity 1 (single-SKU storefront).
const (
	sessionCurrency = "usd"
	sessionQuantity = 1
)

// Service provides high-level operations for the checkout flow: starting a
// checkout session for a product and confirming a completed one. It holds
// no state across requests.
type Service struct {
	content  content.Store
	payments payment.Provider
	logger   *slog.Logger
}

// New creates a new checkout service with the given content store, payment
// provider, and logger.
func New(
	contentStore content.Store,
	payments payment.Provider,
	logger *slog.Logger,
) *Service {
	return &Service{
		content:  contentStore,
		payments: payments,
		logger:   logger,
	}
}

// Start creates a checkout session for the product identified by uid and
// returns the processor's redirect URL. The origin is used to build the
// success and cancel redirect targets; the success URL carries the
// processor's session-id placeholder so the confirmation page can resolve
// the session after payment.
func (s *Service) Start(
	ctx context.Context,
	uid string,
	origin string,
) (string, error) {
	if uid == "" {
		return "", domain.ErrMissingProductUID
	}

	product, err := s.content.GetProductByUID(ctx, uid)
	if err != nil {
		return "", fmt.Errorf("fetching product %q: %w", uid, err)
	}

	params := &payment.SessionParams{
		Currency:       sessionCurrency,
		ProductName:    product.Name,
		Description:    product.Description,
		ImageURL:       product.ImageURL,
		UnitAmount:     product.Price,
		Quantity:       sessionQuantity,
		SuccessURL:     origin + "/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:      origin + "/",
		IdempotencyKey: uuid.NewString(),
	}

	session, err := s.payments.CreateSession(ctx, params)
	if err != nil {
		return "", fmt.Errorf("creating checkout session for %q: %w", uid, err)
	}

	s.logger.Info(
		"checkout session started",
		"uid", uid,
		"session_id", session.ID,
	)
	return session.URL, nil
}

// Confirm retrieves the checkout session by its opaque ID and projects it
// into confirmation view data. An empty sessionID fails locally without
// calling the processor.
func (s *Service) Confirm(
	ctx context.Context,
	sessionID string,
) (*domain.Confirmation, error) {
	if sessionID == "" {
		return nil, domain.ErrMissingSessionID
	}

	session, err := s.payments.GetSession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("retrieving checkout session %q: %w", sessionID, err)
	}

	confirmation := &domain.Confirmation{
		SessionID:     session.ID,
		CustomerEmail: session.CustomerEmail,
	}
	if session.AmountTotal != 0 {
		confirmation.Amount = formatAmount(session.AmountTotal)
	}
	return confirmation, nil
}

// formatAmount converts a smallest-unit total into a two-decimal string,
// e.g. 12999 -> "129.99". Integer math only.
func formatAmount(total int64) string {
	return fmt.Sprintf("%d.%02d", total/100, total%100)
}
