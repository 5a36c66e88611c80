package stripepayment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/stripe/stripe-go/v82"

	"github.com/vaporkeys/storefront/pkg/config"
	"github.com/vaporkeys/storefront/pkg/provider/payment"
)

// Provider implements payment.Provider using the Stripe Checkout API.
// The client is constructed once here and injected wherever sessions are
// created or retrieved; there is no package-level state.
type Provider struct {
	client *stripe.Client
	logger *slog.Logger
}

// New creates a new Stripe payment provider with the given API key and
// logger.
func New(cfg *config.Stripe, logger *slog.Logger) *Provider {
	return &Provider{
		client: stripe.NewClient(cfg.ApiKey),
		logger: logger,
	}
}

// buildSessionParams maps provider-agnostic session params onto the Stripe
// request. Description and images are only present when the product carries
// them.
func buildSessionParams(p *payment.SessionParams) *stripe.CheckoutSessionCreateParams {
	productData := &stripe.CheckoutSessionCreateLineItemPriceDataProductDataParams{
		Name: stripe.String(p.ProductName),
	}
	if p.Description != "" {
		productData.Description = stripe.String(p.Description)
	}
	if p.ImageURL != "" {
		productData.Images = stripe.StringSlice([]string{p.ImageURL})
	}

	params := &stripe.CheckoutSessionCreateParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(p.SuccessURL),
		CancelURL:  stripe.String(p.CancelURL),
		LineItems: []*stripe.CheckoutSessionCreateLineItemParams{{
			PriceData: &stripe.CheckoutSessionCreateLineItemPriceDataParams{
				Currency:    stripe.String(p.Currency),
				ProductData: productData,
				UnitAmount:  stripe.Int64(p.UnitAmount),
			},
			Quantity: stripe.Int64(p.Quantity),
		}},
	}
	if p.IdempotencyKey != "" {
		params.IdempotencyKey = stripe.String(p.IdempotencyKey)
	}
	return params
}

// CreateSession creates a new Stripe Checkout Session and returns its
// redirect URL alongside the session identifiers.
func (s *Provider) CreateSession(
	ctx context.Context,
	p *payment.SessionParams,
) (*payment.Session, error) {
	params := buildSessionParams(p)

	session, err := s.client.V1CheckoutSessions.Create(ctx, params)
	if err != nil {
		s.logger.Error(
			"failed to create checkout session",
			"error", err,
		)
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	s.logger.Info(
		"Created checkout session",
		"session_id", session.ID,
		"url", session.URL,
	)

	return toSession(session), nil
}

// GetSession retrieves an existing Checkout Session by its opaque ID.
func (s *Provider) GetSession(
	ctx context.Context,
	id string,
) (*payment.Session, error) {
	session, err := s.client.V1CheckoutSessions.Retrieve(ctx, id, nil)
	if err != nil {
		s.logger.Error(
			"failed to retrieve checkout session",
			"session_id", id,
			"error", err,
		)
		return nil, fmt.Errorf("failed to retrieve checkout session %q: %w", id, err)
	}

	return toSession(session), nil
}

func toSession(session *stripe.CheckoutSession) *payment.Session {
	out := &payment.Session{
		ID:          session.ID,
		URL:         session.URL,
		Status:      string(session.Status),
		Currency:    string(session.Currency),
		AmountTotal: session.AmountTotal,
	}
	if session.CustomerDetails != nil {
		out.CustomerEmail = session.CustomerDetails.Email
	}
	return out
}
