package payment

import "context"

// SessionParams describes a hosted-checkout session to create. Description
// and ImageURL are optional and omitted from the processor request when
// empty. UnitAmount is in the smallest currency unit, no conversion.
type SessionParams struct {
	Currency       string
	ProductName    string
	Description    string
	ImageURL       string
	UnitAmount     int64
	Quantity       int64
	SuccessURL     string
	CancelURL      string
	IdempotencyKey string
}

// Session is the provider-agnostic view of a checkout session. The ID is an
// opaque string issued by the processor; the session's lifecycle is fully
// owned there.
type Session struct {
	ID            string
	URL           string
	Status        string
	Currency      string
	AmountTotal   int64
	CustomerEmail string
}

// Provider creates and retrieves hosted-checkout sessions with an external
// payment processor.
type Provider interface {
	CreateSession(ctx context.Context, params *SessionParams) (*Session, error)
	GetSession(ctx context.Context, id string) (*Session, error)
}
