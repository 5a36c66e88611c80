package mockpayment

import (
	"context"
	"fmt"
	"sync"

	"github.com/vaporkeys/storefront/pkg/provider/payment"
)

// MockPaymentProvider simulates a hosted-checkout payment provider for
// tests and local development.
//
// Usage:
// - CreateSession returns a fake session with a deterministic ID and URL
//   and records the params it was called with.
// - GetSession returns a previously created session, or a seeded one.
// - Set CreateErr/RetrieveErr to force failures.
//
// This is NOT for production use.
type MockPaymentProvider struct {
	mu            sync.Mutex
	sessions      map[string]*payment.Session
	created       []*payment.SessionParams
	retrieveCalls int

	CreateErr   error
	RetrieveErr error
}

// NewMockPaymentProvider creates a new instance of MockPaymentProvider.
func NewMockPaymentProvider() *MockPaymentProvider {
	return &MockPaymentProvider{
		sessions: make(map[string]*payment.Session),
	}
}

// CreateSession simulates creating a checkout session.
func (m *MockPaymentProvider) CreateSession(
	_ context.Context,
	params *payment.SessionParams,
) (*payment.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.CreateErr != nil {
		return nil, m.CreateErr
	}

	m.created = append(m.created, params)
	id := fmt.Sprintf("cs_test_%d", len(m.created))
	session := &payment.Session{
		ID:          id,
		URL:         "https://checkout.stripe.com/c/pay/" + id,
		Status:      "open",
		Currency:    params.Currency,
		AmountTotal: params.UnitAmount * params.Quantity,
	}
	m.sessions[id] = session
	return session, nil
}

// GetSession simulates retrieving a checkout session by ID.
func (m *MockPaymentProvider) GetSession(
	_ context.Context,
	id string,
) (*payment.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.retrieveCalls++
	if m.RetrieveErr != nil {
		return nil, m.RetrieveErr
	}

	session, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("no such checkout session: %q", id)
	}
	return session, nil
}

// SeedSession registers a session so GetSession can return it.
func (m *MockPaymentProvider) SeedSession(session *payment.Session) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[session.ID] = session
}

// CreatedParams returns the params passed to each CreateSession call.
func (m *MockPaymentProvider) CreatedParams() []*payment.SessionParams {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*payment.SessionParams(nil), m.created...)
}

// RetrieveCalls reports how many GetSession calls were made.
func (m *MockPaymentProvider) RetrieveCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.retrieveCalls
}
