package mockcontent

import (
	"context"
	"fmt"
	"sync"

	"github.com/vaporkeys/storefront/pkg/domain"
)

// MockContentStore simulates the content store for tests and local
// development. Set Err to force every lookup to fail with that error.
type MockContentStore struct {
	mu       sync.Mutex
	products map[string]*domain.Product
	calls    int

	Err error
}

// NewMockContentStore creates a new instance of MockContentStore.
func NewMockContentStore(products ...*domain.Product) *MockContentStore {
	m := &MockContentStore{products: make(map[string]*domain.Product)}
	for _, p := range products {
		m.products[p.UID] = p
	}
	return m
}

// GetProductByUID returns a seeded product or domain.ErrProductNotFound.
func (m *MockContentStore) GetProductByUID(
	_ context.Context,
	uid string,
) (*domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls++
	if m.Err != nil {
		return nil, m.Err
	}
	product, ok := m.products[uid]
	if !ok {
		return nil, fmt.Errorf("product %q: %w", uid, domain.ErrProductNotFound)
	}
	return product, nil
}

// Calls reports how many lookups were made.
func (m *MockContentStore) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}
