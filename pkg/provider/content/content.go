package content

import (
	"context"

	"github.com/vaporkeys/storefront/pkg/domain"
)

// Store is a read-only fetch-by-identifier view of the external content
// store. Implementations return domain.ErrProductNotFound for unknown UIDs
// and domain.ErrProductContentShape for documents missing required fields.
type Store interface {
	GetProductByUID(ctx context.Context, uid string) (*domain.Product, error)
}
