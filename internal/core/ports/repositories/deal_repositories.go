package repositories

import (
	"context"

	"github.com/dealdeskhq/dealdesk_backend/internal/core/domain"
)

// DealLoader is the backing fetch mechanism behind the store's bulk load.
// Implementations load the full deal set from wherever it lives (Postgres,
// a static seed, ...). A failed load must leave the caller free to keep
// whatever collection it already holds.
type DealLoader interface {
	// LoadDeals returns the complete set of deals, in stable order.
	LoadDeals(ctx context.Context) ([]domain.Deal, error)
}
