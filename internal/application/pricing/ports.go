package pricing

import (
	"context"

	"github.com/sigitdim/fortisapp-sub002/internal/application/costing"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/repository"
)

// TxRunner runs fn inside one store transaction so the price update and its audit row
// are written together or not at all.
type TxRunner interface {
	RunPricing(ctx context.Context, ownerID string, fn func(
		produkRepo repository.ProdukRepository,
		logRepo repository.PricingLogRepository,
	) error) error
}

// HPPSource computes a product's HPP.
type HPPSource interface {
	Compute(ctx context.Context, ownerID, produkID string) (*costing.Result, error)
}
