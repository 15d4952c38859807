package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// Allocation is the per-portion share of the tenant's active monthly overhead and labor.
type Allocation struct {
	OverheadBulanan     decimal.Decimal
	TenagaKerjaBulanan  decimal.Decimal
	PorsiBulanan        decimal.Decimal
	OverheadPerPorsi    decimal.Decimal
	TenagaKerjaPerPorsi decimal.Decimal
}

// AllocationSource computes Allocation from the store's aggregates.
type AllocationSource interface {
	PerPortion(ctx context.Context, ownerID string) (*Allocation, error)
}
