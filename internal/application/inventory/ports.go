package inventory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sigitdim/fortisapp-sub002/internal/domain/repository"
)

// TxRunner runs fn inside one store transaction with repositories bound to it.
type TxRunner interface {
	RunInventory(ctx context.Context, ownerID string, fn func(
		bahanRepo repository.BahanRepository,
		logRepo repository.InventoryLogRepository,
		priceLogRepo repository.BahanPriceLogRepository,
	) error) error
}

// ThresholdSource resolves the owner's low-stock threshold.
type ThresholdSource interface {
	LowStockThreshold(ctx context.Context, ownerID string) (decimal.Decimal, error)
}
