package repository

import (
	"context"

	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
)

// PricingLogRepository stores the audit trail of applied prices, newest first on read.
type PricingLogRepository interface {
	Append(ctx context.Context, l *entity.PricingLog) error
	ListByProduk(ctx context.Context, ownerID, produkID string, limit int) ([]entity.PricingLog, error)
}

// BahanPriceLogRepository stores ingredient price changes, newest first on read.
type BahanPriceLogRepository interface {
	Append(ctx context.Context, l *entity.BahanPriceLog) error
	ListByBahan(ctx context.Context, ownerID, bahanID string, limit int) ([]entity.BahanPriceLog, error)
}
