package setup

import (
	"context"

	"github.com/sigitdim/fortisapp-sub002/internal/domain/repository"
)

// TxRunner runs fn inside one store transaction so an ingredient update and its price log
// are written together or not at all.
type TxRunner interface {
	RunBahan(ctx context.Context, ownerID string, fn func(
		bahanRepo repository.BahanRepository,
		priceLogRepo repository.BahanPriceLogRepository,
	) error) error
}
