package repository

import (
	"context"

	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
)

// InventoryLogRepository is append-only: there is no update or delete.
type InventoryLogRepository interface {
	Append(ctx context.Context, e *entity.InventoryLog) error
	// ListByBahan returns the full history of one ingredient, oldest first.
	ListByBahan(ctx context.Context, ownerID, bahanID string) ([]entity.InventoryLog, error)
	// ListByOwner returns every entry of the tenant, oldest first.
	ListByOwner(ctx context.Context, ownerID string) ([]entity.InventoryLog, error)
}
