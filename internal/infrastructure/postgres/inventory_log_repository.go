package postgres

import (
	"context"

	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/repository"
)

var _ repository.InventoryLogRepository = (*InventoryLogRepo)(nil)

// InventoryLogRepo persists the ingredient ledger. Rows are only ever inserted.
type InventoryLogRepo struct {
	q Querier
}

func NewInventoryLogRepository(q Querier) *InventoryLogRepo {
	return &InventoryLogRepo{q: q}
}

const inventoryLogColumns = `id, owner_id, bahan_id, tipe, qty, catatan, ref_id, saldo_before, saldo_after, created_at`

func (r *InventoryLogRepo) Append(ctx context.Context, e *entity.InventoryLog) error {
	query := `INSERT INTO inventory_log (` + inventoryLogColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query, e.ID, e.OwnerID, e.BahanID, e.Tipe, e.Qty, e.Catatan, e.RefID,
		e.SaldoBefore, e.SaldoAfter, e.CreatedAt)
	if err != nil {
		return mapError("insert inventory_log", err)
	}
	return nil
}

func (r *InventoryLogRepo) ListByBahan(ctx context.Context, ownerID, bahanID string) ([]entity.InventoryLog, error) {
	query := `SELECT ` + inventoryLogColumns + ` FROM inventory_log
		WHERE owner_id = $1 AND bahan_id = $2 ORDER BY created_at, id`
	return r.list(ctx, query, ownerID, bahanID)
}

func (r *InventoryLogRepo) ListByOwner(ctx context.Context, ownerID string) ([]entity.InventoryLog, error) {
	query := `SELECT ` + inventoryLogColumns + ` FROM inventory_log
		WHERE owner_id = $1 ORDER BY created_at, id`
	return r.list(ctx, query, ownerID)
}

func (r *InventoryLogRepo) list(ctx context.Context, query string, args ...any) ([]entity.InventoryLog, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("list inventory_log", err)
	}
	defer rows.Close()
	out := make([]entity.InventoryLog, 0)
	for rows.Next() {
		var e entity.InventoryLog
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.BahanID, &e.Tipe, &e.Qty, &e.Catatan, &e.RefID,
			&e.SaldoBefore, &e.SaldoAfter, &e.CreatedAt); err != nil {
			return nil, mapError("scan inventory_log", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list inventory_log", err)
	}
	return out, nil
}
