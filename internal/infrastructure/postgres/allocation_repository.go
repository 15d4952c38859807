package postgres

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sigitdim/fortisapp-sub002/internal/domain/costing"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/repository"
)

var _ repository.AllocationSource = (*AllocationRepo)(nil)

// AllocationRepo sums active overhead and labor in one round trip and divides by the
// owner's porsi_bulanan, falling back to defaultPorsi when the owner has none.
type AllocationRepo struct {
	q            Querier
	defaultPorsi decimal.Decimal
}

func NewAllocationRepository(q Querier, defaultPorsi decimal.Decimal) *AllocationRepo {
	return &AllocationRepo{q: q, defaultPorsi: defaultPorsi}
}

func (r *AllocationRepo) PerPortion(ctx context.Context, ownerID string) (*repository.Allocation, error) {
	query := `SELECT
		COALESCE((SELECT SUM(biaya_bulanan) FROM overhead WHERE owner_id = $1 AND aktif), 0),
		COALESCE((SELECT SUM(gaji_bulanan) FROM tenaga_kerja WHERE owner_id = $1 AND aktif), 0),
		(SELECT porsi_bulanan FROM owner_settings WHERE owner_id = $1)`
	var (
		a     repository.Allocation
		porsi *decimal.Decimal
	)
	if err := r.q.QueryRow(ctx, query, ownerID).Scan(&a.OverheadBulanan, &a.TenagaKerjaBulanan, &porsi); err != nil {
		return nil, mapError("allocation aggregate", err)
	}
	a.PorsiBulanan = r.defaultPorsi
	if porsi != nil {
		a.PorsiBulanan = *porsi
	}
	a.OverheadPerPorsi, _ = costing.Allocate(a.OverheadBulanan, a.PorsiBulanan)
	a.TenagaKerjaPerPorsi, _ = costing.Allocate(a.TenagaKerjaBulanan, a.PorsiBulanan)
	return &a, nil
}
