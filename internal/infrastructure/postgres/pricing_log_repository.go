package postgres

import (
	"context"

	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/repository"
)

var (
	_ repository.PricingLogRepository    = (*PricingLogRepo)(nil)
	_ repository.BahanPriceLogRepository = (*BahanPriceLogRepo)(nil)
)

type PricingLogRepo struct {
	q Querier
}

func NewPricingLogRepository(q Querier) *PricingLogRepo {
	return &PricingLogRepo{q: q}
}

func (r *PricingLogRepo) Append(ctx context.Context, l *entity.PricingLog) error {
	query := `INSERT INTO pricing_log (id, owner_id, produk_id, old_price, new_price, source, inputs_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err := r.q.Exec(ctx, query, l.ID, l.OwnerID, l.ProdukID, l.OldPrice, l.NewPrice, l.Source,
		l.InputsHash, l.CreatedAt); err != nil {
		return mapError("insert pricing_log", err)
	}
	return nil
}

func (r *PricingLogRepo) ListByProduk(ctx context.Context, ownerID, produkID string, limit int) ([]entity.PricingLog, error) {
	query := `SELECT id, owner_id, produk_id, old_price, new_price, source, inputs_hash, created_at
		FROM pricing_log WHERE owner_id = $1 AND produk_id = $2
		ORDER BY created_at DESC, id DESC LIMIT $3`
	rows, err := r.q.Query(ctx, query, ownerID, produkID, limit)
	if err != nil {
		return nil, mapError("list pricing_log", err)
	}
	defer rows.Close()
	out := make([]entity.PricingLog, 0)
	for rows.Next() {
		var l entity.PricingLog
		if err := rows.Scan(&l.ID, &l.OwnerID, &l.ProdukID, &l.OldPrice, &l.NewPrice, &l.Source,
			&l.InputsHash, &l.CreatedAt); err != nil {
			return nil, mapError("scan pricing_log", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

type BahanPriceLogRepo struct {
	q Querier
}

func NewBahanPriceLogRepository(q Querier) *BahanPriceLogRepo {
	return &BahanPriceLogRepo{q: q}
}

func (r *BahanPriceLogRepo) Append(ctx context.Context, l *entity.BahanPriceLog) error {
	query := `INSERT INTO bahan_price_log (id, owner_id, bahan_id, old_price, new_price, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.q.Exec(ctx, query, l.ID, l.OwnerID, l.BahanID, l.OldPrice, l.NewPrice, l.CreatedAt); err != nil {
		return mapError("insert bahan_price_log", err)
	}
	return nil
}

func (r *BahanPriceLogRepo) ListByBahan(ctx context.Context, ownerID, bahanID string, limit int) ([]entity.BahanPriceLog, error) {
	query := `SELECT id, owner_id, bahan_id, old_price, new_price, created_at
		FROM bahan_price_log WHERE owner_id = $1 AND bahan_id = $2
		ORDER BY created_at DESC, id DESC LIMIT $3`
	rows, err := r.q.Query(ctx, query, ownerID, bahanID, limit)
	if err != nil {
		return nil, mapError("list bahan_price_log", err)
	}
	defer rows.Close()
	out := make([]entity.BahanPriceLog, 0)
	for rows.Next() {
		var l entity.BahanPriceLog
		if err := rows.Scan(&l.ID, &l.OwnerID, &l.BahanID, &l.OldPrice, &l.NewPrice, &l.CreatedAt); err != nil {
			return nil, mapError("scan bahan_price_log", err)
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
