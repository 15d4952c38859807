package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/repository"
)

var (
	_ repository.SettingsRepository = (*SettingsRepo)(nil)
	_ repository.LicenseRepository  = (*LicenseRepo)(nil)
)

type SettingsRepo struct {
	q Querier
}

func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

func (r *SettingsRepo) Get(ctx context.Context, ownerID string) (*entity.OwnerSettings, error) {
	var s entity.OwnerSettings
	err := r.q.QueryRow(ctx,
		`SELECT owner_id, porsi_bulanan, low_stock_threshold, updated_at FROM owner_settings WHERE owner_id = $1`,
		ownerID).Scan(&s.OwnerID, &s.PorsiBulanan, &s.LowStockThreshold, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapError("get owner_settings", err)
	}
	return &s, nil
}

func (r *SettingsRepo) Upsert(ctx context.Context, s *entity.OwnerSettings) error {
	query := `INSERT INTO owner_settings (owner_id, porsi_bulanan, low_stock_threshold, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (owner_id) DO UPDATE SET
			porsi_bulanan = EXCLUDED.porsi_bulanan,
			low_stock_threshold = EXCLUDED.low_stock_threshold,
			updated_at = EXCLUDED.updated_at`
	if _, err := r.q.Exec(ctx, query, s.OwnerID, s.PorsiBulanan, s.LowStockThreshold, s.UpdatedAt); err != nil {
		return mapError("upsert owner_settings", err)
	}
	return nil
}

// LicenseRepo reads the licenses table maintained by the billing backend.
type LicenseRepo struct {
	q Querier
}

func NewLicenseRepository(q Querier) *LicenseRepo {
	return &LicenseRepo{q: q}
}

func (r *LicenseRepo) GetByOwner(ctx context.Context, ownerID string) (*entity.License, error) {
	var l entity.License
	err := r.q.QueryRow(ctx, `SELECT owner_id, active, expires_at FROM licenses WHERE owner_id = $1`, ownerID).
		Scan(&l.OwnerID, &l.Active, &l.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapError("get license", err)
	}
	return &l, nil
}
