package repository

import (
	"context"

	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
)

// SettingsRepository returns (nil, nil) when the owner never saved settings.
type SettingsRepository interface {
	Get(ctx context.Context, ownerID string) (*entity.OwnerSettings, error)
	Upsert(ctx context.Context, s *entity.OwnerSettings) error
}

// LicenseRepository reads entitlements written by the billing side. Read-only here.
type LicenseRepository interface {
	GetByOwner(ctx context.Context, ownerID string) (*entity.License, error)
}
