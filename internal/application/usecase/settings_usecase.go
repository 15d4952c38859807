package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sigitdim/fortisapp-sub002/internal/application/dto"
	"github.com/sigitdim/fortisapp-sub002/internal/domain"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/repository"
)

// SettingsDefaults apply to owners that never saved a value.
type SettingsDefaults struct {
	PorsiBulanan      decimal.Decimal
	LowStockThreshold decimal.Decimal
}

// SettingsUseCase reads and writes per-owner costing and stock parameters.
type SettingsUseCase struct {
	repo     repository.SettingsRepository
	defaults SettingsDefaults
	now      func() time.Time
}

func NewSettingsUseCase(repo repository.SettingsRepository, defaults SettingsDefaults) *SettingsUseCase {
	return &SettingsUseCase{repo: repo, defaults: defaults, now: time.Now}
}

func (uc *SettingsUseCase) Get(ctx context.Context, ownerID string) (*dto.SettingsResponse, error) {
	s, err := uc.repo.Get(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}
	return uc.effective(s), nil
}

func (uc *SettingsUseCase) Update(ctx context.Context, ownerID string, req dto.SettingsRequest) (*dto.SettingsResponse, error) {
	if req.PorsiBulanan != nil && !req.PorsiBulanan.IsPositive() {
		return nil, domain.Invalid("porsi_bulanan must be greater than zero")
	}
	if req.LowStockThreshold != nil && req.LowStockThreshold.IsNegative() {
		return nil, domain.Invalid("low_stock_threshold must not be negative")
	}
	s := &entity.OwnerSettings{
		OwnerID:           ownerID,
		PorsiBulanan:      req.PorsiBulanan,
		LowStockThreshold: req.LowStockThreshold,
		UpdatedAt:         uc.now(),
	}
	if err := uc.repo.Upsert(ctx, s); err != nil {
		return nil, fmt.Errorf("save settings: %w", err)
	}
	return uc.effective(s), nil
}

// LowStockThreshold implements inventory.ThresholdSource.
func (uc *SettingsUseCase) LowStockThreshold(ctx context.Context, ownerID string) (decimal.Decimal, error) {
	s, err := uc.Get(ctx, ownerID)
	if err != nil {
		return decimal.Zero, err
	}
	return s.LowStockThreshold, nil
}

func (uc *SettingsUseCase) effective(s *entity.OwnerSettings) *dto.SettingsResponse {
	out := &dto.SettingsResponse{
		PorsiBulanan:      uc.defaults.PorsiBulanan,
		LowStockThreshold: uc.defaults.LowStockThreshold,
	}
	if s == nil {
		return out
	}
	if s.PorsiBulanan != nil {
		out.PorsiBulanan, out.Custom = *s.PorsiBulanan, true
	}
	if s.LowStockThreshold != nil {
		out.LowStockThreshold, out.Custom = *s.LowStockThreshold, true
	}
	return out
}
