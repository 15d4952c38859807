package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigitdim/fortisapp-sub002/internal/application/dto"
	"github.com/sigitdim/fortisapp-sub002/internal/application/usecase"
	"github.com/sigitdim/fortisapp-sub002/internal/domain"
	"github.com/sigitdim/fortisapp-sub002/internal/infrastructure/memory"
)

const owner = "owner-1"

func newSettings() *usecase.SettingsUseCase {
	s := memory.NewStore(decimal.Zero)
	return usecase.NewSettingsUseCase(s.Settings, usecase.SettingsDefaults{
		PorsiBulanan:      decimal.NewFromInt(1000),
		LowStockThreshold: decimal.NewFromInt(10),
	})
}

func TestSettings_DefaultsUntilSaved(t *testing.T) {
	uc := newSettings()
	ctx := context.Background()

	got, err := uc.Get(ctx, owner)
	require.NoError(t, err)
	assert.False(t, got.Custom)
	assert.True(t, got.PorsiBulanan.Equal(decimal.NewFromInt(1000)))

	porsi := decimal.NewFromInt(3000)
	saved, err := uc.Update(ctx, owner, dto.SettingsRequest{PorsiBulanan: &porsi})
	require.NoError(t, err)
	assert.True(t, saved.Custom)
	assert.True(t, saved.PorsiBulanan.Equal(porsi))
	assert.True(t, saved.LowStockThreshold.Equal(decimal.NewFromInt(10)), "unset fields keep the default")

	threshold, err := uc.LowStockThreshold(ctx, owner)
	require.NoError(t, err)
	assert.True(t, threshold.Equal(decimal.NewFromInt(10)))

	other, err := uc.Get(ctx, "other-owner")
	require.NoError(t, err)
	assert.False(t, other.Custom)
}

func TestSettings_Validation(t *testing.T) {
	uc := newSettings()
	zero := decimal.Zero
	negative := decimal.NewFromInt(-1)

	_, err := uc.Update(context.Background(), owner, dto.SettingsRequest{PorsiBulanan: &zero})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = uc.Update(context.Background(), owner, dto.SettingsRequest{LowStockThreshold: &negative})
	assert.ErrorIs(t, err, domain.ErrValidation)
}
