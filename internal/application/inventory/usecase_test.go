package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigitdim/fortisapp-sub002/internal/application/inventory"
	"github.com/sigitdim/fortisapp-sub002/internal/application/usecase"
	"github.com/sigitdim/fortisapp-sub002/internal/domain"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
	"github.com/sigitdim/fortisapp-sub002/internal/infrastructure/memory"
)

const owner = "owner-1"

var d = decimal.NewFromInt

func setup(t *testing.T) (*inventory.UseCase, *memory.Store) {
	t.Helper()
	s := memory.NewStore(decimal.Zero)
	require.NoError(t, s.Bahan.Create(context.Background(), &entity.Bahan{
		ID: "gula", OwnerID: owner, Nama: "Gula", Satuan: "gram", HargaSatuan: d(15),
	}))
	settings := usecase.NewSettingsUseCase(s.Settings, usecase.SettingsDefaults{LowStockThreshold: d(10)})
	return inventory.NewUseCase(s, s.Bahan, s.InventoryLogs, settings), s
}

func move(t *testing.T, uc *inventory.UseCase, tipe string, qty int64) string {
	t.Helper()
	out, err := uc.RecordMovement(context.Background(), inventory.MovementInput{
		OwnerID: owner, BahanID: "gula", Tipe: tipe, Qty: d(qty),
	})
	require.NoError(t, err)
	return out.ID
}

func TestRecordMovement_BalanceSequence(t *testing.T) {
	uc, _ := setup(t)
	ctx := context.Background()

	out, err := uc.RecordMovement(ctx, inventory.MovementInput{OwnerID: owner, BahanID: "gula", Tipe: entity.MovementIn, Qty: d(50)})
	require.NoError(t, err)
	assert.True(t, out.Before.IsZero())
	assert.True(t, out.After.Equal(d(50)))

	out, err = uc.RecordMovement(ctx, inventory.MovementInput{OwnerID: owner, BahanID: "gula", Tipe: entity.MovementAdjust, Qty: d(-5)})
	require.NoError(t, err)
	assert.True(t, out.Before.Equal(d(50)))
	assert.True(t, out.After.Equal(d(45)))

	out, err = uc.RecordMovement(ctx, inventory.MovementInput{OwnerID: owner, BahanID: "gula", Tipe: entity.MovementOut, Qty: d(10)})
	require.NoError(t, err)
	assert.True(t, out.After.Equal(d(35)))
}

func TestRecordMovement_InvalidQuantityWritesNothing(t *testing.T) {
	uc, s := setup(t)
	ctx := context.Background()

	cases := []struct {
		tipe string
		qty  int64
	}{
		{entity.MovementIn, 0},
		{entity.MovementIn, -3},
		{entity.MovementOut, 0},
		{entity.MovementAdjust, 0},
	}
	for _, c := range cases {
		_, err := uc.RecordMovement(ctx, inventory.MovementInput{OwnerID: owner, BahanID: "gula", Tipe: c.tipe, Qty: d(c.qty)})
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, "%s %d", c.tipe, c.qty)
	}
	entries, err := s.InventoryLogs.ListByBahan(ctx, owner, "gula")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRecordMovement_NegativeBalanceAllowed(t *testing.T) {
	uc, _ := setup(t)
	move(t, uc, entity.MovementOut, 7)
	items, err := uc.Summary(context.Background(), owner)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].Saldo.Equal(d(-7)))
	assert.True(t, items[0].Low)
}

func TestRecordMovement_UnknownBahan(t *testing.T) {
	uc, _ := setup(t)
	_, err := uc.RecordMovement(context.Background(), inventory.MovementInput{OwnerID: owner, BahanID: "garam", Tipe: entity.MovementIn, Qty: d(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.RecordMovement(context.Background(), inventory.MovementInput{OwnerID: "other", BahanID: "gula", Tipe: entity.MovementIn, Qty: d(1)})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRecordMovement_Void(t *testing.T) {
	uc, _ := setup(t)
	ctx := context.Background()
	move(t, uc, entity.MovementIn, 50)
	outID := move(t, uc, entity.MovementOut, 10)

	out, err := uc.RecordMovement(ctx, inventory.MovementInput{OwnerID: owner, BahanID: "gula", Tipe: entity.MovementVoid, RefID: &outID})
	require.NoError(t, err)
	assert.True(t, out.Before.Equal(d(40)))
	assert.True(t, out.After.Equal(d(50)))

	_, err = uc.RecordMovement(ctx, inventory.MovementInput{OwnerID: owner, BahanID: "gula", Tipe: entity.MovementVoid, RefID: &outID})
	assert.ErrorIs(t, err, domain.ErrValidation, "an entry can only be voided once")

	_, err = uc.RecordMovement(ctx, inventory.MovementInput{OwnerID: owner, BahanID: "gula", Tipe: entity.MovementVoid, RefID: &out.ID})
	assert.ErrorIs(t, err, domain.ErrValidation, "a void cannot be voided")

	missing := "nope"
	_, err = uc.RecordMovement(ctx, inventory.MovementInput{OwnerID: owner, BahanID: "gula", Tipe: entity.MovementVoid, RefID: &missing})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.RecordMovement(ctx, inventory.MovementInput{OwnerID: owner, BahanID: "gula", Tipe: entity.MovementVoid})
	assert.ErrorIs(t, err, domain.ErrValidation)

	history, err := uc.History(ctx, owner, "gula", 0)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.True(t, history[1].Voided)
	assert.False(t, history[0].Voided)
}

func TestRecordMovement_PurchasePriceReaverages(t *testing.T) {
	uc, s := setup(t)
	ctx := context.Background()
	move(t, uc, entity.MovementIn, 10) // 10 g held at 15

	price := d(25)
	out, err := uc.RecordMovement(ctx, inventory.MovementInput{
		OwnerID: owner, BahanID: "gula", Tipe: entity.MovementIn, Qty: d(10), HargaBeli: &price,
	})
	require.NoError(t, err)
	require.NotNil(t, out.HargaSatuan)
	assert.True(t, out.HargaSatuan.Equal(d(20)))

	b, err := s.Bahan.GetByID(ctx, owner, "gula")
	require.NoError(t, err)
	assert.True(t, b.HargaSatuan.Equal(d(20)))

	logs, err := s.BahanPriceLogs.ListByBahan(ctx, owner, "gula", 0)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.True(t, logs[0].OldPrice.Equal(d(15)))

	_, err = uc.RecordMovement(ctx, inventory.MovementInput{
		OwnerID: owner, BahanID: "gula", Tipe: entity.MovementOut, Qty: d(1), HargaBeli: &price,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSummary_ThresholdFromSettings(t *testing.T) {
	uc, s := setup(t)
	ctx := context.Background()
	move(t, uc, entity.MovementIn, 10)

	items, err := uc.Summary(ctx, owner)
	require.NoError(t, err)
	assert.True(t, items[0].Low, "saldo equal to the threshold is low")

	threshold := d(5)
	require.NoError(t, s.Settings.Upsert(ctx, &entity.OwnerSettings{OwnerID: owner, LowStockThreshold: &threshold}))
	items, err = uc.Summary(ctx, owner)
	require.NoError(t, err)
	assert.False(t, items[0].Low)
	assert.Equal(t, "Gula", items[0].BahanNama)
}

func TestHistory_LimitKeepsMostRecent(t *testing.T) {
	uc, _ := setup(t)
	for i := int64(1); i <= 5; i++ {
		move(t, uc, entity.MovementIn, i)
	}
	out, err := uc.History(context.Background(), owner, "gula", 2)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.True(t, out[0].Qty.Equal(d(4)))
	assert.True(t, out[1].SaldoAfter.Equal(d(15)))

	_, err = uc.History(context.Background(), owner, "", 0)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
