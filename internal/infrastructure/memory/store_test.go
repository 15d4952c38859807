package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/repository"
	"github.com/sigitdim/fortisapp-sub002/internal/infrastructure/memory"
)

const owner = "owner-1"

var errBoom = errors.New("boom")

func bahan(id string, price int64) *entity.Bahan {
	return &entity.Bahan{ID: id, OwnerID: owner, Nama: id, Satuan: "gram", HargaSatuan: decimal.NewFromInt(price)}
}

func TestRunInventory_RollbackKeepsConcurrentWrites(t *testing.T) {
	s := memory.NewStore(decimal.Zero)
	ctx := context.Background()
	require.NoError(t, s.Bahan.Create(ctx, bahan("kopi", 100)))

	err := s.RunInventory(ctx, owner, func(
		bahanRepo repository.BahanRepository,
		logRepo repository.InventoryLogRepository,
		priceLogRepo repository.BahanPriceLogRepository,
	) error {
		require.NoError(t, logRepo.Append(ctx, &entity.InventoryLog{ID: "e1", OwnerID: owner, BahanID: "kopi", Tipe: entity.MovementIn, Qty: decimal.NewFromInt(5)}))
		require.NoError(t, bahanRepo.Update(ctx, bahan("kopi", 150)))
		require.NoError(t, priceLogRepo.Append(ctx, &entity.BahanPriceLog{ID: "p1", OwnerID: owner, BahanID: "kopi"}))

		// a setup write from another request lands while the transaction is open
		done := make(chan error)
		go func() { done <- s.Bahan.Create(ctx, bahan("gula", 15)) }()
		require.NoError(t, <-done)
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	gula, err := s.Bahan.GetByID(ctx, owner, "gula")
	require.NoError(t, err)
	assert.NotNil(t, gula, "a row written outside the transaction survives its rollback")

	kopi, err := s.Bahan.GetByID(ctx, owner, "kopi")
	require.NoError(t, err)
	require.NotNil(t, kopi)
	assert.True(t, kopi.HargaSatuan.Equal(decimal.NewFromInt(100)))

	entries, err := s.InventoryLogs.ListByBahan(ctx, owner, "kopi")
	require.NoError(t, err)
	assert.Empty(t, entries)
	prices, err := s.BahanPriceLogs.ListByBahan(ctx, owner, "kopi", 0)
	require.NoError(t, err)
	assert.Empty(t, prices)

	list, err := s.Bahan.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "kopi", list[0].ID, "list order is preserved")
}

func TestRunPricing_CommitAndRollback(t *testing.T) {
	s := memory.NewStore(decimal.Zero)
	ctx := context.Background()
	require.NoError(t, s.Produk.Create(ctx, &entity.Produk{ID: "latte", OwnerID: owner, Nama: "Latte", YieldPorsi: decimal.NewFromInt(1)}))

	price := decimal.NewFromInt(20000)
	apply := func(fail bool) error {
		return s.RunPricing(ctx, owner, func(produkRepo repository.ProdukRepository, logRepo repository.PricingLogRepository) error {
			p, err := produkRepo.GetByID(ctx, owner, "latte")
			require.NoError(t, err)
			p.HargaJual = &price
			require.NoError(t, produkRepo.Update(ctx, p))
			require.NoError(t, logRepo.Append(ctx, &entity.PricingLog{ID: "l-" + price.String(), OwnerID: owner, ProdukID: "latte", NewPrice: price}))
			if fail {
				return errBoom
			}
			return nil
		})
	}

	require.NoError(t, apply(false))
	price = decimal.NewFromInt(25000)
	require.ErrorIs(t, apply(true), errBoom)

	p, err := s.Produk.GetByID(ctx, owner, "latte")
	require.NoError(t, err)
	require.NotNil(t, p.HargaJual)
	assert.True(t, p.HargaJual.Equal(decimal.NewFromInt(20000)))
	logs, err := s.PricingLogs.ListByProduk(ctx, owner, "latte", 0)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestRunBahan_RollbackRestoresDeletedRow(t *testing.T) {
	s := memory.NewStore(decimal.Zero)
	ctx := context.Background()
	require.NoError(t, s.Bahan.Create(ctx, bahan("kopi", 100)))

	err := s.RunBahan(ctx, owner, func(bahanRepo repository.BahanRepository, _ repository.BahanPriceLogRepository) error {
		require.NoError(t, bahanRepo.Delete(ctx, owner, "kopi"))
		require.NoError(t, bahanRepo.Create(ctx, bahan("teh", 50)))
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	kopi, err := s.Bahan.GetByID(ctx, owner, "kopi")
	require.NoError(t, err)
	assert.NotNil(t, kopi)
	teh, err := s.Bahan.GetByID(ctx, owner, "teh")
	require.NoError(t, err)
	assert.Nil(t, teh)
}
