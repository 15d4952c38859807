package setup

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sigitdim/fortisapp-sub002/internal/domain"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/repository"
)

// CatalogRepos are the stores behind the setup screens.
type CatalogRepos struct {
	Bahan          repository.BahanRepository
	Produk         repository.ProdukRepository
	Komposisi      repository.KomposisiRepository
	Overhead       repository.OverheadRepository
	TenagaKerja    repository.TenagaKerjaRepository
	InventoryLogs  repository.InventoryLogRepository
	// Tx writes ingredient price changes together with their log rows.
	Tx TxRunner
}

// Catalog wires one generic service per setup entity with its rules.
type Catalog struct {
	Bahan       *Service[entity.Bahan, *entity.Bahan]
	Produk      *Service[entity.Produk, *entity.Produk]
	Komposisi   *Service[entity.Komposisi, *entity.Komposisi]
	Overhead    *Service[entity.Overhead, *entity.Overhead]
	TenagaKerja *Service[entity.TenagaKerja, *entity.TenagaKerja]
}

func NewCatalog(r CatalogRepos) *Catalog {
	return &Catalog{
		Bahan: NewService[entity.Bahan, *entity.Bahan]("bahan", &pricedBahan{BahanRepository: r.Bahan, tx: r.Tx, now: time.Now}, Hooks[entity.Bahan]{
			BeforeDelete: func(ctx context.Context, ownerID, id string) error {
				if err := guardReferenced("bahan", id, func() (int, error) {
					return r.Komposisi.CountByBahan(ctx, ownerID, id)
				}); err != nil {
					return err
				}
				entries, err := r.InventoryLogs.ListByBahan(ctx, ownerID, id)
				if err != nil {
					return fmt.Errorf("check bahan ledger: %w", err)
				}
				if len(entries) > 0 {
					return fmt.Errorf("%w: bahan %s has %d inventory entries", domain.ErrConflict, id, len(entries))
				}
				return nil
			},
		}),
		Produk: NewService[entity.Produk, *entity.Produk]("produk", r.Produk, Hooks[entity.Produk]{
			BeforeDelete: func(ctx context.Context, ownerID, id string) error {
				return guardReferenced("produk", id, func() (int, error) {
					return r.Komposisi.CountByProduk(ctx, ownerID, id)
				})
			},
		}),
		Komposisi: NewService[entity.Komposisi, *entity.Komposisi]("komposisi", r.Komposisi, Hooks[entity.Komposisi]{
			BeforeSave: func(ctx context.Context, ownerID string, k *entity.Komposisi) error {
				produk, err := r.Produk.GetByID(ctx, ownerID, k.ProdukID)
				if err != nil {
					return fmt.Errorf("check produk: %w", err)
				}
				if produk == nil {
					return domain.Missing("produk", k.ProdukID)
				}
				bahan, err := r.Bahan.GetByID(ctx, ownerID, k.BahanID)
				if err != nil {
					return fmt.Errorf("check bahan: %w", err)
				}
				if bahan == nil {
					return domain.Missing("bahan", k.BahanID)
				}
				if k.Satuan == "" {
					k.Satuan = bahan.Satuan
				}
				return nil
			},
		}),
		Overhead:    NewService[entity.Overhead, *entity.Overhead]("overhead", r.Overhead, Hooks[entity.Overhead]{}),
		TenagaKerja: NewService[entity.TenagaKerja, *entity.TenagaKerja]("tenaga_kerja", r.TenagaKerja, Hooks[entity.TenagaKerja]{}),
	}
}

func guardReferenced(name, id string, count func() (int, error)) error {
	n, err := count()
	if err != nil {
		return fmt.Errorf("check %s references: %w", name, err)
	}
	if n > 0 {
		return fmt.Errorf("%w: %s %s is used by %d komposisi lines", domain.ErrConflict, name, id, n)
	}
	return nil
}

// pricedBahan updates an ingredient and, when its unit price changed, appends the price log
// in the same transaction.
type pricedBahan struct {
	repository.BahanRepository
	tx  TxRunner
	now func() time.Time
}

func (r *pricedBahan) Update(ctx context.Context, b *entity.Bahan) error {
	return r.tx.RunBahan(ctx, b.OwnerID, func(
		bahanRepo repository.BahanRepository,
		priceLogRepo repository.BahanPriceLogRepository,
	) error {
		before, err := bahanRepo.GetByID(ctx, b.OwnerID, b.ID)
		if err != nil {
			return err
		}
		if err := bahanRepo.Update(ctx, b); err != nil {
			return err
		}
		if before == nil || before.HargaSatuan.Equal(b.HargaSatuan) {
			return nil
		}
		err = priceLogRepo.Append(ctx, &entity.BahanPriceLog{
			ID:        uuid.New().String(),
			OwnerID:   b.OwnerID,
			BahanID:   b.ID,
			OldPrice:  before.HargaSatuan,
			NewPrice:  b.HargaSatuan,
			CreatedAt: r.now(),
		})
		if err != nil {
			return fmt.Errorf("log bahan price: %w", err)
		}
		return nil
	})
}
