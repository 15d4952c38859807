package repository

import (
	"context"

	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
)

// CRUDRepository is the persistence port shared by all setup entities.
// Every call is scoped by owner; GetByID returns (nil, nil) when the row does not exist.
type CRUDRepository[T any] interface {
	List(ctx context.Context, ownerID string) ([]*T, error)
	GetByID(ctx context.Context, ownerID, id string) (*T, error)
	Create(ctx context.Context, rec *T) error
	// Update and Delete return domain.ErrNotFound when no row matched.
	Update(ctx context.Context, rec *T) error
	Delete(ctx context.Context, ownerID, id string) error
}

type (
	BahanRepository       = CRUDRepository[entity.Bahan]
	ProdukRepository      = CRUDRepository[entity.Produk]
	OverheadRepository    = CRUDRepository[entity.Overhead]
	TenagaKerjaRepository = CRUDRepository[entity.TenagaKerja]
	PromoRepository       = CRUDRepository[entity.Promo]
)

// KomposisiRepository adds the BOM lookups used by the cost engine and the delete guards.
type KomposisiRepository interface {
	CRUDRepository[entity.Komposisi]
	ListByProduk(ctx context.Context, ownerID, produkID string) ([]*entity.Komposisi, error)
	CountByBahan(ctx context.Context, ownerID, bahanID string) (int, error)
	CountByProduk(ctx context.Context, ownerID, produkID string) (int, error)
}
