package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/repository"
)

var (
	_ repository.BahanRepository       = (*Table[entity.Bahan, *entity.Bahan])(nil)
	_ repository.ProdukRepository      = (*Table[entity.Produk, *entity.Produk])(nil)
	_ repository.OverheadRepository    = (*Table[entity.Overhead, *entity.Overhead])(nil)
	_ repository.TenagaKerjaRepository = (*Table[entity.TenagaKerja, *entity.TenagaKerja])(nil)
	_ repository.PromoRepository       = (*Table[entity.Promo, *entity.Promo])(nil)
	_ repository.KomposisiRepository   = (*KomposisiRepo)(nil)
)

func NewBahanRepository(q Querier) *Table[entity.Bahan, *entity.Bahan] {
	return newTable[entity.Bahan, *entity.Bahan](q, tableSpec[entity.Bahan]{
		name:    "bahan",
		columns: []string{"id", "owner_id", "nama", "satuan", "harga_satuan", "created_at", "updated_at"},
		values: func(b *entity.Bahan) []any {
			return []any{b.ID, b.OwnerID, b.Nama, b.Satuan, b.HargaSatuan, b.CreatedAt, b.UpdatedAt}
		},
		scan: func(row pgx.Row) (*entity.Bahan, error) {
			var b entity.Bahan
			err := row.Scan(&b.ID, &b.OwnerID, &b.Nama, &b.Satuan, &b.HargaSatuan, &b.CreatedAt, &b.UpdatedAt)
			return &b, err
		},
	})
}

func NewProdukRepository(q Querier) *Table[entity.Produk, *entity.Produk] {
	return newTable[entity.Produk, *entity.Produk](q, tableSpec[entity.Produk]{
		name: "produk",
		columns: []string{"id", "owner_id", "nama", "kategori", "yield_porsi", "target_margin", "harga_jual",
			"created_at", "updated_at"},
		values: func(p *entity.Produk) []any {
			return []any{p.ID, p.OwnerID, p.Nama, p.Kategori, p.YieldPorsi, p.TargetMargin, p.HargaJual,
				p.CreatedAt, p.UpdatedAt}
		},
		scan: func(row pgx.Row) (*entity.Produk, error) {
			var p entity.Produk
			err := row.Scan(&p.ID, &p.OwnerID, &p.Nama, &p.Kategori, &p.YieldPorsi, &p.TargetMargin, &p.HargaJual,
				&p.CreatedAt, &p.UpdatedAt)
			return &p, err
		},
	})
}

func NewOverheadRepository(q Querier) *Table[entity.Overhead, *entity.Overhead] {
	return newTable[entity.Overhead, *entity.Overhead](q, tableSpec[entity.Overhead]{
		name:    "overhead",
		columns: []string{"id", "owner_id", "nama", "biaya_bulanan", "catatan", "aktif", "created_at", "updated_at"},
		values: func(o *entity.Overhead) []any {
			return []any{o.ID, o.OwnerID, o.Nama, o.BiayaBulanan, o.Catatan, o.Aktif, o.CreatedAt, o.UpdatedAt}
		},
		scan: func(row pgx.Row) (*entity.Overhead, error) {
			var o entity.Overhead
			err := row.Scan(&o.ID, &o.OwnerID, &o.Nama, &o.BiayaBulanan, &o.Catatan, &o.Aktif, &o.CreatedAt, &o.UpdatedAt)
			return &o, err
		},
	})
}

func NewTenagaKerjaRepository(q Querier) *Table[entity.TenagaKerja, *entity.TenagaKerja] {
	return newTable[entity.TenagaKerja, *entity.TenagaKerja](q, tableSpec[entity.TenagaKerja]{
		name:    "tenaga_kerja",
		columns: []string{"id", "owner_id", "nama", "gaji_bulanan", "aktif", "created_at", "updated_at"},
		values: func(t *entity.TenagaKerja) []any {
			return []any{t.ID, t.OwnerID, t.Nama, t.GajiBulanan, t.Aktif, t.CreatedAt, t.UpdatedAt}
		},
		scan: func(row pgx.Row) (*entity.TenagaKerja, error) {
			var t entity.TenagaKerja
			err := row.Scan(&t.ID, &t.OwnerID, &t.Nama, &t.GajiBulanan, &t.Aktif, &t.CreatedAt, &t.UpdatedAt)
			return &t, err
		},
	})
}

func NewPromoRepository(q Querier) *Table[entity.Promo, *entity.Promo] {
	return newTable[entity.Promo, *entity.Promo](q, tableSpec[entity.Promo]{
		name:    "promo",
		columns: []string{"id", "owner_id", "nama", "tipe", "nilai", "produk_ids", "aktif", "created_at", "updated_at"},
		values: func(p *entity.Promo) []any {
			return []any{p.ID, p.OwnerID, p.Nama, p.Tipe, p.Nilai, p.ProdukIDs, p.Aktif, p.CreatedAt, p.UpdatedAt}
		},
		scan: func(row pgx.Row) (*entity.Promo, error) {
			var p entity.Promo
			err := row.Scan(&p.ID, &p.OwnerID, &p.Nama, &p.Tipe, &p.Nilai, &p.ProdukIDs, &p.Aktif, &p.CreatedAt, &p.UpdatedAt)
			return &p, err
		},
	})
}

// KomposisiRepo is the BOM table plus the lookups the cost engine and delete guards need.
type KomposisiRepo struct {
	*Table[entity.Komposisi, *entity.Komposisi]
}

func NewKomposisiRepository(q Querier) *KomposisiRepo {
	return &KomposisiRepo{Table: newTable[entity.Komposisi, *entity.Komposisi](q, tableSpec[entity.Komposisi]{
		name:    "komposisi",
		columns: []string{"id", "owner_id", "produk_id", "bahan_id", "qty", "satuan", "created_at", "updated_at"},
		values: func(k *entity.Komposisi) []any {
			return []any{k.ID, k.OwnerID, k.ProdukID, k.BahanID, k.Qty, k.Satuan, k.CreatedAt, k.UpdatedAt}
		},
		scan: func(row pgx.Row) (*entity.Komposisi, error) {
			var k entity.Komposisi
			err := row.Scan(&k.ID, &k.OwnerID, &k.ProdukID, &k.BahanID, &k.Qty, &k.Satuan, &k.CreatedAt, &k.UpdatedAt)
			return &k, err
		},
	})}
}

func (r *KomposisiRepo) ListByProduk(ctx context.Context, ownerID, produkID string) ([]*entity.Komposisi, error) {
	return r.query(ctx, "list komposisi by produk",
		r.spec.selectSQL("owner_id = $1 AND produk_id = $2 ORDER BY created_at, id"), ownerID, produkID)
}

func (r *KomposisiRepo) CountByBahan(ctx context.Context, ownerID, bahanID string) (int, error) {
	return r.count(ctx, "count komposisi by bahan", "owner_id = $1 AND bahan_id = $2", ownerID, bahanID)
}

func (r *KomposisiRepo) CountByProduk(ctx context.Context, ownerID, produkID string) (int, error) {
	return r.count(ctx, "count komposisi by produk", "owner_id = $1 AND produk_id = $2", ownerID, produkID)
}
