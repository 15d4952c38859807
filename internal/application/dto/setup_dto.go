package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
)

// Request bodies map to entities in exactly one place: their ToEntity method.
// Response constructors are the inverse mapping.

type BahanRequest struct {
	Nama        string          `json:"nama"`
	Satuan      string          `json:"satuan"`
	HargaSatuan decimal.Decimal `json:"harga_satuan"`
}

func (r BahanRequest) ToEntity() entity.Bahan {
	return entity.Bahan{Nama: r.Nama, Satuan: r.Satuan, HargaSatuan: r.HargaSatuan}
}

type BahanResponse struct {
	ID          string          `json:"id"`
	Nama        string          `json:"nama"`
	Satuan      string          `json:"satuan"`
	HargaSatuan decimal.Decimal `json:"harga_satuan"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func NewBahanResponse(b *entity.Bahan) BahanResponse {
	return BahanResponse{ID: b.ID, Nama: b.Nama, Satuan: b.Satuan, HargaSatuan: b.HargaSatuan,
		CreatedAt: b.CreatedAt, UpdatedAt: b.UpdatedAt}
}

type ProdukRequest struct {
	Nama         string           `json:"nama"`
	Kategori     string           `json:"kategori"`
	YieldPorsi   decimal.Decimal  `json:"yield_porsi"`
	TargetMargin *decimal.Decimal `json:"target_margin"`
	HargaJual    *decimal.Decimal `json:"harga_jual"`
}

func (r ProdukRequest) ToEntity() entity.Produk {
	return entity.Produk{Nama: r.Nama, Kategori: r.Kategori, YieldPorsi: r.YieldPorsi,
		TargetMargin: r.TargetMargin, HargaJual: r.HargaJual}
}

type ProdukResponse struct {
	ID           string           `json:"id"`
	Nama         string           `json:"nama"`
	Kategori     string           `json:"kategori,omitempty"`
	YieldPorsi   decimal.Decimal  `json:"yield_porsi"`
	TargetMargin *decimal.Decimal `json:"target_margin"`
	HargaJual    *decimal.Decimal `json:"harga_jual"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func NewProdukResponse(p *entity.Produk) ProdukResponse {
	return ProdukResponse{ID: p.ID, Nama: p.Nama, Kategori: p.Kategori, YieldPorsi: p.YieldPorsi,
		TargetMargin: p.TargetMargin, HargaJual: p.HargaJual, CreatedAt: p.CreatedAt, UpdatedAt: p.UpdatedAt}
}

type KomposisiRequest struct {
	ProdukID string          `json:"produk_id"`
	BahanID  string          `json:"bahan_id"`
	Qty      decimal.Decimal `json:"qty"`
	Satuan   string          `json:"satuan"`
}

func (r KomposisiRequest) ToEntity() entity.Komposisi {
	return entity.Komposisi{ProdukID: r.ProdukID, BahanID: r.BahanID, Qty: r.Qty, Satuan: r.Satuan}
}

type KomposisiResponse struct {
	ID        string          `json:"id"`
	ProdukID  string          `json:"produk_id"`
	BahanID   string          `json:"bahan_id"`
	Qty       decimal.Decimal `json:"qty"`
	Satuan    string          `json:"satuan"`
	CreatedAt time.Time       `json:"created_at"`
}

func NewKomposisiResponse(k *entity.Komposisi) KomposisiResponse {
	return KomposisiResponse{ID: k.ID, ProdukID: k.ProdukID, BahanID: k.BahanID, Qty: k.Qty, Satuan: k.Satuan,
		CreatedAt: k.CreatedAt}
}

type OverheadRequest struct {
	Nama         string          `json:"nama"`
	BiayaBulanan decimal.Decimal `json:"biaya_bulanan"`
	Catatan      string          `json:"catatan"`
	Aktif        *bool           `json:"aktif"` // defaults to true
}

func (r OverheadRequest) ToEntity() entity.Overhead {
	return entity.Overhead{Nama: r.Nama, BiayaBulanan: r.BiayaBulanan, Catatan: r.Catatan, Aktif: boolOr(r.Aktif, true)}
}

type OverheadResponse struct {
	ID           string          `json:"id"`
	Nama         string          `json:"nama"`
	BiayaBulanan decimal.Decimal `json:"biaya_bulanan"`
	Catatan      string          `json:"catatan,omitempty"`
	Aktif        bool            `json:"aktif"`
	CreatedAt    time.Time       `json:"created_at"`
}

func NewOverheadResponse(o *entity.Overhead) OverheadResponse {
	return OverheadResponse{ID: o.ID, Nama: o.Nama, BiayaBulanan: o.BiayaBulanan, Catatan: o.Catatan,
		Aktif: o.Aktif, CreatedAt: o.CreatedAt}
}

type TenagaKerjaRequest struct {
	Nama        string          `json:"nama"`
	GajiBulanan decimal.Decimal `json:"gaji_bulanan"`
	Aktif       *bool           `json:"aktif"` // defaults to true
}

func (r TenagaKerjaRequest) ToEntity() entity.TenagaKerja {
	return entity.TenagaKerja{Nama: r.Nama, GajiBulanan: r.GajiBulanan, Aktif: boolOr(r.Aktif, true)}
}

type TenagaKerjaResponse struct {
	ID          string          `json:"id"`
	Nama        string          `json:"nama"`
	GajiBulanan decimal.Decimal `json:"gaji_bulanan"`
	Aktif       bool            `json:"aktif"`
	CreatedAt   time.Time       `json:"created_at"`
}

func NewTenagaKerjaResponse(t *entity.TenagaKerja) TenagaKerjaResponse {
	return TenagaKerjaResponse{ID: t.ID, Nama: t.Nama, GajiBulanan: t.GajiBulanan, Aktif: t.Aktif, CreatedAt: t.CreatedAt}
}

// SettingsRequest body of PUT /settings. Omitted fields reset to the defaults.
type SettingsRequest struct {
	PorsiBulanan      *decimal.Decimal `json:"porsi_bulanan"`
	LowStockThreshold *decimal.Decimal `json:"low_stock_threshold"`
}

// SettingsResponse carries the effective values after defaults are applied.
type SettingsResponse struct {
	PorsiBulanan      decimal.Decimal `json:"porsi_bulanan"`
	LowStockThreshold decimal.Decimal `json:"low_stock_threshold"`
	Custom            bool            `json:"custom"`
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
