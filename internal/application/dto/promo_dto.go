package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
)

// PromoRequest body of POST /promo. Tipe also accepts buy-one-get-one and add-on, stored
// as bogo and addon.
type PromoRequest struct {
	Nama      string           `json:"nama"`
	Tipe      string           `json:"tipe"`
	Nilai     *decimal.Decimal `json:"nilai"`
	ProdukIDs []string         `json:"produk_ids"`
	Aktif     *bool            `json:"aktif"` // defaults to true
}

func (r PromoRequest) ToEntity() entity.Promo {
	return entity.Promo{Nama: r.Nama, Tipe: entity.NormalizePromoTipe(r.Tipe), Nilai: r.Nilai, ProdukIDs: r.ProdukIDs, Aktif: boolOr(r.Aktif, true)}
}

type PromoResponse struct {
	ID        string           `json:"id"`
	Nama      string           `json:"nama,omitempty"`
	Tipe      string           `json:"tipe"`
	Nilai     *decimal.Decimal `json:"nilai"`
	ProdukIDs []string         `json:"produk_ids"`
	Aktif     bool             `json:"aktif"`
	CreatedAt time.Time        `json:"created_at"`
}

func NewPromoResponse(p *entity.Promo) PromoResponse {
	return PromoResponse{ID: p.ID, Nama: p.Nama, Tipe: p.Tipe, Nilai: p.Nilai, ProdukIDs: p.ProdukIDs,
		Aktif: p.Aktif, CreatedAt: p.CreatedAt}
}

type SetActiveRequest struct {
	Aktif bool `json:"aktif"`
}

// Base price sources of a promo evaluation.
const (
	PriceFromHargaJual = "harga_jual"
	PriceFromHPPTier   = "hpp_tier_30"
)

type PromoEvaluation struct {
	PromoID     string          `json:"promo_id"`
	ProdukID    string          `json:"produk_id"`
	Tipe        string          `json:"tipe"`
	BasePrice   decimal.Decimal `json:"base_price"`
	PriceSource string          `json:"price_source"`
	FinalPrice  decimal.Decimal `json:"final_price"`
	Discount    decimal.Decimal `json:"discount"`
	Advisory    bool            `json:"advisory"`
	Label       string          `json:"label"`
}
