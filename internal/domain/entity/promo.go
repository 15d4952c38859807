package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sigitdim/fortisapp-sub002/internal/domain"
)

// Promo types. Bundle, BOGO and add-on carry no price formula and are evaluated as advisory.
const (
	PromoPercent = "percent"
	PromoNominal = "nominal"
	PromoBundle  = "bundle"
	PromoBOGO    = "bogo"
	PromoAddon   = "addon"
)

// promoAliases maps the long spellings accepted on input to the stored tipe.
var promoAliases = map[string]string{
	"buy-one-get-one": PromoBOGO,
	"add-on":          PromoAddon,
}

// NormalizePromoTipe returns the stored spelling of tipe.
func NormalizePromoTipe(tipe string) string {
	if canonical, ok := promoAliases[tipe]; ok {
		return canonical
	}
	return tipe
}

type Promo struct {
	ID        string
	OwnerID   string
	Nama      string
	Tipe      string
	Nilai     *decimal.Decimal
	ProdukIDs []string
	Aktif     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (p *Promo) Key() string        { return p.ID }
func (p *Promo) Owner() string      { return p.OwnerID }
func (p *Promo) Created() time.Time { return p.CreatedAt }

func (p *Promo) Stamp(id, ownerID string, created, updated time.Time) {
	p.ID, p.OwnerID, p.CreatedAt, p.UpdatedAt = id, ownerID, created, updated
}

// Covers reports whether the promo applies to produkID.
func (p *Promo) Covers(produkID string) bool {
	for _, id := range p.ProdukIDs {
		if id == produkID {
			return true
		}
	}
	return false
}

func (p *Promo) Validate() error {
	switch p.Tipe {
	case PromoPercent, PromoNominal:
		if p.Nilai == nil {
			return domain.Invalid("nilai is required for %s promos", p.Tipe)
		}
		if p.Nilai.IsNegative() {
			return domain.Invalid("nilai must not be negative")
		}
	case PromoBundle, PromoBOGO, PromoAddon:
		if p.Nilai != nil && p.Nilai.IsNegative() {
			return domain.Invalid("nilai must not be negative")
		}
	default:
		return domain.Invalid("unknown promo tipe %q", p.Tipe)
	}
	if len(p.ProdukIDs) == 0 {
		return domain.Invalid("at least one produk_id is required")
	}
	return nil
}
