package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sigitdim/fortisapp-sub002/internal/domain"
)

// Produk is a sellable menu item. YieldPorsi is the number of portions one BOM batch produces.
type Produk struct {
	ID           string
	OwnerID      string
	Nama         string
	Kategori     string
	YieldPorsi   decimal.Decimal
	TargetMargin *decimal.Decimal // fraction in [0, 1)
	HargaJual    *decimal.Decimal // user-set sell price
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (p *Produk) Key() string        { return p.ID }
func (p *Produk) Owner() string      { return p.OwnerID }
func (p *Produk) Created() time.Time { return p.CreatedAt }

func (p *Produk) Stamp(id, ownerID string, created, updated time.Time) {
	p.ID, p.OwnerID, p.CreatedAt, p.UpdatedAt = id, ownerID, created, updated
}

func (p *Produk) Validate() error {
	if strings.TrimSpace(p.Nama) == "" {
		return domain.Invalid("nama is required")
	}
	if !p.YieldPorsi.IsPositive() {
		return domain.ErrInvalidYield
	}
	if p.TargetMargin != nil && (p.TargetMargin.IsNegative() || p.TargetMargin.GreaterThanOrEqual(decimal.NewFromInt(1))) {
		return domain.Invalid("target_margin must be in [0, 1)")
	}
	if p.HargaJual != nil && p.HargaJual.IsNegative() {
		return domain.Invalid("harga_jual must not be negative")
	}
	return nil
}
