package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sigitdim/fortisapp-sub002/internal/domain"
)

// Bahan is a raw ingredient with its purchase price per base unit.
type Bahan struct {
	ID          string
	OwnerID     string
	Nama        string
	Satuan      string // base unit: gr, ml, pcs...
	HargaSatuan decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (b *Bahan) Key() string        { return b.ID }
func (b *Bahan) Owner() string      { return b.OwnerID }
func (b *Bahan) Created() time.Time { return b.CreatedAt }

func (b *Bahan) Stamp(id, ownerID string, created, updated time.Time) {
	b.ID, b.OwnerID, b.CreatedAt, b.UpdatedAt = id, ownerID, created, updated
}

func (b *Bahan) Validate() error {
	if strings.TrimSpace(b.Nama) == "" {
		return domain.Invalid("nama is required")
	}
	if strings.TrimSpace(b.Satuan) == "" {
		return domain.Invalid("satuan is required")
	}
	if b.HargaSatuan.IsNegative() {
		return domain.Invalid("harga_satuan must not be negative")
	}
	return nil
}

// BahanPriceLog records a change of an ingredient's unit price. Append-only.
type BahanPriceLog struct {
	ID        string
	OwnerID   string
	BahanID   string
	OldPrice  decimal.Decimal
	NewPrice  decimal.Decimal
	CreatedAt time.Time
}
