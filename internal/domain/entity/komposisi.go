package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sigitdim/fortisapp-sub002/internal/domain"
)

// Komposisi is one bill-of-materials line: Qty of an ingredient used per product batch.
// Satuan is stored as entered; cost aggregation assumes it equals the ingredient's base unit.
type Komposisi struct {
	ID        string
	OwnerID   string
	ProdukID  string
	BahanID   string
	Qty       decimal.Decimal
	Satuan    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (k *Komposisi) Key() string        { return k.ID }
func (k *Komposisi) Owner() string      { return k.OwnerID }
func (k *Komposisi) Created() time.Time { return k.CreatedAt }

func (k *Komposisi) Stamp(id, ownerID string, created, updated time.Time) {
	k.ID, k.OwnerID, k.CreatedAt, k.UpdatedAt = id, ownerID, created, updated
}

func (k *Komposisi) Validate() error {
	if strings.TrimSpace(k.ProdukID) == "" || strings.TrimSpace(k.BahanID) == "" {
		return domain.Invalid("produk_id and bahan_id are required")
	}
	if !k.Qty.IsPositive() {
		return domain.ErrInvalidQuantity
	}
	return nil
}
