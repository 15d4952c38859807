// Package ledger folds the append-only ingredient log into balances.
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/sigitdim/fortisapp-sub002/internal/domain"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
)

// SignedDelta is the balance effect of a single entry on its own.
// A void contributes nothing; its effect is removing the entry it references from the fold.
func SignedDelta(e entity.InventoryLog) decimal.Decimal {
	switch e.Tipe {
	case entity.MovementIn:
		return e.Qty
	case entity.MovementOut:
		return e.Qty.Neg()
	case entity.MovementAdjust:
		return e.Qty
	default:
		return decimal.Zero
	}
}

// Voided returns the ids of entries cancelled by a void entry.
func Voided(entries []entity.InventoryLog) map[string]bool {
	out := make(map[string]bool)
	for _, e := range entries {
		if e.Tipe == entity.MovementVoid && e.RefID != nil {
			out[*e.RefID] = true
		}
	}
	return out
}

// Balance is the exact signed fold of the ordered log, skipping voided entries.
func Balance(entries []entity.InventoryLog) decimal.Decimal {
	voided := Voided(entries)
	saldo := decimal.Zero
	for _, e := range entries {
		if voided[e.ID] {
			continue
		}
		saldo = saldo.Add(SignedDelta(e))
	}
	return saldo
}

// ValidateQty checks the quantity rule of a movement type before anything is written.
func ValidateQty(tipe string, qty decimal.Decimal) error {
	switch tipe {
	case entity.MovementIn, entity.MovementOut:
		if !qty.IsPositive() {
			return domain.ErrInvalidQuantity
		}
	case entity.MovementAdjust:
		if qty.IsZero() {
			return domain.ErrInvalidQuantity
		}
	case entity.MovementVoid:
	default:
		return domain.Invalid("unknown movement tipe %q", tipe)
	}
	return nil
}

// VoidTarget finds the entry a void may cancel. The target must belong to bahanID,
// must not itself be a void and must not be voided already.
func VoidTarget(entries []entity.InventoryLog, bahanID, refID string) (*entity.InventoryLog, error) {
	if refID == "" {
		return nil, domain.Invalid("ref_id is required for void")
	}
	voided := Voided(entries)
	for i := range entries {
		e := entries[i]
		if e.ID != refID {
			continue
		}
		switch {
		case e.BahanID != bahanID:
			return nil, domain.Invalid("ref_id belongs to another bahan")
		case e.Tipe == entity.MovementVoid:
			return nil, domain.Invalid("a void entry cannot be voided")
		case voided[e.ID]:
			return nil, domain.Invalid("entry %s is already voided", refID)
		}
		return &e, nil
	}
	return nil, domain.Missing("inventory entry", refID)
}
