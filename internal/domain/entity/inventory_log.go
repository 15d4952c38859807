package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement types of the ingredient ledger.
const (
	MovementIn     = "in"
	MovementOut    = "out"
	MovementAdjust = "adjust"
	MovementVoid   = "void"
)

// InventoryLog is one append-only ledger entry. SaldoBefore/SaldoAfter are the balance snapshot
// computed at write time; the authoritative balance is always the fold of the whole log.
type InventoryLog struct {
	ID          string
	OwnerID     string
	BahanID     string
	Tipe        string
	Qty         decimal.Decimal
	Catatan     string
	RefID       *string // void only: the entry being cancelled
	SaldoBefore decimal.Decimal
	SaldoAfter  decimal.Decimal
	CreatedAt   time.Time
}
