package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OwnerSettings holds per-tenant costing and stock parameters. Nil fields fall back to config defaults.
type OwnerSettings struct {
	OwnerID           string
	PorsiBulanan      *decimal.Decimal
	LowStockThreshold *decimal.Decimal
	UpdatedAt         time.Time
}

// License is the tenant's entitlement to the premium features (AI suggest, apply, PDF report).
type License struct {
	OwnerID   string
	Active    bool
	ExpiresAt *time.Time
}

// ValidAt reports whether the license is active and not expired at t.
func (l *License) ValidAt(t time.Time) bool {
	if l == nil || !l.Active {
		return false
	}
	return l.ExpiresAt == nil || t.Before(*l.ExpiresAt)
}
