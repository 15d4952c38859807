package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pricing log sources.
const (
	PriceSourceAISuggest   = "ai_suggest"
	PriceSourceRuleSuggest = "rule_suggest"
	PriceSourceManual      = "manual"
)

// PricingLog is the audit row written together with every applied price change.
type PricingLog struct {
	ID         string
	OwnerID    string
	ProdukID   string
	OldPrice   *decimal.Decimal
	NewPrice   decimal.Decimal
	Source     string
	InputsHash string
	CreatedAt  time.Time
}
