package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type TierPrice struct {
	MarginPct decimal.Decimal `json:"margin_pct"`
	Price     decimal.Decimal `json:"price"`
}

// MarginResponse body of GET /pricing/margin.
type MarginResponse struct {
	ProdukID           string          `json:"produk_id"`
	HPP                decimal.Decimal `json:"hpp"`
	Harga              decimal.Decimal `json:"harga"`
	MarginAmount       decimal.Decimal `json:"margin_amount"`
	MarginPct          decimal.Decimal `json:"margin_pct"`
	TargetProfitHarian decimal.Decimal `json:"target_profit_harian"`
	BreakevenUnits     int64           `json:"breakeven_units"`
	Tiers              []TierPrice     `json:"tiers"`
}

// SuggestRequest body of POST /pricing/suggest. TargetMarginPct is a percentage in [0, 100).
type SuggestRequest struct {
	ProdukID        string          `json:"produk_id"`
	TargetMarginPct decimal.Decimal `json:"target_margin_pct"`
}

// Suggestion sources.
const (
	SourceAI   = "ai"
	SourceRule = "rule"
)

type SuggestResponse struct {
	ProdukID         string          `json:"produk_id"`
	TotalHPP         decimal.Decimal `json:"total_hpp"`
	TargetMarginPct  decimal.Decimal `json:"target_margin_pct"`
	TargetPrice      decimal.Decimal `json:"target_price"`
	Tiers            []TierPrice     `json:"tiers"`
	RecommendedPrice decimal.Decimal `json:"recommended_price"`
	Source           string          `json:"source"`
	Reasoning        string          `json:"reasoning,omitempty"`
	InputsHash       string          `json:"inputs_hash"`
	Cached           bool            `json:"cached"`
}

// ApplyRequest body of POST /pricing/apply. Source is the suggestion the price came from
// (ai or rule, inputs_hash required) or manual; empty means ai.
type ApplyRequest struct {
	ProdukID         string          `json:"produk_id"`
	RecommendedPrice decimal.Decimal `json:"recommended_price"`
	InputsHash       string          `json:"inputs_hash"`
	Source           string          `json:"source"`
}

// SourceManual marks a price typed in by the owner rather than taken from a suggestion.
const SourceManual = "manual"

type ApplyResponse struct {
	ProdukID string           `json:"produk_id"`
	OldPrice *decimal.Decimal `json:"old_price"`
	NewPrice decimal.Decimal  `json:"new_price"`
	LogID    string           `json:"log_id"`
}

type PricingLogResponse struct {
	ID         string           `json:"id"`
	ProdukID   string           `json:"produk_id"`
	OldPrice   *decimal.Decimal `json:"old_price"`
	NewPrice   decimal.Decimal  `json:"new_price"`
	Source     string           `json:"source"`
	InputsHash string           `json:"inputs_hash"`
	CreatedAt  time.Time        `json:"created_at"`
}

// AIPriceRequest is what the price advisor sees about a product.
type AIPriceRequest struct {
	ProdukNama          string
	Kategori            string
	BahanPerPorsi       decimal.Decimal
	OverheadPerPorsi    decimal.Decimal
	TenagaKerjaPerPorsi decimal.Decimal
	TotalHPP            decimal.Decimal
	TargetMarginPct     decimal.Decimal
	RulePrice           decimal.Decimal
	Tiers               []TierPrice
}

// AIPriceAdvice is the advisor's answer.
type AIPriceAdvice struct {
	RecommendedPrice decimal.Decimal `json:"recommended_price"`
	Reasoning        string          `json:"reasoning"`
}
