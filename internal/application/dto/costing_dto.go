package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// HPPBreakdown per-portion cost components, rounded to whole currency units.
type HPPBreakdown struct {
	BahanPerPorsi       decimal.Decimal `json:"bahan_per_porsi"`
	OverheadPerPorsi    decimal.Decimal `json:"overhead_per_porsi"`
	TenagaKerjaPerPorsi decimal.Decimal `json:"tenaga_kerja_per_porsi"`
	TotalHPP            decimal.Decimal `json:"total_hpp"`
}

// FinalPriceResponse body of GET /pricing/final.
type FinalPriceResponse struct {
	OK       bool            `json:"ok"`
	OwnerID  string          `json:"owner_id"`
	ProdukID string          `json:"produk_id"`
	HPP      HPPBreakdown    `json:"hpp"`
	TotalHPP decimal.Decimal `json:"total_hpp"`
	Warnings []string        `json:"warnings,omitempty"`
	Note     string          `json:"note,omitempty"`
}

// CostSheetLine one BOM row of the PDF report.
type CostSheetLine struct {
	BahanNama string
	Satuan    string
	Qty       decimal.Decimal
	UnitPrice decimal.Decimal
	Subtotal  decimal.Decimal
}

// CostSheet input of the PDF generator.
type CostSheet struct {
	ProdukNama      string
	Kategori        string
	YieldPorsi      decimal.Decimal
	Lines           []CostSheetLine
	HPP             HPPBreakdown
	OverheadBulanan decimal.Decimal
	GajiBulanan     decimal.Decimal
	PorsiBulanan    decimal.Decimal
	HargaJual       *decimal.Decimal
	Tiers           []TierPrice
	Warnings        []string
	GeneratedAt     time.Time
}
