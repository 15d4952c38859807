// Package costing computes HPP (cost of goods per portion) from a bill of materials and
// per-portion allocations. It is pure: callers load the data and pass it in.
package costing

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/sigitdim/fortisapp-sub002/internal/domain"
)

// Line is one BOM line resolved against the ingredient catalog.
// UnitPrice is nil when the ingredient or its price could not be found.
type Line struct {
	BahanID   string
	BahanNama string
	Satuan    string
	Qty       decimal.Decimal
	UnitPrice *decimal.Decimal
}

// Subtotal is qty × unit price, zero when the price is unknown.
func (l Line) Subtotal() decimal.Decimal {
	if l.UnitPrice == nil {
		return decimal.Zero
	}
	return l.Qty.Mul(*l.UnitPrice)
}

// Breakdown is the per-portion cost of one product. Values keep full precision.
type Breakdown struct {
	BahanPerPorsi       decimal.Decimal
	OverheadPerPorsi    decimal.Decimal
	TenagaKerjaPerPorsi decimal.Decimal
	TotalHPP            decimal.Decimal
	Warnings            []string
}

// BahanPerPorsi returns Σ(qty × unit price) / yield. Lines without a price count as zero
// and produce a warning.
func BahanPerPorsi(lines []Line, yield decimal.Decimal) (decimal.Decimal, []string, error) {
	if !yield.IsPositive() {
		return decimal.Zero, nil, domain.ErrInvalidYield
	}
	var warnings []string
	sum := decimal.Zero
	for _, l := range lines {
		if l.UnitPrice == nil {
			name := l.BahanNama
			if name == "" {
				name = l.BahanID
			}
			warnings = append(warnings, fmt.Sprintf("bahan %s has no price, counted as 0", name))
			continue
		}
		sum = sum.Add(l.Subtotal())
	}
	return sum.Div(yield), warnings, nil
}

// Allocate spreads a monthly total over the monthly portion basis.
// ok is false when the basis is not positive; the share is then zero.
func Allocate(monthlyTotal, basis decimal.Decimal) (share decimal.Decimal, ok bool) {
	if !basis.IsPositive() {
		return decimal.Zero, false
	}
	return monthlyTotal.Div(basis), true
}

// Aggregate sums ingredient, overhead and labor cost per portion.
func Aggregate(lines []Line, yield, overheadPerPorsi, tenagaKerjaPerPorsi decimal.Decimal) (Breakdown, error) {
	bahan, warnings, err := BahanPerPorsi(lines, yield)
	if err != nil {
		return Breakdown{}, err
	}
	return Breakdown{
		BahanPerPorsi:       bahan,
		OverheadPerPorsi:    overheadPerPorsi,
		TenagaKerjaPerPorsi: tenagaKerjaPerPorsi,
		TotalHPP:            bahan.Add(overheadPerPorsi).Add(tenagaKerjaPerPorsi),
		Warnings:            warnings,
	}, nil
}
