// Package pricing holds the margin, break-even and tier price formulas.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/sigitdim/fortisapp-sub002/internal/domain"
)

var one = decimal.NewFromInt(1)

// TierMargins are the standard margin tiers offered to the owner.
var TierMargins = []decimal.Decimal{
	decimal.RequireFromString("0.2"),
	decimal.RequireFromString("0.3"),
	decimal.RequireFromString("0.4"),
}

// DefaultTier is the tier used as base price when a product has no sell price yet.
var DefaultTier = decimal.RequireFromString("0.3")

type Tier struct {
	Margin decimal.Decimal
	Price  decimal.Decimal
}

// Analysis is the full margin picture of one price against one HPP.
type Analysis struct {
	HPP            decimal.Decimal
	Price          decimal.Decimal
	MarginAmount   decimal.Decimal
	MarginPct      decimal.Decimal
	BreakevenUnits int64
	Tiers          []Tier
}

// Margin returns max(0, price-hpp) and its share of price (0 when price is 0).
func Margin(price, hpp decimal.Decimal) (amount, pct decimal.Decimal, err error) {
	if price.IsNegative() || hpp.IsNegative() {
		return decimal.Zero, decimal.Zero, domain.ErrInvalidInput
	}
	amount = decimal.Max(decimal.Zero, price.Sub(hpp))
	if price.IsPositive() {
		pct = amount.Div(price)
	} else {
		pct = decimal.Zero
	}
	return amount, pct, nil
}

// BreakevenUnits is the number of portions per day needed to reach targetDailyProfit.
func BreakevenUnits(targetDailyProfit, marginAmount decimal.Decimal) (int64, error) {
	if targetDailyProfit.IsNegative() || marginAmount.IsNegative() {
		return 0, domain.ErrInvalidInput
	}
	if !marginAmount.IsPositive() {
		return 0, nil
	}
	return targetDailyProfit.Div(marginAmount).Ceil().IntPart(), nil
}

// PriceForMargin returns ceil(hpp / (1 - m)), the smallest whole price reaching margin m.
func PriceForMargin(hpp, m decimal.Decimal) (decimal.Decimal, error) {
	if hpp.IsNegative() || m.IsNegative() || m.GreaterThanOrEqual(one) {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return hpp.Div(one.Sub(m)).Ceil(), nil
}

// Tiers computes the price for each of TierMargins.
func Tiers(hpp decimal.Decimal) ([]Tier, error) {
	out := make([]Tier, 0, len(TierMargins))
	for _, m := range TierMargins {
		p, err := PriceForMargin(hpp, m)
		if err != nil {
			return nil, err
		}
		out = append(out, Tier{Margin: m, Price: p})
	}
	return out, nil
}

// Analyze combines Margin, BreakevenUnits and Tiers.
func Analyze(hpp, price, targetDailyProfit decimal.Decimal) (Analysis, error) {
	amount, pct, err := Margin(price, hpp)
	if err != nil {
		return Analysis{}, err
	}
	units, err := BreakevenUnits(targetDailyProfit, amount)
	if err != nil {
		return Analysis{}, err
	}
	tiers, err := Tiers(hpp)
	if err != nil {
		return Analysis{}, err
	}
	return Analysis{
		HPP:            hpp,
		Price:          price,
		MarginAmount:   amount,
		MarginPct:      pct,
		BreakevenUnits: units,
		Tiers:          tiers,
	}, nil
}
