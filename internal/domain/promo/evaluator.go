// Package promo evaluates a promotion against a base price.
package promo

import (
	"github.com/shopspring/decimal"

	"github.com/sigitdim/fortisapp-sub002/internal/domain"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Result of evaluating a promo. Advisory promos leave the price unchanged.
type Result struct {
	BasePrice  decimal.Decimal
	FinalPrice decimal.Decimal
	Discount   decimal.Decimal
	Advisory   bool
	Label      string
}

// PercentOff returns price × (1 - clamp(value, 0, 100)/100).
func PercentOff(price, value decimal.Decimal) decimal.Decimal {
	v := decimal.Min(decimal.Max(value, decimal.Zero), hundred)
	return price.Mul(hundred.Sub(v)).Div(hundred)
}

// NominalOff returns max(0, price - value).
func NominalOff(price, value decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, price.Sub(value))
}

// Evaluate applies p to price.
func Evaluate(p entity.Promo, price decimal.Decimal) (Result, error) {
	if price.IsNegative() {
		return Result{}, domain.ErrInvalidInput
	}
	res := Result{BasePrice: price, FinalPrice: price}
	switch p.Tipe {
	case entity.PromoPercent:
		if p.Nilai == nil {
			return Result{}, domain.Invalid("percent promo has no nilai")
		}
		res.FinalPrice = PercentOff(price, *p.Nilai)
		res.Label = p.Nilai.String() + "% off"
	case entity.PromoNominal:
		if p.Nilai == nil {
			return Result{}, domain.Invalid("nominal promo has no nilai")
		}
		res.FinalPrice = NominalOff(price, *p.Nilai)
		res.Label = "minus " + p.Nilai.String()
	case entity.PromoBundle:
		res.Advisory, res.Label = true, "bundle"
	case entity.PromoBOGO:
		res.Advisory, res.Label = true, "buy one get one"
	case entity.PromoAddon:
		res.Advisory, res.Label = true, "add-on"
	default:
		return Result{}, domain.Invalid("unknown promo tipe %q", p.Tipe)
	}
	res.Discount = price.Sub(res.FinalPrice)
	return res, nil
}
