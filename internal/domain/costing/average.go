package costing

import "github.com/shopspring/decimal"

// WeightedAverage is the unit cost after receiving qtyIn at costIn on top of stock held at cost:
//
//	(stock*cost + qtyIn*costIn) / (stock + qtyIn)
//
// A negative stock counts as empty. Returns costIn when nothing is held and zero when the total
// quantity is not positive.
func WeightedAverage(stock, cost, qtyIn, costIn decimal.Decimal) decimal.Decimal {
	if stock.IsNegative() {
		stock = decimal.Zero
	}
	sum := stock.Add(qtyIn)
	if !sum.IsPositive() {
		return decimal.Zero
	}
	num := stock.Mul(cost).Add(qtyIn.Mul(costIn))
	return num.Div(sum)
}
