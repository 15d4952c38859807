package costing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWeightedAverage(t *testing.T) {
	d := decimal.NewFromInt
	tests := []struct {
		name                       string
		stock, cost, qtyIn, costIn decimal.Decimal
		want                       decimal.Decimal
	}{
		{"empty stock takes the purchase cost", d(0), d(100), d(10), d(120), d(120)},
		{"equal quantities average evenly", d(10), d(100), d(10), d(120), d(110)},
		{"weighted by quantity", d(30), d(100), d(10), d(140), d(110)},
		{"negative stock counts as empty", d(-5), d(100), d(10), d(90), d(90)},
		{"nothing received", d(0), d(100), d(0), d(90), d(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WeightedAverage(tt.stock, tt.cost, tt.qtyIn, tt.costIn)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}
