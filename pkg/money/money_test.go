package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRupiah(t *testing.T) {
	assert.Equal(t, "Rp 11.429", Rupiah(decimal.NewFromInt(11429)))
	assert.Equal(t, "Rp 1.000.000", Rupiah(decimal.NewFromInt(1_000_000)))
	assert.Equal(t, "Rp 2.001", Rupiah(decimal.RequireFromString("2000.6")))
	assert.Equal(t, "Rp 500", Rupiah(decimal.NewFromInt(500)))
}

func TestQty(t *testing.T) {
	assert.Equal(t, "0.25", Qty(decimal.RequireFromString("0.2500")))
	assert.Equal(t, "2", Qty(decimal.NewFromInt(2)))
}
