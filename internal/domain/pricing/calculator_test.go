package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigitdim/fortisapp-sub002/internal/domain"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/pricing"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestMargin_Scenario(t *testing.T) {
	amount, pct, err := pricing.Margin(d("10000"), d("8000"))
	require.NoError(t, err)
	assert.True(t, amount.Equal(d("2000")))
	assert.True(t, pct.Equal(d("0.2")))
}

func TestMargin_NeverNegative(t *testing.T) {
	tests := []struct{ price, hpp, amount, pct string }{
		{"5000", "8000", "0", "0"},
		{"0", "8000", "0", "0"},
		{"0", "0", "0", "0"},
		{"12000", "0", "12000", "1"},
	}
	for _, tt := range tests {
		amount, pct, err := pricing.Margin(d(tt.price), d(tt.hpp))
		require.NoError(t, err)
		assert.True(t, amount.Equal(d(tt.amount)), "amount for %s/%s", tt.price, tt.hpp)
		assert.True(t, pct.Equal(d(tt.pct)), "pct for %s/%s", tt.price, tt.hpp)
		assert.False(t, pct.IsNegative())
	}
}

func TestMargin_RejectsNegative(t *testing.T) {
	_, _, err := pricing.Margin(d("-1"), d("10"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, _, err = pricing.Margin(d("10"), d("-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPriceForMargin_Scenario(t *testing.T) {
	p, err := pricing.PriceForMargin(d("8000"), d("0.3"))
	require.NoError(t, err)
	assert.True(t, p.Equal(d("11429")), "got %s", p)
}

func TestPriceForMargin_InvalidMargin(t *testing.T) {
	for _, m := range []string{"-0.1", "1", "1.5"} {
		_, err := pricing.PriceForMargin(d("8000"), d(m))
		assert.ErrorIs(t, err, domain.ErrInvalidInput, m)
	}
}

func TestTiers_RoundTrip(t *testing.T) {
	for _, hpp := range []string{"1000", "8000", "12345.67", "250000"} {
		tiers, err := pricing.Tiers(d(hpp))
		require.NoError(t, err)
		require.Len(t, tiers, 3)
		for _, tier := range tiers {
			_, pct, err := pricing.Margin(tier.Price, d(hpp))
			require.NoError(t, err)
			assert.InDelta(t, tier.Margin.InexactFloat64(), pct.InexactFloat64(), 0.001, "hpp %s tier %s", hpp, tier.Margin)
			assert.True(t, pct.GreaterThanOrEqual(tier.Margin), "ceil never undershoots")
		}
	}
}

func TestBreakevenUnits(t *testing.T) {
	units, err := pricing.BreakevenUnits(d("500000"), d("2000"))
	require.NoError(t, err)
	assert.Equal(t, int64(250), units)

	units, err = pricing.BreakevenUnits(d("500001"), d("2000"))
	require.NoError(t, err)
	assert.Equal(t, int64(251), units)

	units, err = pricing.BreakevenUnits(d("500000"), decimal.Zero)
	require.NoError(t, err)
	assert.Zero(t, units)
}

func TestAnalyze(t *testing.T) {
	a, err := pricing.Analyze(d("8000"), d("10000"), d("100000"))
	require.NoError(t, err)
	assert.Equal(t, int64(50), a.BreakevenUnits)
	assert.True(t, a.Tiers[1].Price.Equal(d("11429")))
}
