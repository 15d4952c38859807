package costing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigitdim/fortisapp-sub002/internal/domain"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/costing"
)

func price(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestBahanPerPorsi_Scenario(t *testing.T) {
	lines := []costing.Line{
		{BahanID: "gula", Qty: decimal.NewFromInt(2), UnitPrice: price(1500)},
		{BahanID: "kopi", Qty: decimal.NewFromInt(1), UnitPrice: price(3000)},
	}
	got, warnings, err := costing.BahanPerPorsi(lines, decimal.NewFromInt(3))
	require.NoError(t, err)
	assert.True(t, got.Equal(decimal.NewFromInt(2000)), "got %s", got)
	assert.Empty(t, warnings)
}

func TestBahanPerPorsi(t *testing.T) {
	tests := []struct {
		name     string
		lines    []costing.Line
		yield    decimal.Decimal
		want     decimal.Decimal
		warnings int
		err      error
	}{
		{name: "empty BOM", yield: decimal.NewFromInt(4), want: decimal.Zero},
		{
			name:  "fractional qty",
			lines: []costing.Line{{Qty: decimal.RequireFromString("0.25"), UnitPrice: price(80000)}},
			yield: decimal.NewFromInt(2),
			want:  decimal.NewFromInt(10000),
		},
		{
			name: "missing price counts as zero",
			lines: []costing.Line{
				{BahanID: "a", Qty: decimal.NewFromInt(2), UnitPrice: price(100)},
				{BahanID: "b", BahanNama: "Susu", Qty: decimal.NewFromInt(5)},
			},
			yield:    decimal.NewFromInt(1),
			want:     decimal.NewFromInt(200),
			warnings: 1,
		},
		{name: "zero yield", yield: decimal.Zero, err: domain.ErrInvalidYield},
		{name: "negative yield", yield: decimal.NewFromInt(-1), err: domain.ErrInvalidYield},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, warnings, err := costing.BahanPerPorsi(tt.lines, tt.yield)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				assert.ErrorIs(t, err, domain.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s want %s", got, tt.want)
			assert.Len(t, warnings, tt.warnings)
		})
	}
}

func TestAllocate(t *testing.T) {
	share, ok := costing.Allocate(decimal.NewFromInt(3_000_000), decimal.NewFromInt(1500))
	assert.True(t, ok)
	assert.True(t, share.Equal(decimal.NewFromInt(2000)))

	share, ok = costing.Allocate(decimal.NewFromInt(3_000_000), decimal.Zero)
	assert.False(t, ok)
	assert.True(t, share.IsZero())
}

func TestAggregate(t *testing.T) {
	lines := []costing.Line{{Qty: decimal.NewFromInt(2), UnitPrice: price(1500)}, {Qty: decimal.NewFromInt(1), UnitPrice: price(3000)}}
	b, err := costing.Aggregate(lines, decimal.NewFromInt(3), decimal.NewFromInt(500), decimal.NewFromInt(1000))
	require.NoError(t, err)
	assert.True(t, b.BahanPerPorsi.Equal(decimal.NewFromInt(2000)))
	assert.True(t, b.TotalHPP.Equal(decimal.NewFromInt(3500)))
}
