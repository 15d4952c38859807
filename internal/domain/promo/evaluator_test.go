package promo_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigitdim/fortisapp-sub002/internal/domain"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/promo"
)

func ptr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestPercentOff_BoundedAndMonotonic(t *testing.T) {
	price := decimal.NewFromInt(15000)
	prev := price
	for v := int64(0); v <= 100; v += 5 {
		got := promo.PercentOff(price, decimal.NewFromInt(v))
		assert.False(t, got.IsNegative(), "value %d", v)
		assert.True(t, got.LessThanOrEqual(price), "value %d", v)
		assert.True(t, got.LessThanOrEqual(prev), "monotonic at %d", v)
		prev = got
	}
	assert.True(t, promo.PercentOff(price, decimal.NewFromInt(150)).IsZero(), "clamped above 100")
	assert.True(t, promo.PercentOff(price, decimal.NewFromInt(-10)).Equal(price), "clamped below 0")
}

func TestEvaluate(t *testing.T) {
	price := decimal.NewFromInt(20000)
	tests := []struct {
		name     string
		promo    entity.Promo
		final    int64
		advisory bool
	}{
		{"percent", entity.Promo{Tipe: entity.PromoPercent, Nilai: ptr(25)}, 15000, false},
		{"nominal", entity.Promo{Tipe: entity.PromoNominal, Nilai: ptr(5000)}, 15000, false},
		{"nominal floors at zero", entity.Promo{Tipe: entity.PromoNominal, Nilai: ptr(50000)}, 0, false},
		{"bundle", entity.Promo{Tipe: entity.PromoBundle}, 20000, true},
		{"bogo", entity.Promo{Tipe: entity.PromoBOGO}, 20000, true},
		{"addon", entity.Promo{Tipe: entity.PromoAddon, Nilai: ptr(3000)}, 20000, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := promo.Evaluate(tt.promo, price)
			require.NoError(t, err)
			assert.True(t, res.FinalPrice.Equal(decimal.NewFromInt(tt.final)), "got %s", res.FinalPrice)
			assert.Equal(t, tt.advisory, res.Advisory)
			assert.True(t, res.Discount.Equal(price.Sub(res.FinalPrice)))
		})
	}
}

func TestEvaluate_Errors(t *testing.T) {
	_, err := promo.Evaluate(entity.Promo{Tipe: entity.PromoPercent, Nilai: ptr(10)}, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = promo.Evaluate(entity.Promo{Tipe: "cashback"}, decimal.NewFromInt(100))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPromoValidate(t *testing.T) {
	ok := entity.Promo{Tipe: entity.PromoPercent, Nilai: ptr(10), ProdukIDs: []string{"p1"}}
	assert.NoError(t, ok.Validate())

	noProducts := ok
	noProducts.ProdukIDs = nil
	assert.ErrorIs(t, noProducts.Validate(), domain.ErrValidation)

	noValue := entity.Promo{Tipe: entity.PromoNominal, ProdukIDs: []string{"p1"}}
	assert.ErrorIs(t, noValue.Validate(), domain.ErrValidation)

	negative := entity.Promo{Tipe: entity.PromoPercent, Nilai: ptr(-1), ProdukIDs: []string{"p1"}}
	assert.ErrorIs(t, negative.Validate(), domain.ErrValidation)

	advisory := entity.Promo{Tipe: entity.PromoBOGO, ProdukIDs: []string{"p1"}}
	assert.NoError(t, advisory.Validate())
}
