package costing_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appcosting "github.com/sigitdim/fortisapp-sub002/internal/application/costing"
	"github.com/sigitdim/fortisapp-sub002/internal/application/dto"
	"github.com/sigitdim/fortisapp-sub002/internal/domain"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
	"github.com/sigitdim/fortisapp-sub002/internal/infrastructure/memory"
)

const owner = "owner-1"

var d = decimal.NewFromInt

type fixture struct {
	store  *memory.Store
	produk string
}

// seed builds Es Kopi Susu: yield 2, 80 g kopi at 100 and 150 ml susu at 20, with
// 3.000.000 overhead and 6.000.000 labor a month over 3.000 portions.
func seed(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore(decimal.Zero)

	add := func(err error) { require.NoError(t, err) }
	add(s.Bahan.Create(ctx, &entity.Bahan{ID: "kopi", OwnerID: owner, Nama: "Kopi", Satuan: "gram", HargaSatuan: d(100)}))
	add(s.Bahan.Create(ctx, &entity.Bahan{ID: "susu", OwnerID: owner, Nama: "Susu", Satuan: "ml", HargaSatuan: d(20)}))
	add(s.Produk.Create(ctx, &entity.Produk{ID: "eskopi", OwnerID: owner, Nama: "Es Kopi Susu", YieldPorsi: d(2)}))
	add(s.Komposisi.Create(ctx, &entity.Komposisi{ID: "k1", OwnerID: owner, ProdukID: "eskopi", BahanID: "kopi", Qty: d(80)}))
	add(s.Komposisi.Create(ctx, &entity.Komposisi{ID: "k2", OwnerID: owner, ProdukID: "eskopi", BahanID: "susu", Qty: d(150), Satuan: "ml"}))
	add(s.Overhead.Create(ctx, &entity.Overhead{ID: "o1", OwnerID: owner, Nama: "Sewa", BiayaBulanan: d(3000000), Aktif: true}))
	add(s.Overhead.Create(ctx, &entity.Overhead{ID: "o2", OwnerID: owner, Nama: "Lama", BiayaBulanan: d(1000000), Aktif: false}))
	add(s.TenagaKerja.Create(ctx, &entity.TenagaKerja{ID: "t1", OwnerID: owner, Nama: "Barista", GajiBulanan: d(6000000), Aktif: true}))
	porsi := d(3000)
	add(s.Settings.Upsert(ctx, &entity.OwnerSettings{OwnerID: owner, PorsiBulanan: &porsi}))
	return fixture{store: s, produk: "eskopi"}
}

func newUseCase(s *memory.Store, pdf *fakePDF) *appcosting.UseCase {
	if pdf == nil {
		return appcosting.NewUseCase(s.Produk, s.Bahan, s.Komposisi, s, nil)
	}
	return appcosting.NewUseCase(s.Produk, s.Bahan, s.Komposisi, s, pdf)
}

type fakePDF struct {
	sheet dto.CostSheet
	err   error
}

func (f *fakePDF) GenerateCostSheet(sheet dto.CostSheet) ([]byte, error) {
	f.sheet = sheet
	if f.err != nil {
		return nil, f.err
	}
	return []byte("%PDF-1.4"), nil
}

func TestCompute_FullBreakdown(t *testing.T) {
	f := seed(t)
	res, err := newUseCase(f.store, nil).Compute(context.Background(), owner, f.produk)
	require.NoError(t, err)

	assert.True(t, res.BahanPerPorsi.Equal(d(5500)), res.BahanPerPorsi.String())
	assert.True(t, res.OverheadPerPorsi.Equal(d(1000)), res.OverheadPerPorsi.String())
	assert.True(t, res.TenagaKerjaPerPorsi.Equal(d(2000)), res.TenagaKerjaPerPorsi.String())
	assert.True(t, res.TotalHPP.Equal(d(8500)), res.TotalHPP.String())
	assert.Empty(t, res.Warnings)
	require.Len(t, res.Lines, 2)
	assert.Equal(t, "gram", res.Lines[0].Satuan, "unit defaults to the ingredient unit")
}

func TestCompute_MissingIngredientCountsZero(t *testing.T) {
	f := seed(t)
	ctx := context.Background()
	require.NoError(t, f.store.Komposisi.Create(ctx, &entity.Komposisi{ID: "k3", OwnerID: owner, ProdukID: "eskopi", BahanID: "gone", Qty: d(5)}))

	res, err := newUseCase(f.store, nil).Compute(ctx, owner, f.produk)
	require.NoError(t, err)
	assert.True(t, res.BahanPerPorsi.Equal(d(5500)))
	assert.NotEmpty(t, res.Warnings)
}

func TestCompute_Errors(t *testing.T) {
	f := seed(t)
	ctx := context.Background()
	uc := newUseCase(f.store, nil)

	_, err := uc.Compute(ctx, owner, "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Compute(ctx, "someone-else", f.produk)
	assert.ErrorIs(t, err, domain.ErrNotFound, "products of other owners are invisible")

	_, err = uc.Compute(ctx, owner, "")
	assert.ErrorIs(t, err, domain.ErrValidation)

	require.NoError(t, f.store.Produk.Create(ctx, &entity.Produk{ID: "broken", OwnerID: owner, Nama: "Broken", YieldPorsi: decimal.Zero}))
	_, err = uc.Compute(ctx, owner, "broken")
	assert.ErrorIs(t, err, domain.ErrInvalidYield)
}

func TestProductHPP_RoundsAndNotes(t *testing.T) {
	f := seed(t)
	ctx := context.Background()
	require.NoError(t, f.store.Produk.Create(ctx, &entity.Produk{ID: "air", OwnerID: owner, Nama: "Air Putih", YieldPorsi: d(3)}))
	uc := newUseCase(f.store, nil)

	out, err := uc.ProductHPP(ctx, owner, "air")
	require.NoError(t, err)
	assert.True(t, out.OK)
	assert.Equal(t, "produk has no komposisi yet", out.Note)
	assert.True(t, out.HPP.BahanPerPorsi.IsZero())
	assert.True(t, out.TotalHPP.Equal(d(3000)))

	out, err = uc.ProductHPP(ctx, owner, f.produk)
	require.NoError(t, err)
	assert.Empty(t, out.Note)
	assert.True(t, out.TotalHPP.Equal(d(8500)))
}

func TestProductHPP_NoPortionBasisWarns(t *testing.T) {
	f := seed(t)
	ctx := context.Background()
	require.NoError(t, f.store.Settings.Upsert(ctx, &entity.OwnerSettings{OwnerID: owner}))

	out, err := newUseCase(f.store, nil).ProductHPP(ctx, owner, f.produk)
	require.NoError(t, err)
	assert.True(t, out.HPP.OverheadPerPorsi.IsZero())
	assert.True(t, out.TotalHPP.Equal(d(5500)))
	assert.NotEmpty(t, out.Warnings)
}

func TestCostSheetPDF(t *testing.T) {
	f := seed(t)
	ctx := context.Background()

	_, _, err := newUseCase(f.store, nil).CostSheetPDF(ctx, owner, f.produk)
	assert.ErrorIs(t, err, domain.ErrConflict)

	pdf := &fakePDF{}
	body, name, err := newUseCase(f.store, pdf).CostSheetPDF(ctx, owner, f.produk)
	require.NoError(t, err)
	assert.Equal(t, "hpp-eskopi.pdf", name)
	assert.NotEmpty(t, body)
	assert.Equal(t, "Es Kopi Susu", pdf.sheet.ProdukNama)
	require.Len(t, pdf.sheet.Lines, 2)
	assert.True(t, pdf.sheet.Lines[0].Subtotal.Equal(d(8000)))
	require.Len(t, pdf.sheet.Tiers, 3)
	assert.True(t, pdf.sheet.Tiers[1].Price.Equal(d(12143)), pdf.sheet.Tiers[1].Price.String())

	_, _, err = newUseCase(f.store, &fakePDF{err: errors.New("font missing")}).CostSheetPDF(ctx, owner, f.produk)
	assert.Error(t, err)
}
