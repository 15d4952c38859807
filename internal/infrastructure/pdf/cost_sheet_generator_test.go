package pdf_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigitdim/fortisapp-sub002/internal/application/dto"
	"github.com/sigitdim/fortisapp-sub002/internal/infrastructure/pdf"
)

func TestGenerateCostSheet(t *testing.T) {
	harga := decimal.NewFromInt(15000)
	sheet := dto.CostSheet{
		ProdukNama: "Es Kopi Susu",
		Kategori:   "Minuman",
		YieldPorsi: decimal.NewFromInt(3),
		Lines: []dto.CostSheetLine{
			{BahanNama: "Gula aren", Satuan: "gr", Qty: decimal.NewFromInt(2), UnitPrice: decimal.NewFromInt(1500), Subtotal: decimal.NewFromInt(3000)},
			{BahanNama: "Kopi", Satuan: "gr", Qty: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(3000), Subtotal: decimal.NewFromInt(3000)},
		},
		HPP:          dto.HPPBreakdown{BahanPerPorsi: decimal.NewFromInt(2000), TotalHPP: decimal.NewFromInt(2000)},
		PorsiBulanan: decimal.NewFromInt(1500),
		HargaJual:    &harga,
		Tiers:        []dto.TierPrice{{MarginPct: decimal.NewFromInt(30), Price: decimal.NewFromInt(2858)}},
		Warnings:     []string{"porsi_bulanan is not set"},
		GeneratedAt:  time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC),
	}

	out, err := pdf.NewCostSheetGenerator("FortisApp").GenerateCostSheet(sheet)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "output is a PDF document")
}
