// Package costing is the HPP use case: it loads a product's BOM and allocations
// and runs the pure cost engine over them.
package costing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sigitdim/fortisapp-sub002/internal/application/dto"
	"github.com/sigitdim/fortisapp-sub002/internal/application/ports"
	"github.com/sigitdim/fortisapp-sub002/internal/domain"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/costing"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/pricing"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/repository"
)

// Result is the HPP of one product with everything it was computed from.
type Result struct {
	Produk     *entity.Produk
	Lines      []costing.Line
	Allocation *repository.Allocation
	costing.Breakdown
}

type UseCase struct {
	produkRepo    repository.ProdukRepository
	bahanRepo     repository.BahanRepository
	komposisiRepo repository.KomposisiRepository
	allocation    repository.AllocationSource
	pdf           ports.CostSheetGenerator
	now           func() time.Time
}

// NewUseCase builds the HPP use case. pdf may be nil when reports are disabled.
func NewUseCase(
	produkRepo repository.ProdukRepository,
	bahanRepo repository.BahanRepository,
	komposisiRepo repository.KomposisiRepository,
	allocation repository.AllocationSource,
	pdf ports.CostSheetGenerator,
) *UseCase {
	return &UseCase{
		produkRepo:    produkRepo,
		bahanRepo:     bahanRepo,
		komposisiRepo: komposisiRepo,
		allocation:    allocation,
		pdf:           pdf,
		now:           time.Now,
	}
}

// Compute returns the full-precision HPP of produkID.
func (uc *UseCase) Compute(ctx context.Context, ownerID, produkID string) (*Result, error) {
	if produkID == "" {
		return nil, domain.Invalid("produk_id is required")
	}
	produk, err := uc.produkRepo.GetByID(ctx, ownerID, produkID)
	if err != nil {
		return nil, fmt.Errorf("load produk: %w", err)
	}
	if produk == nil {
		return nil, domain.Missing("produk", produkID)
	}

	bom, err := uc.komposisiRepo.ListByProduk(ctx, ownerID, produkID)
	if err != nil {
		return nil, fmt.Errorf("load komposisi: %w", err)
	}
	catalog, err := uc.bahanRepo.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load bahan: %w", err)
	}
	byID := make(map[string]*entity.Bahan, len(catalog))
	for _, b := range catalog {
		byID[b.ID] = b
	}

	lines := make([]costing.Line, 0, len(bom))
	for _, k := range bom {
		line := costing.Line{BahanID: k.BahanID, Satuan: k.Satuan, Qty: k.Qty}
		if b, ok := byID[k.BahanID]; ok {
			price := b.HargaSatuan
			line.BahanNama, line.UnitPrice = b.Nama, &price
			if line.Satuan == "" {
				line.Satuan = b.Satuan
			}
		}
		lines = append(lines, line)
	}

	alloc, err := uc.allocation.PerPortion(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("load allocation: %w", err)
	}
	breakdown, err := costing.Aggregate(lines, produk.YieldPorsi, alloc.OverheadPerPorsi, alloc.TenagaKerjaPerPorsi)
	if err != nil {
		return nil, err
	}
	if !alloc.PorsiBulanan.IsPositive() {
		breakdown.Warnings = append(breakdown.Warnings, "porsi_bulanan is not set, overhead and labor counted as 0")
	}
	return &Result{Produk: produk, Lines: lines, Allocation: alloc, Breakdown: breakdown}, nil
}

// ProductHPP is Compute shaped for GET /pricing/final.
func (uc *UseCase) ProductHPP(ctx context.Context, ownerID, produkID string) (*dto.FinalPriceResponse, error) {
	res, err := uc.Compute(ctx, ownerID, produkID)
	if err != nil {
		return nil, err
	}
	out := &dto.FinalPriceResponse{
		OK:       true,
		OwnerID:  ownerID,
		ProdukID: produkID,
		HPP:      Rounded(res.Breakdown),
		TotalHPP: dto.Money(res.TotalHPP),
		Warnings: res.Warnings,
	}
	if len(res.Lines) == 0 {
		out.Note = "produk has no komposisi yet"
	}
	return out, nil
}

// CostSheetPDF renders the cost sheet of produkID and returns the file name to serve it under.
func (uc *UseCase) CostSheetPDF(ctx context.Context, ownerID, produkID string) ([]byte, string, error) {
	if uc.pdf == nil {
		return nil, "", fmt.Errorf("%w: pdf reports are not configured", domain.ErrConflict)
	}
	res, err := uc.Compute(ctx, ownerID, produkID)
	if err != nil {
		return nil, "", err
	}
	tiers, err := pricing.Tiers(res.TotalHPP)
	if err != nil {
		return nil, "", err
	}
	sheet := dto.CostSheet{
		ProdukNama:      res.Produk.Nama,
		Kategori:        res.Produk.Kategori,
		YieldPorsi:      res.Produk.YieldPorsi,
		HPP:             Rounded(res.Breakdown),
		OverheadBulanan: res.Allocation.OverheadBulanan,
		GajiBulanan:     res.Allocation.TenagaKerjaBulanan,
		PorsiBulanan:    res.Allocation.PorsiBulanan,
		HargaJual:       res.Produk.HargaJual,
		Tiers:           TierPrices(tiers),
		Warnings:        res.Warnings,
		GeneratedAt:     uc.now(),
	}
	for _, l := range res.Lines {
		name := l.BahanNama
		if name == "" {
			name = l.BahanID + " (missing)"
		}
		unit := decimal.Zero
		if l.UnitPrice != nil {
			unit = *l.UnitPrice
		}
		sheet.Lines = append(sheet.Lines, dto.CostSheetLine{
			BahanNama: name, Satuan: l.Satuan, Qty: l.Qty, UnitPrice: unit, Subtotal: l.Subtotal(),
		})
	}
	pdf, err := uc.pdf.GenerateCostSheet(sheet)
	if err != nil {
		return nil, "", fmt.Errorf("render cost sheet: %w", err)
	}
	return pdf, fmt.Sprintf("hpp-%s.pdf", produkID), nil
}

// Rounded maps a breakdown to whole currency units.
func Rounded(b costing.Breakdown) dto.HPPBreakdown {
	return dto.HPPBreakdown{
		BahanPerPorsi:       dto.Money(b.BahanPerPorsi),
		OverheadPerPorsi:    dto.Money(b.OverheadPerPorsi),
		TenagaKerjaPerPorsi: dto.Money(b.TenagaKerjaPerPorsi),
		TotalHPP:            dto.Money(b.TotalHPP),
	}
}

// TierPrices maps tiers to their DTO, margins as percentages.
func TierPrices(tiers []pricing.Tier) []dto.TierPrice {
	out := make([]dto.TierPrice, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, dto.TierPrice{MarginPct: t.Margin.Shift(2), Price: t.Price})
	}
	return out
}
