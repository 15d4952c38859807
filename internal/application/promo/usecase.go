// Package promo manages promotions and evaluates them against a product's price.
package promo

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sigitdim/fortisapp-sub002/internal/application/costing"
	"github.com/sigitdim/fortisapp-sub002/internal/application/dto"
	"github.com/sigitdim/fortisapp-sub002/internal/application/setup"
	"github.com/sigitdim/fortisapp-sub002/internal/domain"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/pricing"
	promocalc "github.com/sigitdim/fortisapp-sub002/internal/domain/promo"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/repository"
)

// HPPSource computes a product's HPP for products without a sell price.
type HPPSource interface {
	Compute(ctx context.Context, ownerID, produkID string) (*costing.Result, error)
}

type UseCase struct {
	promos     *setup.Service[entity.Promo, *entity.Promo]
	produkRepo repository.ProdukRepository
	hpp        HPPSource
}

func NewUseCase(promoRepo repository.PromoRepository, produkRepo repository.ProdukRepository, hpp HPPSource) *UseCase {
	uc := &UseCase{produkRepo: produkRepo, hpp: hpp}
	uc.promos = setup.NewService[entity.Promo, *entity.Promo]("promo", promoRepo, setup.Hooks[entity.Promo]{
		BeforeSave: uc.checkProducts,
	})
	return uc
}

// checkProducts rejects promos naming a product the tenant does not own.
func (uc *UseCase) checkProducts(ctx context.Context, ownerID string, p *entity.Promo) error {
	for _, id := range p.ProdukIDs {
		produk, err := uc.produkRepo.GetByID(ctx, ownerID, id)
		if err != nil {
			return fmt.Errorf("check produk: %w", err)
		}
		if produk == nil {
			return domain.Invalid("produk %s does not exist", id)
		}
	}
	return nil
}

func (uc *UseCase) List(ctx context.Context, ownerID string) ([]dto.PromoResponse, error) {
	rows, err := uc.promos.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PromoResponse, 0, len(rows))
	for _, p := range rows {
		out = append(out, dto.NewPromoResponse(p))
	}
	return out, nil
}

func (uc *UseCase) Create(ctx context.Context, ownerID string, req dto.PromoRequest) (*dto.PromoResponse, error) {
	p, err := uc.promos.Create(ctx, ownerID, req.ToEntity())
	if err != nil {
		return nil, err
	}
	out := dto.NewPromoResponse(p)
	return &out, nil
}

func (uc *UseCase) SetActive(ctx context.Context, ownerID, id string, aktif bool) (*dto.PromoResponse, error) {
	p, err := uc.promos.Mutate(ctx, ownerID, id, func(p *entity.Promo) { p.Aktif = aktif })
	if err != nil {
		return nil, err
	}
	out := dto.NewPromoResponse(p)
	return &out, nil
}

// Evaluate applies an active promo to one of its products. The base price is the product's
// harga_jual, or its 30% tier price when none is set.
func (uc *UseCase) Evaluate(ctx context.Context, ownerID, promoID, produkID string) (*dto.PromoEvaluation, error) {
	p, err := uc.promos.Get(ctx, ownerID, promoID)
	if err != nil {
		return nil, err
	}
	if !p.Aktif {
		return nil, fmt.Errorf("%w: promo %s is not active", domain.ErrConflict, promoID)
	}
	if produkID == "" {
		return nil, domain.Invalid("produk_id is required")
	}
	if !p.Covers(produkID) {
		return nil, domain.Invalid("promo %s does not cover produk %s", promoID, produkID)
	}

	base, source, err := uc.basePrice(ctx, ownerID, produkID)
	if err != nil {
		return nil, err
	}
	res, err := promocalc.Evaluate(*p, base)
	if err != nil {
		return nil, err
	}
	return &dto.PromoEvaluation{
		PromoID:     p.ID,
		ProdukID:    produkID,
		Tipe:        p.Tipe,
		BasePrice:   dto.Money(res.BasePrice),
		PriceSource: source,
		FinalPrice:  dto.Money(res.FinalPrice),
		Discount:    dto.Money(res.Discount),
		Advisory:    res.Advisory,
		Label:       res.Label,
	}, nil
}

func (uc *UseCase) basePrice(ctx context.Context, ownerID, produkID string) (price decimal.Decimal, source string, err error) {
	produk, err := uc.produkRepo.GetByID(ctx, ownerID, produkID)
	if err != nil {
		return price, "", fmt.Errorf("load produk: %w", err)
	}
	if produk == nil {
		return price, "", domain.Missing("produk", produkID)
	}
	if produk.HargaJual != nil {
		return *produk.HargaJual, dto.PriceFromHargaJual, nil
	}
	res, err := uc.hpp.Compute(ctx, ownerID, produkID)
	if err != nil {
		return price, "", err
	}
	tier, err := pricing.PriceForMargin(res.TotalHPP, pricing.DefaultTier)
	if err != nil {
		return price, "", err
	}
	return tier, dto.PriceFromHPPTier, nil
}
