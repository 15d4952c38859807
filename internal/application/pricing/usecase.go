// Package pricing serves margin analysis, AI-assisted price suggestions and the audited
// price apply operation.
package pricing

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/sigitdim/fortisapp-sub002/internal/application/costing"
	"github.com/sigitdim/fortisapp-sub002/internal/application/dto"
	"github.com/sigitdim/fortisapp-sub002/internal/application/ports"
	"github.com/sigitdim/fortisapp-sub002/internal/domain"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/entity"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/pricing"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/repository"
)

const defaultLogLimit = 50

type Config struct {
	TargetDailyProfit decimal.Decimal
	CacheTTL          time.Duration
	AITimeout         time.Duration
}

type UseCase struct {
	hpp        HPPSource
	produkRepo repository.ProdukRepository
	logRepo    repository.PricingLogRepository
	txRunner   TxRunner
	advisor    ports.PriceAdvisor
	cache      ports.SuggestionCache
	cfg        Config
	now        func() time.Time
}

// NewUseCase builds the pricing use case. advisor may be nil, in which case every
// suggestion is the rule-based price.
func NewUseCase(
	hpp HPPSource,
	produkRepo repository.ProdukRepository,
	logRepo repository.PricingLogRepository,
	txRunner TxRunner,
	advisor ports.PriceAdvisor,
	cache ports.SuggestionCache,
	cfg Config,
) *UseCase {
	if cfg.AITimeout <= 0 {
		cfg.AITimeout = 10 * time.Second
	}
	return &UseCase{
		hpp:        hpp,
		produkRepo: produkRepo,
		logRepo:    logRepo,
		txRunner:   txRunner,
		advisor:    advisor,
		cache:      cache,
		cfg:        cfg,
		now:        time.Now,
	}
}

// Margin analyses harga against the product's HPP. A nil harga falls back to the product's
// harga_jual; a nil target uses the configured daily profit target.
func (uc *UseCase) Margin(ctx context.Context, ownerID, produkID string, harga, targetProfit *decimal.Decimal) (*dto.MarginResponse, error) {
	res, err := uc.hpp.Compute(ctx, ownerID, produkID)
	if err != nil {
		return nil, err
	}
	price := harga
	if price == nil {
		price = res.Produk.HargaJual
	}
	if price == nil {
		return nil, domain.Invalid("harga is required when produk has no harga_jual")
	}
	target := uc.cfg.TargetDailyProfit
	if targetProfit != nil {
		target = *targetProfit
	}
	a, err := pricing.Analyze(res.TotalHPP, *price, target)
	if err != nil {
		return nil, err
	}
	return &dto.MarginResponse{
		ProdukID:           produkID,
		HPP:                dto.Money(a.HPP),
		Harga:              a.Price,
		MarginAmount:       dto.Money(a.MarginAmount),
		MarginPct:          a.MarginPct.Shift(2).Round(2),
		TargetProfitHarian: target,
		BreakevenUnits:     a.BreakevenUnits,
		Tiers:              costing.TierPrices(a.Tiers),
	}, nil
}

// InputsHash identifies a suggestion by everything it was computed from.
func InputsHash(ownerID, produkID string, margin, totalHPP decimal.Decimal) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s|%s", ownerID, produkID, margin.String(), totalHPP.String())))
	return hex.EncodeToString(sum[:])
}

// Suggest returns tier prices, the rule price for the requested margin and a recommended
// price. The AI advisor is optional; its failures degrade to the rule price. Cache failures
// are logged and ignored.
func (uc *UseCase) Suggest(ctx context.Context, ownerID string, req dto.SuggestRequest) (*dto.SuggestResponse, error) {
	hundred := decimal.NewFromInt(100)
	if req.TargetMarginPct.IsNegative() || req.TargetMarginPct.GreaterThanOrEqual(hundred) {
		return nil, fmt.Errorf("%w: target_margin_pct must be in [0, 100)", domain.ErrInvalidInput)
	}
	margin := req.TargetMarginPct.Shift(-2)

	res, err := uc.hpp.Compute(ctx, ownerID, req.ProdukID)
	if err != nil {
		return nil, err
	}
	hash := InputsHash(ownerID, req.ProdukID, margin, res.TotalHPP)
	key := "suggest:" + hash

	if cached, ok, err := uc.cache.Get(ctx, key); err != nil {
		log.Warn().Err(err).Str("owner_id", ownerID).Msg("suggestion cache read failed")
	} else if ok {
		cached.Cached = true
		return cached, nil
	}

	tiers, err := pricing.Tiers(res.TotalHPP)
	if err != nil {
		return nil, err
	}
	target, err := pricing.PriceForMargin(res.TotalHPP, margin)
	if err != nil {
		return nil, err
	}
	out := &dto.SuggestResponse{
		ProdukID:         req.ProdukID,
		TotalHPP:         dto.Money(res.TotalHPP),
		TargetMarginPct:  req.TargetMarginPct,
		TargetPrice:      target,
		Tiers:            costing.TierPrices(tiers),
		RecommendedPrice: target,
		Source:           dto.SourceRule,
		InputsHash:       hash,
	}
	uc.advise(ctx, res, out)

	if err := uc.cache.Set(ctx, key, out, uc.cfg.CacheTTL); err != nil {
		log.Warn().Err(err).Str("owner_id", ownerID).Msg("suggestion cache write failed")
	}
	return out, nil
}

func (uc *UseCase) advise(ctx context.Context, res *costing.Result, out *dto.SuggestResponse) {
	if uc.advisor == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, uc.cfg.AITimeout)
	defer cancel()

	advice, err := uc.advisor.SuggestPrice(ctx, dto.AIPriceRequest{
		ProdukNama:          res.Produk.Nama,
		Kategori:            res.Produk.Kategori,
		BahanPerPorsi:       dto.Money(res.BahanPerPorsi),
		OverheadPerPorsi:    dto.Money(res.OverheadPerPorsi),
		TenagaKerjaPerPorsi: dto.Money(res.TenagaKerjaPerPorsi),
		TotalHPP:            out.TotalHPP,
		TargetMarginPct:     out.TargetMarginPct,
		RulePrice:           out.TargetPrice,
		Tiers:               out.Tiers,
	})
	if err != nil {
		log.Warn().Err(err).Str("produk_id", out.ProdukID).Msg("ai price advisor unavailable, using rule price")
		return
	}
	if advice == nil || !advice.RecommendedPrice.IsPositive() {
		log.Warn().Str("produk_id", out.ProdukID).Msg("ai price advisor returned no usable price")
		return
	}
	out.RecommendedPrice = advice.RecommendedPrice.Ceil()
	out.Reasoning = advice.Reasoning
	out.Source = dto.SourceAI
}

// Apply sets the product's sell price and appends the audit row in one transaction.
func (uc *UseCase) Apply(ctx context.Context, ownerID string, req dto.ApplyRequest) (*dto.ApplyResponse, error) {
	if req.ProdukID == "" {
		return nil, domain.Invalid("produk_id is required")
	}
	if req.RecommendedPrice.IsNegative() {
		return nil, fmt.Errorf("%w: recommended_price must not be negative", domain.ErrInvalidInput)
	}
	source, err := applySource(req.Source, req.InputsHash)
	if err != nil {
		return nil, err
	}

	var out *dto.ApplyResponse
	err = uc.txRunner.RunPricing(ctx, ownerID, func(
		produkRepo repository.ProdukRepository,
		logRepo repository.PricingLogRepository,
	) error {
		p, err := produkRepo.GetByID(ctx, ownerID, req.ProdukID)
		if err != nil {
			return fmt.Errorf("load produk: %w", err)
		}
		if p == nil {
			return domain.Missing("produk", req.ProdukID)
		}
		now := uc.now()
		old := p.HargaJual
		price := req.RecommendedPrice
		p.HargaJual = &price
		p.UpdatedAt = now
		if err := produkRepo.Update(ctx, p); err != nil {
			return fmt.Errorf("update harga_jual: %w", err)
		}
		entry := &entity.PricingLog{
			ID:         uuid.New().String(),
			OwnerID:    ownerID,
			ProdukID:   p.ID,
			OldPrice:   old,
			NewPrice:   price,
			Source:     source,
			InputsHash: req.InputsHash,
			CreatedAt:  now,
		}
		if err := logRepo.Append(ctx, entry); err != nil {
			return fmt.Errorf("append pricing log: %w", err)
		}
		out = &dto.ApplyResponse{ProdukID: p.ID, OldPrice: old, NewPrice: price, LogID: entry.ID}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// applySource maps the requested source to the log value. Suggested prices must carry the
// digest returned by Suggest; manual prices may omit it.
func applySource(source, hash string) (string, error) {
	var logged string
	switch source {
	case "", dto.SourceAI:
		logged = entity.PriceSourceAISuggest
	case dto.SourceRule:
		logged = entity.PriceSourceRuleSuggest
	case dto.SourceManual:
		logged = entity.PriceSourceManual
	default:
		return "", domain.Invalid("unknown source %q", source)
	}
	if hash == "" {
		if logged == entity.PriceSourceManual {
			return logged, nil
		}
		return "", domain.Invalid("inputs_hash is required")
	}
	if raw, err := hex.DecodeString(hash); err != nil || len(raw) != sha256.Size {
		return "", domain.Invalid("inputs_hash is not a suggestion digest")
	}
	return logged, nil
}

// Logs lists the pricing audit trail of a product, newest first.
func (uc *UseCase) Logs(ctx context.Context, ownerID, produkID string, limit int) ([]dto.PricingLogResponse, error) {
	if produkID == "" {
		return nil, domain.Invalid("produk_id is required")
	}
	if limit <= 0 {
		limit = defaultLogLimit
	}
	rows, err := uc.logRepo.ListByProduk(ctx, ownerID, produkID, limit)
	if err != nil {
		return nil, fmt.Errorf("list pricing logs: %w", err)
	}
	out := make([]dto.PricingLogResponse, 0, len(rows))
	for _, l := range rows {
		out = append(out, dto.PricingLogResponse{
			ID: l.ID, ProdukID: l.ProdukID, OldPrice: l.OldPrice, NewPrice: l.NewPrice,
			Source: l.Source, InputsHash: l.InputsHash, CreatedAt: l.CreatedAt,
		})
	}
	return out, nil
}
