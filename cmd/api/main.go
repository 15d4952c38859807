package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appcosting "github.com/sigitdim/fortisapp-sub002/internal/application/costing"
	appinventory "github.com/sigitdim/fortisapp-sub002/internal/application/inventory"
	"github.com/sigitdim/fortisapp-sub002/internal/application/ports"
	apppricing "github.com/sigitdim/fortisapp-sub002/internal/application/pricing"
	apppromo "github.com/sigitdim/fortisapp-sub002/internal/application/promo"
	"github.com/sigitdim/fortisapp-sub002/internal/application/setup"
	"github.com/sigitdim/fortisapp-sub002/internal/application/usecase"
	"github.com/sigitdim/fortisapp-sub002/internal/domain/repository"
	infraai "github.com/sigitdim/fortisapp-sub002/internal/infrastructure/ai"
	infracache "github.com/sigitdim/fortisapp-sub002/internal/infrastructure/cache"
	"github.com/sigitdim/fortisapp-sub002/internal/infrastructure/gateway"
	"github.com/sigitdim/fortisapp-sub002/internal/infrastructure/memory"
	infrapdf "github.com/sigitdim/fortisapp-sub002/internal/infrastructure/pdf"
	"github.com/sigitdim/fortisapp-sub002/internal/infrastructure/postgres"
	httpRouter "github.com/sigitdim/fortisapp-sub002/internal/interfaces/http"
	"github.com/sigitdim/fortisapp-sub002/pkg/config"
	"github.com/sigitdim/fortisapp-sub002/pkg/jwt"
	"github.com/sigitdim/fortisapp-sub002/pkg/logger"
)

// stores is the repository set behind the use cases, backed by PostgreSQL or memory.
type stores struct {
	bahan          repository.BahanRepository
	produk         repository.ProdukRepository
	komposisi      repository.KomposisiRepository
	overhead       repository.OverheadRepository
	tenagaKerja    repository.TenagaKerjaRepository
	promo          repository.PromoRepository
	inventoryLogs  repository.InventoryLogRepository
	pricingLogs    repository.PricingLogRepository
	allocation     repository.AllocationSource
	settings       repository.SettingsRepository
	licenses       repository.LicenseRepository
	inventoryTx    appinventory.TxRunner
	pricingTx      apppricing.TxRunner
	bahanTx        setup.TxRunner
	close          func()
}

func postgresStores(ctx context.Context, cfg *config.Config) (*stores, error) {
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	tx := postgres.NewTxRunner(pool)
	return &stores{
		bahan:          postgres.NewBahanRepository(pool),
		produk:         postgres.NewProdukRepository(pool),
		komposisi:      postgres.NewKomposisiRepository(pool),
		overhead:       postgres.NewOverheadRepository(pool),
		tenagaKerja:    postgres.NewTenagaKerjaRepository(pool),
		promo:          postgres.NewPromoRepository(pool),
		inventoryLogs:  postgres.NewInventoryLogRepository(pool),
		pricingLogs:    postgres.NewPricingLogRepository(pool),
		allocation:     postgres.NewAllocationRepository(pool, cfg.Costing.DefaultPorsiBulanan),
		settings:       postgres.NewSettingsRepository(pool),
		licenses:       postgres.NewLicenseRepository(pool),
		inventoryTx:    tx,
		pricingTx:      tx,
		bahanTx:        tx,
		close:          pool.Close,
	}, nil
}

func memoryStores(cfg *config.Config) *stores {
	s := memory.NewStore(cfg.Costing.DefaultPorsiBulanan)
	return &stores{
		bahan:          s.Bahan,
		produk:         s.Produk,
		komposisi:      s.Komposisi,
		overhead:       s.Overhead,
		tenagaKerja:    s.TenagaKerja,
		promo:          s.Promo,
		inventoryLogs:  s.InventoryLogs,
		pricingLogs:    s.PricingLogs,
		allocation:     s,
		settings:       s.Settings,
		licenses:       s.Licenses,
		inventoryTx:    s,
		pricingTx:      s,
		bahanTx:        s,
		close:          func() {},
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load config: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("starting")

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx := context.Background()
	var st *stores
	if cfg.Store.Driver == config.DriverMemory {
		log.Warn().Msg("using the in-memory store, data is lost on restart")
		st = memoryStores(cfg)
	} else {
		st, err = postgresStores(ctx, cfg)
		if err != nil {
			log.Fatal().Err(err).Msg("connect to PostgreSQL")
		}
	}
	defer st.close()

	var suggestCache ports.SuggestionCache = infracache.NoopSuggestionCache{}
	if cfg.Redis.Addr != "" {
		rc := infracache.NewRedisSuggestionCache(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.App.Name)
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		if err := rc.Ping(pingCtx); err != nil {
			log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis unreachable, suggestions will not be cached")
		}
		cancel()
		defer rc.Close()
		suggestCache = rc
	}

	var advisor ports.PriceAdvisor
	if cfg.AI.Enabled() {
		advisor = infraai.NewAnthropicService(cfg.AI.AnthropicAPIKey, cfg.AI.Model)
	} else {
		log.Info().Msg("ANTHROPIC_API_KEY not set, price suggestions are rule-based")
	}

	settingsUC := usecase.NewSettingsUseCase(st.settings, usecase.SettingsDefaults{
		PorsiBulanan:      cfg.Costing.DefaultPorsiBulanan,
		LowStockThreshold: cfg.Costing.LowStockThreshold,
	})
	licenseSvc := usecase.NewLicenseService(st.licenses)
	costingUC := appcosting.NewUseCase(st.produk, st.bahan, st.komposisi, st.allocation, infrapdf.NewCostSheetGenerator(cfg.App.Name))
	pricingUC := apppricing.NewUseCase(costingUC, st.produk, st.pricingLogs, st.pricingTx, advisor, suggestCache, apppricing.Config{
		TargetDailyProfit: cfg.Costing.TargetDailyProfit,
		CacheTTL:          cfg.Redis.SuggestTTL,
		AITimeout:         cfg.AI.Timeout,
	})
	inventoryUC := appinventory.NewUseCase(st.inventoryTx, st.bahan, st.inventoryLogs, settingsUC)
	promoUC := apppromo.NewUseCase(st.promo, st.produk, costingUC)
	catalog := setup.NewCatalog(setup.CatalogRepos{
		Bahan:          st.bahan,
		Produk:         st.produk,
		Komposisi:      st.komposisi,
		Overhead:       st.overhead,
		TenagaKerja:    st.tenagaKerja,
		InventoryLogs:  st.inventoryLogs,
		Tx:             st.bahanTx,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ErrorHandler: httpRouter.ErrorHandler,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger())

	// Swagger UI: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.App.SwaggerFile,
			Path:     "docs",
			Title:    "FortisApp API",
		}))
	}

	deps := httpRouter.RouterDeps{
		Costing:         costingUC,
		Pricing:         pricingUC,
		Inventory:       inventoryUC,
		Promo:           promoUC,
		Catalog:         catalog,
		Settings:        settingsUC,
		License:         licenseSvc,
		JWTSecret:       cfg.JWT.Secret,
		JWTVerify:       jwt.VerifyOptions{Issuer: cfg.JWT.Issuer, Audience: cfg.JWT.Audience},
		LicenseRequired: cfg.License.Required,
	}
	if cfg.Upstream.BaseURL != "" {
		deps.Upstream = gateway.New(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	}
	httpRouter.Router(app, deps)

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("stopped")
}
