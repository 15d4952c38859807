package http

import (
	"github.com/gofiber/fiber/v2"

	appcosting "github.com/sigitdim/fortisapp-sub002/internal/application/costing"
	"github.com/sigitdim/fortisapp-sub002/internal/application/dto"
	appinventory "github.com/sigitdim/fortisapp-sub002/internal/application/inventory"
	apppricing "github.com/sigitdim/fortisapp-sub002/internal/application/pricing"
	apppromo "github.com/sigitdim/fortisapp-sub002/internal/application/promo"
	"github.com/sigitdim/fortisapp-sub002/internal/application/setup"
	"github.com/sigitdim/fortisapp-sub002/internal/application/usecase"
	"github.com/sigitdim/fortisapp-sub002/pkg/jwt"
)

// RouterDeps dependencies of the router.
type RouterDeps struct {
	Costing   *appcosting.UseCase
	Pricing   *apppricing.UseCase
	Inventory *appinventory.UseCase
	Promo     *apppromo.UseCase
	Catalog   *setup.Catalog
	Settings  *usecase.SettingsUseCase
	License   *usecase.LicenseService
	Upstream  upstreamHealth // nil when UPSTREAM_BASE_URL is empty

	JWTSecret       string
	JWTVerify       jwt.VerifyOptions
	LicenseRequired bool
}

// Router registers the API routes. /health is public; every other group requires the
// tenant header and a token of that tenant.
func Router(app *fiber.App, deps RouterDeps) {
	health := NewHealthHandler(deps.Upstream)
	app.Get("/health", health.Health)

	guard := []fiber.Handler{TenantMiddleware(), AuthMiddleware(deps.JWTSecret, deps.JWTVerify)}
	licensed := func(h fiber.Handler) []fiber.Handler {
		if !deps.LicenseRequired {
			return []fiber.Handler{h}
		}
		return []fiber.Handler{RequireLicense(deps.License), h}
	}

	// Dashboard
	dashboard := app.Group("/dashboard", guard...)
	dashboard.Get("/health", health.Dashboard)

	// Pricing: HPP, margin, suggestions
	pricingGroup := app.Group("/pricing", guard...)
	costingHandler := NewCostingHandler(deps.Costing)
	pricingHandler := NewPricingHandler(deps.Pricing)
	pricingGroup.Get("/final", costingHandler.Final)
	pricingGroup.Get("/report.pdf", licensed(costingHandler.Report)...)
	pricingGroup.Get("/margin", pricingHandler.Margin)
	pricingGroup.Post("/suggest", licensed(pricingHandler.Suggest)...)
	pricingGroup.Post("/apply", licensed(pricingHandler.Apply)...)
	pricingGroup.Get("/logs", pricingHandler.Logs)

	// Inventory ledger
	inv := app.Group("/inventory", guard...)
	inventoryHandler := NewInventoryHandler(deps.Inventory)
	inv.Get("/summary", inventoryHandler.Summary)
	inv.Get("/history", inventoryHandler.History)
	for _, tipe := range movementTypes {
		inv.Post("/"+tipe, inventoryHandler.Movement(tipe))
	}

	// Promotions
	promoGroup := app.Group("/promo", guard...)
	promoHandler := NewPromoHandler(deps.Promo)
	promoGroup.Get("/", promoHandler.List)
	promoGroup.Post("/", promoHandler.Create)
	promoGroup.Patch("/:id/active", promoHandler.SetActive)
	promoGroup.Get("/:id/evaluate", promoHandler.Evaluate)

	// Setup CRUD
	setupGroup := app.Group("/setup", guard...)
	cat := deps.Catalog
	NewCRUDHandler[dto.BahanRequest](cat.Bahan, dto.NewBahanResponse).Register(setupGroup.Group("/bahan"))
	NewCRUDHandler[dto.ProdukRequest](cat.Produk, dto.NewProdukResponse).Register(setupGroup.Group("/produk"))
	NewCRUDHandler[dto.KomposisiRequest](cat.Komposisi, dto.NewKomposisiResponse).Register(setupGroup.Group("/komposisi"))
	NewCRUDHandler[dto.OverheadRequest](cat.Overhead, dto.NewOverheadResponse).Register(setupGroup.Group("/overhead"))
	NewCRUDHandler[dto.TenagaKerjaRequest](cat.TenagaKerja, dto.NewTenagaKerjaResponse).Register(setupGroup.Group("/tenaga-kerja"))

	// Settings and license
	settingsGroup := app.Group("/settings", guard...)
	settingsHandler := NewSettingsHandler(deps.Settings)
	settingsGroup.Get("/", settingsHandler.Get)
	settingsGroup.Put("/", settingsHandler.Update)

	licenseGroup := app.Group("/license", guard...)
	licenseGroup.Get("/verify", NewLicenseHandler(deps.License).Verify)
}
