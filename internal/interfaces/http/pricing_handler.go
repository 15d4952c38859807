package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sigitdim/fortisapp-sub002/internal/application/dto"
	apppricing "github.com/sigitdim/fortisapp-sub002/internal/application/pricing"
)

type PricingHandler struct {
	uc *apppricing.UseCase
}

func NewPricingHandler(uc *apppricing.UseCase) *PricingHandler {
	return &PricingHandler{uc: uc}
}

// Margin godoc
// @Summary      Margin and breakeven at a sell price
// @Tags         pricing
// @Security     Bearer
// @Produce      json
// @Param        x-owner-id            header  string  true   "Owner ID"
// @Param        produk_id             query   string  true   "Product ID"
// @Param        harga                 query   number  false  "Sell price, defaults to harga_jual"
// @Param        target_profit_harian  query   number  false  "Daily profit target"
// @Success      200  {object}  dto.DataResponse{data=dto.MarginResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /pricing/margin [get]
func (h *PricingHandler) Margin(c *fiber.Ctx) error {
	produkID, err := requiredQuery(c, "produk_id")
	if err != nil {
		return writeError(c, err)
	}
	harga, err := optionalDecimal(c, "harga")
	if err != nil {
		return writeError(c, err)
	}
	target, err := optionalDecimal(c, "target_profit_harian")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Margin(c.UserContext(), GetOwnerID(c), produkID, harga, target)
	if err != nil {
		return writeError(c, err)
	}
	return respondOK(c, fiber.StatusOK, out)
}

// Suggest godoc
// @Summary      Suggested sell price (tiers, target margin, AI advice)
// @Tags         pricing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        x-owner-id  header  string              true  "Owner ID"
// @Param        body        body    dto.SuggestRequest  true  "Product and target margin in percent"
// @Success      200  {object}  dto.DataResponse{data=dto.SuggestResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /pricing/suggest [post]
func (h *PricingHandler) Suggest(c *fiber.Ctx) error {
	var in dto.SuggestRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Suggest(c.UserContext(), GetOwnerID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return respondOK(c, fiber.StatusOK, out)
}

// Apply godoc
// @Summary      Apply a suggested price to the product
// @Tags         pricing
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        x-owner-id  header  string            true  "Owner ID"
// @Param        body        body    dto.ApplyRequest  true  "Price to apply"
// @Success      200  {object}  dto.DataResponse{data=dto.ApplyResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /pricing/apply [post]
func (h *PricingHandler) Apply(c *fiber.Ctx) error {
	var in dto.ApplyRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Apply(c.UserContext(), GetOwnerID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return respondOK(c, fiber.StatusOK, out)
}

// Logs godoc
// @Summary      Pricing audit trail of a product
// @Tags         pricing
// @Security     Bearer
// @Produce      json
// @Param        x-owner-id  header  string  true   "Owner ID"
// @Param        produk_id   query   string  true   "Product ID"
// @Param        limit       query   int     false  "Max rows"  default(50)
// @Success      200  {object}  dto.DataResponse{data=[]dto.PricingLogResponse}
// @Router       /pricing/logs [get]
func (h *PricingHandler) Logs(c *fiber.Ctx) error {
	out, err := h.uc.Logs(c.UserContext(), GetOwnerID(c), c.Query("produk_id"), c.QueryInt("limit", 0))
	if err != nil {
		return writeError(c, err)
	}
	return respondOK(c, fiber.StatusOK, out)
}
