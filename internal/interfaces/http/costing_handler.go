package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	appcosting "github.com/sigitdim/fortisapp-sub002/internal/application/costing"
)

// CostingHandler serves the HPP endpoints.
type CostingHandler struct {
	uc *appcosting.UseCase
}

func NewCostingHandler(uc *appcosting.UseCase) *CostingHandler {
	return &CostingHandler{uc: uc}
}

// Final godoc
// @Summary      HPP per portion of a product
// @Tags         pricing
// @Security     Bearer
// @Produce      json
// @Param        x-owner-id  header  string  true  "Owner ID"
// @Param        produk_id   query   string  true  "Product ID"
// @Success      200  {object}  dto.FinalPriceResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /pricing/final [get]
func (h *CostingHandler) Final(c *fiber.Ctx) error {
	produkID, err := requiredQuery(c, "produk_id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ProductHPP(c.UserContext(), GetOwnerID(c), produkID)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Report godoc
// @Summary      HPP cost sheet as PDF
// @Tags         pricing
// @Security     Bearer
// @Produce      application/pdf
// @Param        x-owner-id  header  string  true  "Owner ID"
// @Param        produk_id   query   string  true  "Product ID"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /pricing/report.pdf [get]
func (h *CostingHandler) Report(c *fiber.Ctx) error {
	produkID, err := requiredQuery(c, "produk_id")
	if err != nil {
		return writeError(c, err)
	}
	pdf, name, err := h.uc.CostSheetPDF(c.UserContext(), GetOwnerID(c), produkID)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", name))
	return c.Send(pdf)
}
