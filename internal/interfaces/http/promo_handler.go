package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sigitdim/fortisapp-sub002/internal/application/dto"
	apppromo "github.com/sigitdim/fortisapp-sub002/internal/application/promo"
)

type PromoHandler struct {
	uc *apppromo.UseCase
}

func NewPromoHandler(uc *apppromo.UseCase) *PromoHandler {
	return &PromoHandler{uc: uc}
}

// List godoc
// @Summary      List promotions
// @Tags         promo
// @Security     Bearer
// @Produce      json
// @Param        x-owner-id  header  string  true  "Owner ID"
// @Success      200  {object}  dto.DataResponse{data=[]dto.PromoResponse}
// @Router       /promo [get]
func (h *PromoHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), GetOwnerID(c))
	if err != nil {
		return writeError(c, err)
	}
	return respondOK(c, fiber.StatusOK, out)
}

// Create godoc
// @Summary      Create a promotion
// @Tags         promo
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        x-owner-id  header  string            true  "Owner ID"
// @Param        body        body    dto.PromoRequest  true  "Promotion"
// @Success      201  {object}  dto.DataResponse{data=dto.PromoResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /promo [post]
func (h *PromoHandler) Create(c *fiber.Ctx) error {
	var in dto.PromoRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Create(c.UserContext(), GetOwnerID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return respondOK(c, fiber.StatusCreated, out)
}

// SetActive godoc
// @Summary      Activate or deactivate a promotion
// @Tags         promo
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        x-owner-id  header  string                true  "Owner ID"
// @Param        id          path    string                true  "Promo ID"
// @Param        body        body    dto.SetActiveRequest  true  "New state"
// @Success      200  {object}  dto.DataResponse{data=dto.PromoResponse}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /promo/{id}/active [patch]
func (h *PromoHandler) SetActive(c *fiber.Ctx) error {
	var in dto.SetActiveRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.SetActive(c.UserContext(), GetOwnerID(c), c.Params("id"), in.Aktif)
	if err != nil {
		return writeError(c, err)
	}
	return respondOK(c, fiber.StatusOK, out)
}

// Evaluate godoc
// @Summary      Price of a product under a promotion
// @Tags         promo
// @Security     Bearer
// @Produce      json
// @Param        x-owner-id  header  string  true  "Owner ID"
// @Param        id          path    string  true  "Promo ID"
// @Param        produk_id   query   string  true  "Product ID"
// @Success      200  {object}  dto.DataResponse{data=dto.PromoEvaluation}
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /promo/{id}/evaluate [get]
func (h *PromoHandler) Evaluate(c *fiber.Ctx) error {
	produkID, err := requiredQuery(c, "produk_id")
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Evaluate(c.UserContext(), GetOwnerID(c), c.Params("id"), produkID)
	if err != nil {
		return writeError(c, err)
	}
	return respondOK(c, fiber.StatusOK, out)
}
