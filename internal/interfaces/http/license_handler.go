package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sigitdim/fortisapp-sub002/internal/application/usecase"
)

type LicenseHandler struct {
	svc *usecase.LicenseService
}

func NewLicenseHandler(svc *usecase.LicenseService) *LicenseHandler {
	return &LicenseHandler{svc: svc}
}

// Verify godoc
// @Summary      License state of the owner
// @Tags         license
// @Security     Bearer
// @Produce      json
// @Param        x-owner-id  header  string  true  "Owner ID"
// @Success      200  {object}  dto.LicenseResponse
// @Router       /license/verify [get]
func (h *LicenseHandler) Verify(c *fiber.Ctx) error {
	out, err := h.svc.Verify(c.UserContext(), GetOwnerID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
