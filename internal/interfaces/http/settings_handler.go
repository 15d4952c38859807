package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sigitdim/fortisapp-sub002/internal/application/dto"
	"github.com/sigitdim/fortisapp-sub002/internal/application/usecase"
)

type SettingsHandler struct {
	uc *usecase.SettingsUseCase
}

func NewSettingsHandler(uc *usecase.SettingsUseCase) *SettingsHandler {
	return &SettingsHandler{uc: uc}
}

// Get godoc
// @Summary      Owner settings with defaults applied
// @Tags         settings
// @Security     Bearer
// @Produce      json
// @Param        x-owner-id  header  string  true  "Owner ID"
// @Success      200  {object}  dto.DataResponse{data=dto.SettingsResponse}
// @Router       /settings [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.UserContext(), GetOwnerID(c))
	if err != nil {
		return writeError(c, err)
	}
	return respondOK(c, fiber.StatusOK, out)
}

// Update godoc
// @Summary      Replace owner settings
// @Tags         settings
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        x-owner-id  header  string               true  "Owner ID"
// @Param        body        body    dto.SettingsRequest  true  "Settings"
// @Success      200  {object}  dto.DataResponse{data=dto.SettingsResponse}
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /settings [put]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.SettingsRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.Update(c.UserContext(), GetOwnerID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return respondOK(c, fiber.StatusOK, out)
}
