package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sigitdim/fortisapp-sub002/internal/application/dto"
	"github.com/sigitdim/fortisapp-sub002/internal/domain"
)

// upstreamHealth is implemented by *gateway.Client.
type upstreamHealth interface {
	Health(ctx context.Context, ownerID string) (*dto.HealthResponse, error)
}

type HealthHandler struct {
	upstream upstreamHealth
	now      func() time.Time
}

// NewHealthHandler builds the handler. upstream may be nil when no upstream is configured.
func NewHealthHandler(upstream upstreamHealth) *HealthHandler {
	return &HealthHandler{upstream: upstream, now: time.Now}
}

// Health godoc
// @Summary      Liveness check
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(dto.HealthResponse{OK: true, Time: h.now().UTC()})
}

// Dashboard godoc
// @Summary      Upstream dashboard health, proxied for the tenant
// @Tags         health
// @Security     Bearer
// @Produce      json
// @Param        x-owner-id  header  string  true  "Owner ID"
// @Success      200  {object}  dto.DataResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /dashboard/health [get]
func (h *HealthHandler) Dashboard(c *fiber.Ctx) error {
	if h.upstream == nil {
		return writeError(c, &domain.UpstreamError{Status: fiber.StatusServiceUnavailable, Message: "upstream is not configured"})
	}
	out, err := h.upstream.Health(c.UserContext(), GetOwnerID(c))
	if err != nil {
		return writeError(c, err)
	}
	return respondOK(c, fiber.StatusOK, out)
}
