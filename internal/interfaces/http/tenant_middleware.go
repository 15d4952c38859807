package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/sigitdim/fortisapp-sub002/pkg/tenant"
)

// HeaderOwnerID carries the tenant on every request.
const HeaderOwnerID = "x-owner-id"

// Locals keys.
const (
	LocalOwnerID = "owner_id"
	LocalUserID  = "user_id"
	LocalRole    = "role"
)

// TenantMiddleware requires a UUID x-owner-id header and stores it in c.Locals and in the
// user context, where the database pool picks it up for row level security.
func TenantMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID := strings.TrimSpace(c.Get(HeaderOwnerID))
		if ownerID == "" {
			return badRequest(c, "x-owner-id required")
		}
		if _, err := uuid.Parse(ownerID); err != nil {
			return badRequest(c, "x-owner-id must be a uuid")
		}
		c.Locals(LocalOwnerID, ownerID)
		c.SetUserContext(tenant.WithOwner(c.UserContext(), ownerID))
		return c.Next()
	}
}

// GetOwnerID returns the tenant set by TenantMiddleware.
func GetOwnerID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalOwnerID).(string)
	return s
}
