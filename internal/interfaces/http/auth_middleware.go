package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sigitdim/fortisapp-sub002/pkg/jwt"
)

// AuthMiddleware verifies the Bearer token and requires its subject to be the tenant of the
// request. Must run after TenantMiddleware.
//
//   - 401 when the header is missing, malformed, or the token does not verify.
//   - 403 when the token belongs to another owner.
func AuthMiddleware(secret string, opts jwt.VerifyOptions) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return respondError(c, fiber.StatusUnauthorized, CodeUnauthorized, "authorization header required")
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return respondError(c, fiber.StatusUnauthorized, CodeUnauthorized, "expected: Bearer <token>")
		}
		claims, err := jwt.Parse(secret, strings.TrimSpace(parts[1]), opts)
		if err != nil {
			return respondError(c, fiber.StatusUnauthorized, CodeUnauthorized, "invalid or expired token")
		}
		if claims.Subject != GetOwnerID(c) {
			return respondError(c, fiber.StatusForbidden, CodeForbidden, "token does not belong to x-owner-id")
		}
		c.Locals(LocalUserID, claims.Subject)
		c.Locals(LocalRole, claims.Role)
		return c.Next()
	}
}

// GetUserID returns the authenticated subject.
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}
