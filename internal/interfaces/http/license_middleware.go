package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// licenseChecker is implemented by *usecase.LicenseService.
type licenseChecker interface {
	IsActive(ctx context.Context, ownerID string) (bool, error)
}

// RequireLicense blocks owners without an active license. Must run after TenantMiddleware.
//
//   - 403 when the license is missing, inactive or expired.
//   - 503 when the license store cannot be read.
func RequireLicense(checker licenseChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ownerID := GetOwnerID(c)
		active, err := checker.IsActive(c.UserContext(), ownerID)
		if err != nil {
			log.Error().Err(err).Str("owner_id", ownerID).Msg("license check failed")
			return respondError(c, fiber.StatusServiceUnavailable, "LICENSE_CHECK_FAILED", "could not verify license, try again later")
		}
		if !active {
			return respondError(c, fiber.StatusForbidden, "LICENSE_INACTIVE", "an active license is required for this feature")
		}
		return c.Next()
	}
}
