package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/sigitdim/fortisapp-sub002/internal/domain"
)

// optionalDecimal parses an optional numeric query parameter.
func optionalDecimal(c *fiber.Ctx, key string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, domain.Invalid("%s must be a number", key)
	}
	return &d, nil
}

func requiredQuery(c *fiber.Ctx, key string) (string, error) {
	v := strings.TrimSpace(c.Query(key))
	if v == "" {
		return "", domain.Invalid("%s is required", key)
	}
	return v, nil
}

func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return domain.Invalid("malformed request body")
	}
	return nil
}
