package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/sigitdim/fortisapp-sub002/internal/application/dto"
	"github.com/sigitdim/fortisapp-sub002/internal/domain"
)

// Error codes of the error envelope.
const (
	CodeValidation   = "VALIDATION"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeUpstream     = "UPSTREAM"
	CodeInternal     = "INTERNAL"
)

// respondOK writes the success envelope. Nil slices are sent as [].
func respondOK(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(dto.DataResponse{OK: true, Data: data})
}

func respondError(c *fiber.Ctx, status int, code, msg string) error {
	return c.Status(status).JSON(dto.ErrorResponse{OK: false, Code: code, Message: msg})
}

func badRequest(c *fiber.Ctx, msg string) error {
	return respondError(c, fiber.StatusBadRequest, CodeValidation, msg)
}

// writeError maps the domain error taxonomy to a status code and the error envelope.
func writeError(c *fiber.Ctx, err error) error {
	status, code := classify(err)
	msg := err.Error()
	if status >= fiber.StatusInternalServerError {
		ev := log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("owner_id", GetOwnerID(c)).
			Int("status", status)
		var upstream *domain.UpstreamError
		if errors.As(err, &upstream) {
			ev = ev.Int("upstream_status", upstream.Status)
		}
		ev.Msg("request failed")
		if status == fiber.StatusInternalServerError {
			msg = "internal error"
		}
	}
	return respondError(c, status, code, msg)
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest, CodeValidation
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, CodeNotFound
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, CodeConflict
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, CodeUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, CodeForbidden
	case errors.Is(err, domain.ErrUpstream):
		return fiber.StatusBadGateway, CodeUpstream
	default:
		return fiber.StatusInternalServerError, CodeInternal
	}
}

// ErrorHandler is the fiber.Config ErrorHandler: framework errors keep their status,
// everything else goes through writeError.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := CodeInternal
		switch fe.Code {
		case fiber.StatusNotFound:
			code = CodeNotFound
		case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity, fiber.StatusRequestEntityTooLarge:
			code = CodeValidation
		case fiber.StatusMethodNotAllowed:
			code = CodeNotFound
		}
		return respondError(c, fe.Code, code, fe.Message)
	}
	return writeError(c, err)
}
