package domain

import (
	"errors"
	"fmt"
)

// Domain errors. Handlers classify them with errors.Is.
var (
	ErrValidation   = errors.New("invalid request")
	ErrNotFound     = errors.New("resource not found")
	ErrUpstream     = errors.New("upstream request failed")
	ErrConflict     = errors.New("conflicts with current state")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("access denied")
)

// Calculator-specific validation errors. All of them wrap ErrValidation.
var (
	ErrInvalidYield    = fmt.Errorf("%w: yield must be greater than zero", ErrValidation)
	ErrInvalidQuantity = fmt.Errorf("%w: invalid quantity", ErrValidation)
	ErrInvalidInput    = fmt.Errorf("%w: invalid input", ErrValidation)
)

// UpstreamError keeps the status and message returned by the data store or a proxied API.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream responded %d: %s", e.Status, e.Message)
}

func (e *UpstreamError) Unwrap() error { return ErrUpstream }

// Invalid wraps ErrValidation with a field-level message.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Missing wraps ErrNotFound with the name of the absent entity.
func Missing(entity, id string) error {
	return fmt.Errorf("%w: %s %s", ErrNotFound, entity, id)
}
