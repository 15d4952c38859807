package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sigitdim/fortisapp-sub002/internal/domain"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeInsufficientPriv    = "42501"
	codeInvalidText         = "22P02"
)

// mapError translates driver errors into the domain taxonomy. op names the failed statement.
func mapError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrConflict, pgErr.ConstraintName)
		case codeForeignKeyViolation:
			return fmt.Errorf("%s: %w: referenced row missing or still in use (%s)", op, domain.ErrConflict, pgErr.ConstraintName)
		case codeCheckViolation:
			return fmt.Errorf("%s: %w: %s", op, domain.ErrValidation, pgErr.ConstraintName)
		case codeInvalidText:
			// e.g. an id that is not a uuid
			return fmt.Errorf("%s: %w: malformed value", op, domain.ErrValidation)
		case codeInsufficientPriv:
			// row-level security rejected the statement
			return fmt.Errorf("%s: %w", op, domain.ErrForbidden)
		}
		return &domain.UpstreamError{Status: 500, Message: fmt.Sprintf("%s: %s (%s)", op, pgErr.Message, pgErr.Code)}
	}
	return fmt.Errorf("%s: %w", op, err)
}
