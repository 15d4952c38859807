package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/sigitdim/fortisapp-sub002/internal/domain"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{codeUniqueViolation, domain.ErrConflict},
		{codeForeignKeyViolation, domain.ErrConflict},
		{codeCheckViolation, domain.ErrValidation},
		{codeInvalidText, domain.ErrValidation},
		{codeInsufficientPriv, domain.ErrForbidden},
		{"57014", domain.ErrUpstream},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := mapError("op", &pgconn.PgError{Code: tt.code, Message: "boom"})
			assert.ErrorIs(t, err, tt.want)
		})
	}

	plain := errors.New("conn reset")
	assert.ErrorIs(t, mapError("op", plain), plain)
}

func TestPreferIPv4URL_LiteralHost(t *testing.T) {
	assert.Equal(t,
		"postgres://u:p@127.0.0.1:6543/db?sslmode=require",
		preferIPv4URL("postgres://u:p@127.0.0.1:6543/db?sslmode=require"))
	assert.Equal(t,
		"postgres://u:p@127.0.0.1:5432/db",
		preferIPv4URL("postgres://u:p@127.0.0.1/db"))
	// IPv6 literals are left alone
	assert.Equal(t, "postgres://u:p@[::1]:5432/db", preferIPv4URL("postgres://u:p@[::1]:5432/db"))
}
