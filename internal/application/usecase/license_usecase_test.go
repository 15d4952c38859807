package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sigitdim/fortisapp-sub002/internal/application/usecase"
	"github.com/sigitdim/fortisapp-sub002/internal/infrastructure/memory"
)

func TestLicense(t *testing.T) {
	s := memory.NewStore(decimal.Zero)
	svc := usecase.NewLicenseService(s.Licenses)
	ctx := context.Background()

	active, err := svc.IsActive(ctx, owner)
	require.NoError(t, err)
	assert.False(t, active, "no license row")

	_, err = svc.IsActive(ctx, "")
	assert.Error(t, err)

	s.Licenses.Grant(owner, nil)
	active, err = svc.IsActive(ctx, owner)
	require.NoError(t, err)
	assert.True(t, active)

	past := time.Now().Add(-time.Hour)
	s.Licenses.Grant("expired", &past)
	active, err = svc.IsActive(ctx, "expired")
	require.NoError(t, err)
	assert.False(t, active)

	v, err := svc.Verify(ctx, "expired")
	require.NoError(t, err)
	assert.True(t, v.OK)
	assert.False(t, v.Active)
	require.NotNil(t, v.ExpiresAt)
	assert.True(t, v.ExpiresAt.Equal(past))

	v, err = svc.Verify(ctx, "nobody")
	require.NoError(t, err)
	assert.False(t, v.Active)
	assert.Nil(t, v.ExpiresAt)
}
