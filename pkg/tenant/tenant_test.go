package tenant_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sigitdim/fortisapp-sub002/pkg/tenant"
)

func TestOwnerID(t *testing.T) {
	assert.Empty(t, tenant.OwnerID(context.Background()))

	ctx := tenant.WithOwner(context.Background(), "o-1")
	assert.Equal(t, "o-1", tenant.OwnerID(ctx))
	assert.Equal(t, "o-2", tenant.OwnerID(tenant.WithOwner(ctx, "o-2")), "inner scope wins")
}
