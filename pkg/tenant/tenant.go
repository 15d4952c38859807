// Package tenant carries the owner of a request through context.Context so storage
// layers below the HTTP boundary can scope their sessions to it.
package tenant

import "context"

type ownerKey struct{}

// WithOwner returns a copy of ctx scoped to ownerID.
func WithOwner(ctx context.Context, ownerID string) context.Context {
	return context.WithValue(ctx, ownerKey{}, ownerID)
}

// OwnerID returns the owner stored by WithOwner, or "" when ctx is not scoped.
func OwnerID(ctx context.Context) string {
	id, _ := ctx.Value(ownerKey{}).(string)
	return id
}
