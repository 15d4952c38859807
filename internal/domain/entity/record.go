package entity

import "time"

// Record is the constraint used by the generic setup store: a pointer to a tenant-owned row.
type Record[T any] interface {
	*T
	Key() string
	Owner() string
	Created() time.Time
	// Stamp assigns identity, tenant and timestamps before the row is persisted.
	Stamp(id, ownerID string, created, updated time.Time)
	Validate() error
}
