package interfaces

import "context"

// ISequencer is an atomic per-key counter backing business-id minting.
//
// Keys look like "SO#2026". Next returns the incremented value. Floor raises
// the counter to at least n and never lowers it.
type ISequencer interface {
	Next(ctx context.Context, key string) (int64, error)
	Floor(ctx context.Context, key string, n int64) error
}

// IBusinessIDSource exposes the business ids already used by a collection so
// the minter can seed counters and check for collisions.
type IBusinessIDSource interface {
	ListBusinessIDs(ctx context.Context) ([]string, error)
	BusinessIDExists(ctx context.Context, id string) (bool, error)
}
