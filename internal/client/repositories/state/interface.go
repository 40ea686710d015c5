// Package state persists small pieces of client state (the session snapshot,
// the sealed auth token) as rows in a local key/value table.
package state

import "context"

// Repository is a string-keyed blob store backed by local storage.
// Get returns (nil, nil) for a missing key; Delete on a missing key is a
// no-op.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
