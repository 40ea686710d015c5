// Package securestore keeps the bearer token encrypted at rest. It is the
// desktop stand-in for a platform secure-credential store: the token is
// sealed with an AEAD under a device key held in a permission-restricted key
// file, and the ciphertext lives in the local state table, separate from the
// session snapshot.
package securestore

import "context"

// Store persists a single opaque token string.
//
// Contract:
//   - Save overwrites any previously stored token.
//   - Load returns ("", nil) when no token is stored.
//   - Delete is idempotent; deleting an absent token is not an error.
type Store interface {
	Save(ctx context.Context, token string) error
	Load(ctx context.Context) (string, error)
	Delete(ctx context.Context) error
}
