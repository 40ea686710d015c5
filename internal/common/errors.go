// Package common defines shared constants and sentinel errors used across
// the client layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Session-level errors (flow control for the auth store).
	ErrOperationInFlight = errors.New("another auth operation is in flight")
	ErrorUnauthorized    = errors.New("unauthorized")

	// Token store errors.
	ErrNoToken        = errors.New("no stored token")
	ErrTokenCorrupted = errors.New("stored token is corrupted")
)
