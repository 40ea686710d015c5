package common

// Storage keys for the local state table. The session snapshot and the sealed
// token live in separate rows; the token is never part of the snapshot.
const (
	SnapshotStorageKey = "auth-store"
	TokenStorageKey    = "auth-token"
)

// AuthorizationHeader carries the bearer token on outbound requests.
const AuthorizationHeader = "Authorization"
