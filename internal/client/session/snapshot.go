package session

import "authkit/internal/client/models"

// Snapshot is the durable subset of the session, persisted under
// common.SnapshotStorageKey after every mutation. The bearer token is never
// part of it; the token lives solely in the secure token store.
//
// User and IsLoggedIn written here are provisional on reload: they are not
// trusted for route guarding until InitializeAuth re-validates the stored
// token.
type Snapshot struct {
	User                   *models.User `json:"user"`
	IsLoggedIn             bool         `json:"isLoggedIn"`
	ShouldCreateAccount    bool         `json:"shouldCreateAccount"`
	HasCompletedOnboarding bool         `json:"hasCompletedOnboarding"`
}
