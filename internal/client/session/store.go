// Package session implements the client-side authentication state machine:
// login, logout, registration, session restoration at process start, and the
// durable snapshot the next start resumes from. It owns the token lifecycle
// ordering: a session is published as authenticated only after the token is
// durably stored, and local teardown never waits for the network.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"authkit/internal/client/api"
	"authkit/internal/client/models"
	"authkit/internal/client/repositories/state"
	"authkit/internal/client/securestore"
	"authkit/internal/client/services"
	"authkit/internal/common"
	"authkit/internal/logging"
)

// Store is the process-wide session state machine. It is created once at
// startup by the application's composition root and injected into consumers;
// there is no ambient global instance.
//
// All state is guarded by an internal mutex; at most one asynchronous
// operation (LogIn, LogOut, CreateAccount, InitializeAuth) may be in flight
// at a time. A second concurrent call fails fast with
// common.ErrOperationInFlight. Local toggles (onboarding flags, ClearError)
// are always accepted.
type Store struct {
	svc    services.AuthService
	tokens securestore.Store
	repo   state.Repository
	log    logging.Logger

	mu    sync.Mutex
	phase Phase
	prev  Phase // phase to fall back to when an in-flight operation fails
	user  *models.User

	// provisionalLogin marks a logged-in state reloaded from the snapshot
	// that InitializeAuth has not validated against the stored token yet.
	provisionalLogin bool

	errMsg                 string
	shouldCreateAccount    bool
	hasCompletedOnboarding bool
}

// New builds a Store and loads the persisted snapshot. A missing or
// unreadable snapshot yields a fresh unauthenticated session; reloaded
// login state stays provisional until InitializeAuth runs.
func New(ctx context.Context, svc services.AuthService, tokens securestore.Store, repo state.Repository, log logging.Logger) *Store {
	s := &Store{
		svc:    svc,
		tokens: tokens,
		repo:   repo,
		log:    log,
		phase:  PhaseUnauthenticated,
	}

	raw, err := repo.Get(ctx, common.SnapshotStorageKey)
	if err != nil {
		log.Warn(ctx, "failed to read session snapshot, starting fresh", "error", err)
		return s
	}
	if raw == nil {
		return s
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		log.Warn(ctx, "corrupted session snapshot, starting fresh", "error", err)
		return s
	}

	s.shouldCreateAccount = snap.ShouldCreateAccount
	s.hasCompletedOnboarding = snap.HasCompletedOnboarding
	if snap.IsLoggedIn && snap.User != nil {
		s.user = snap.User
		s.provisionalLogin = true
	}
	return s
}

// ---- selectors ----

// Phase returns the current lifecycle phase.
func (s *Store) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// User returns the authenticated user, or nil outside PhaseAuthenticated.
func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != PhaseAuthenticated {
		return nil
	}
	return s.user
}

// IsLoggedIn reports whether a validated session exists.
func (s *Store) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase == PhaseAuthenticated
}

// IsLoading reports whether an async auth operation is in flight.
func (s *Store) IsLoading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase.inFlight()
}

// Err returns the display message of the last failed operation, or "".
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}

// HasCompletedOnboarding reports the persisted first-run flag.
func (s *Store) HasCompletedOnboarding() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hasCompletedOnboarding
}

// ShouldCreateAccount reports the persisted registration-eligibility flag.
// The flag is maintained (cleared by a successful CreateAccount) but not
// consulted by the route guard.
func (s *Store) ShouldCreateAccount() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shouldCreateAccount
}

// Snapshot returns the durable view of the session as it would be persisted
// right now, including login state reloaded from disk that is still awaiting
// validation.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		User:                   s.user,
		IsLoggedIn:             s.phase == PhaseAuthenticated || s.provisionalLogin,
		ShouldCreateAccount:    s.shouldCreateAccount,
		HasCompletedOnboarding: s.hasCompletedOnboarding,
	}
}

// ---- actions ----

// LogIn authenticates with the given credentials. On success the token is
// durably stored before the session is published as authenticated. On
// failure the session is left exactly as it was, the display error is set,
// and the original error is returned so the caller can react independently.
func (s *Store) LogIn(ctx context.Context, creds models.Credentials) error {
	if err := s.begin(PhaseAuthenticating); err != nil {
		return err
	}

	resp, err := s.svc.Login(ctx, creds)
	if err != nil {
		s.failOp(ctx, errorMessage(err, "Login failed"))
		return err
	}

	if err := s.tokens.Save(ctx, resp.Token); err != nil {
		s.log.Error(ctx, "failed to store token", "error", err)
		s.failOp(ctx, "Login failed")
		return fmt.Errorf("store token: %w", err)
	}

	s.completeAuth(ctx, &resp.User, false)
	s.log.Info(ctx, "login succeeded", "user_id", resp.User.ID)
	return nil
}

// CreateAccount registers a new account. Same contract as LogIn; on success
// the registration-eligibility flag is additionally cleared.
func (s *Store) CreateAccount(ctx context.Context, data models.RegisterData) error {
	if err := s.begin(PhaseAuthenticating); err != nil {
		return err
	}

	resp, err := s.svc.Register(ctx, data)
	if err != nil {
		s.failOp(ctx, errorMessage(err, "Account creation failed"))
		return err
	}

	if err := s.tokens.Save(ctx, resp.Token); err != nil {
		s.log.Error(ctx, "failed to store token", "error", err)
		s.failOp(ctx, "Account creation failed")
		return fmt.Errorf("store token: %w", err)
	}

	s.completeAuth(ctx, &resp.User, true)
	s.log.Info(ctx, "registration succeeded", "user_id", resp.User.ID)
	return nil
}

// LogOut tears the session down. The local state is cleared and persisted
// before the remote call; the remote logout is best-effort (failures are
// logged, never surfaced); the stored token is removed regardless of the
// remote outcome. The device must never stay authenticated after LogOut,
// even under total network failure. Logging out of a logged-out session is
// a no-op.
func (s *Store) LogOut(ctx context.Context) error {
	s.mu.Lock()
	if s.phase.inFlight() {
		s.mu.Unlock()
		return common.ErrOperationInFlight
	}
	if s.phase != PhaseAuthenticated && s.user == nil && !s.provisionalLogin {
		s.mu.Unlock()
		return nil
	}
	s.phase = PhaseLoggingOut
	s.user = nil
	s.provisionalLogin = false
	s.errMsg = ""
	s.mu.Unlock()

	// locally signed out before any network I/O touches the session
	s.persist(ctx)

	defer func() {
		// runs regardless of the remote call outcome
		if err := s.tokens.Delete(ctx); err != nil {
			s.log.Error(ctx, "failed to delete stored token", "error", err)
		}

		s.mu.Lock()
		s.user = nil
		s.provisionalLogin = false
		s.errMsg = ""
		s.phase = PhaseUnauthenticated
		s.mu.Unlock()
		s.persist(ctx)
	}()

	if err := s.svc.Logout(ctx); err != nil {
		s.log.Warn(ctx, "remote logout failed", "error", err)
	}
	return nil
}

// InitializeAuth restores the session at process start. Without a stored
// token it resolves immediately and never touches the network. With one, it
// validates the token by fetching the profile; an invalid or unreachable
// token fails closed: the token is deleted and the session reset, silently,
// since a dead token is an expected condition rather than a fault.
//
// Callers must block on this once, before the first route-guard evaluation.
func (s *Store) InitializeAuth(ctx context.Context) error {
	s.mu.Lock()
	if s.phase.inFlight() {
		s.mu.Unlock()
		return common.ErrOperationInFlight
	}
	if s.phase == PhaseAuthenticated {
		// a login that raced ahead of restoration already owns the session
		s.mu.Unlock()
		return nil
	}
	s.phase = PhaseRestoring
	s.mu.Unlock()

	token, err := s.tokens.Load(ctx)
	if err != nil {
		s.log.Warn(ctx, "stored token unreadable, resetting session", "error", err)
		s.resetRestored(ctx, true)
		return nil
	}

	if token == "" {
		// nothing to restore; any snapshot login state is stale
		s.resetRestored(ctx, false)
		return nil
	}

	user, err := s.svc.GetProfile(ctx)
	if err != nil {
		s.log.Info(ctx, "session restore failed, clearing token", "error", err)
		s.resetRestored(ctx, true)
		return nil
	}

	s.completeAuth(ctx, user, false)
	s.log.Info(ctx, "session restored", "user_id", user.ID)
	return nil
}

// CompleteOnboarding marks the first-run flow as finished. Local, no I/O
// besides the snapshot write, no error path.
func (s *Store) CompleteOnboarding(ctx context.Context) {
	s.mu.Lock()
	s.hasCompletedOnboarding = true
	s.mu.Unlock()
	s.persist(ctx)
}

// ResetOnboarding re-enables the first-run flow.
func (s *Store) ResetOnboarding(ctx context.Context) {
	s.mu.Lock()
	s.hasCompletedOnboarding = false
	s.mu.Unlock()
	s.persist(ctx)
}

// ClearError dismisses the display error. No-op when none is set.
func (s *Store) ClearError() {
	s.mu.Lock()
	s.errMsg = ""
	s.mu.Unlock()
}

// ---- internals ----

// begin claims the single in-flight slot and clears the previous error.
func (s *Store) begin(next Phase) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase.inFlight() {
		return common.ErrOperationInFlight
	}
	s.prev = s.phase
	s.phase = next
	s.errMsg = ""
	return nil
}

// failOp releases the in-flight slot, restores the prior phase and records
// the display error. Session identity fields are untouched: a failed attempt
// must not partially authenticate or deauthenticate.
func (s *Store) failOp(ctx context.Context, msg string) {
	s.mu.Lock()
	s.phase = s.prev
	s.errMsg = msg
	s.mu.Unlock()
}

// completeAuth publishes an authenticated session. The caller must have
// durably stored the token already.
func (s *Store) completeAuth(ctx context.Context, user *models.User, registered bool) {
	s.mu.Lock()
	s.user = user
	s.phase = PhaseAuthenticated
	s.provisionalLogin = false
	s.errMsg = ""
	if registered {
		s.shouldCreateAccount = false
	}
	s.mu.Unlock()
	s.persist(ctx)
}

// resetRestored concludes a failed or empty restoration: unauthenticated,
// provisional state discarded, token removed when requested.
func (s *Store) resetRestored(ctx context.Context, deleteToken bool) {
	if deleteToken {
		if err := s.tokens.Delete(ctx); err != nil {
			s.log.Error(ctx, "failed to delete stored token", "error", err)
		}
	}
	s.mu.Lock()
	s.user = nil
	s.provisionalLogin = false
	s.phase = PhaseUnauthenticated
	s.mu.Unlock()
	s.persist(ctx)
}

// persist writes the durable snapshot. Persistence is best-effort: a failed
// write is logged and the in-memory session stays authoritative.
func (s *Store) persist(ctx context.Context) {
	s.mu.Lock()
	snap := s.snapshotLocked()
	s.mu.Unlock()

	raw, err := json.Marshal(snap)
	if err != nil {
		s.log.Error(ctx, "failed to encode session snapshot", "error", err)
		return
	}
	if err := s.repo.Set(ctx, common.SnapshotStorageKey, raw); err != nil {
		s.log.Error(ctx, "failed to persist session snapshot", "error", err)
	}
}

// errorMessage extracts a user-displayable message from an operation error,
// preferring the server-supplied transport message.
func errorMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
