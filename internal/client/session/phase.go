package session

// Phase is the explicit lifecycle state of the session. At most one async
// operation mutates the session at a time; the three transitional phases
// (Restoring, Authenticating, LoggingOut) mark an operation in flight.
type Phase int

const (
	// PhaseUnauthenticated: no session; auth flow reachable.
	PhaseUnauthenticated Phase = iota

	// PhaseRestoring: a previously stored token is being validated.
	PhaseRestoring

	// PhaseAuthenticating: login or registration in flight.
	PhaseAuthenticating

	// PhaseAuthenticated: a validated session with a user record.
	PhaseAuthenticated

	// PhaseLoggingOut: local state already cleared, remote logout and token
	// removal still running.
	PhaseLoggingOut
)

func (p Phase) String() string {
	switch p {
	case PhaseUnauthenticated:
		return "unauthenticated"
	case PhaseRestoring:
		return "restoring"
	case PhaseAuthenticating:
		return "authenticating"
	case PhaseAuthenticated:
		return "authenticated"
	case PhaseLoggingOut:
		return "logging-out"
	default:
		return "unknown"
	}
}

// inFlight reports whether an async auth operation owns the session.
func (p Phase) inFlight() bool {
	return p == PhaseRestoring || p == PhaseAuthenticating || p == PhaseLoggingOut
}
