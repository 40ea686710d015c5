package session

// Region is a disjoint group of screens the current session state admits.
type Region int

const (
	// RegionOnboarding: first-run flow, shown until onboarding completes.
	RegionOnboarding Region = iota

	// RegionAuth: sign-in / account creation flow for onboarded users.
	RegionAuth

	// RegionApp: the authenticated application.
	RegionApp
)

func (r Region) String() string {
	switch r {
	case RegionOnboarding:
		return "onboarding"
	case RegionAuth:
		return "auth"
	case RegionApp:
		return "app"
	default:
		return "unknown"
	}
}

// ActiveRegion computes the admitted region from the two relevant session
// fields. Regions are disjoint; precedence is app > auth > onboarding.
// Callers must wait for session restoration before the first evaluation,
// otherwise a stale snapshot could briefly admit the wrong region.
func ActiveRegion(isLoggedIn, hasCompletedOnboarding bool) Region {
	switch {
	case isLoggedIn:
		return RegionApp
	case hasCompletedOnboarding:
		return RegionAuth
	default:
		return RegionOnboarding
	}
}

// Region re-evaluates the admitted region from the store's current state.
func (s *Store) Region() Region {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ActiveRegion(s.phase == PhaseAuthenticated, s.hasCompletedOnboarding)
}
