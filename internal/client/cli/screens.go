package cli

import (
	"context"
	"fmt"
)

// Profile renders the signed-in user, the stand-in for the profile tab.
func (a *App) Profile(ctx context.Context) error {
	u := a.store.User()
	if u == nil {
		fmt.Println("Not signed in.")
		return nil
	}

	fmt.Printf("%s <%s>\n", u.FullName, u.Email)
	if u.Avatar != "" {
		fmt.Println("Avatar:", u.Avatar)
	}
	if u.IsVip {
		fmt.Println("VIP member")
	}
	fmt.Println("Member since:", u.CreatedAt)
	return nil
}

// FinishOnboarding completes the first-run flow, unlocking the auth region.
func (a *App) FinishOnboarding(ctx context.Context) error {
	a.store.CompleteOnboarding(ctx)
	fmt.Println("Onboarding complete.")
	return nil
}

// RestartOnboarding re-enables the first-run flow on next sign-out.
func (a *App) RestartOnboarding(ctx context.Context) error {
	a.store.ResetOnboarding(ctx)
	fmt.Println("Onboarding will run again.")
	return nil
}
