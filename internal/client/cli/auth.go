package cli

import (
	"context"
	"fmt"
	"os"

	"authkit/internal/client/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and attempts to sign in. On failure the
// session store keeps the display message; the handler prints it near the
// form, which is the only user-visible error surface.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipe(password)

	if err := a.store.LogIn(ctx, models.Credentials{Email: email, Password: string(password)}); err != nil {
		fmt.Println("Sign-in failed:", a.store.Err())
		return err
	}

	if u := a.store.User(); u != nil {
		fmt.Printf("Welcome, %s!\n", u.FullName)
	}
	return nil
}

// Register prompts for account details and attempts to create an account.
func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipe(password)

	data := models.RegisterData{Email: email, Password: string(password), Name: name}
	if err := a.store.CreateAccount(ctx, data); err != nil {
		fmt.Println("Account creation failed:", a.store.Err())
		return err
	}

	if u := a.store.User(); u != nil {
		fmt.Printf("Welcome, %s!\n", u.FullName)
	}
	return nil
}

// Logout signs out. The store guarantees the device ends up signed out even
// when the backend is unreachable, so there is no failure to report.
func (a *App) Logout(ctx context.Context) error {
	if err := a.store.LogOut(ctx); err != nil {
		return err
	}
	fmt.Println("Signed out.")
	return nil
}

// Dismiss clears the current display error.
func (a *App) Dismiss(ctx context.Context) error {
	a.store.ClearError()
	return nil
}
