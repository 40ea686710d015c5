// Package services contains the typed remote services used by the client.
// This file defines the auth service: a thin mapping from four named
// operations to transport calls. No retry, no caching; failures propagate
// unchanged to the caller.
package services

import (
	"context"

	"authkit/internal/client/models"
)

// API endpoints, relative to the configured base URL.
const (
	EndpointLogin    = "/auth/login"
	EndpointLogout   = "/auth/logout"
	EndpointRegister = "/auth/register"
	EndpointProfile  = "/user/profile"
)

// Transport is the subset of the api client the auth service needs.
type Transport interface {
	Get(ctx context.Context, endpoint string, out any) error
	Post(ctx context.Context, endpoint string, body any, out any) error
}

// AuthService defines the remote authentication operations.
//
// Contract:
//   - Login: exchange credentials for a user record plus bearer token.
//   - Logout: invalidate the server-side session (response ignored).
//   - Register: create an account; same result shape as Login.
//   - GetProfile: fetch the current user for the stored token.
//
// All methods honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	Logout(ctx context.Context) error
	Register(ctx context.Context, data models.RegisterData) (*models.AuthResponse, error)
	GetProfile(ctx context.Context) (*models.User, error)
}

type authService struct {
	transport Transport
}

// NewAuthService constructs an AuthService bound to the given transport.
func NewAuthService(transport Transport) AuthService {
	return &authService{transport: transport}
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := a.transport.Post(ctx, EndpointLogin, creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *authService) Logout(ctx context.Context) error {
	return a.transport.Post(ctx, EndpointLogout, nil, nil)
}

func (a *authService) Register(ctx context.Context, data models.RegisterData) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := a.transport.Post(ctx, EndpointRegister, data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (a *authService) GetProfile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := a.transport.Get(ctx, EndpointProfile, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
