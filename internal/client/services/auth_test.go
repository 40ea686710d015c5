package services

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"authkit/internal/client/models"
)

// ---- fake transport ----

// fakeTransport records the last call and replays canned payloads.
type fakeTransport struct {
	GetErr  error
	PostErr error

	// payload marshalled into out on success
	GetPayload  any
	PostPayload any

	LastMethod   string
	LastEndpoint string
	LastBody     any
}

func (f *fakeTransport) replay(payload, out any) error {
	if payload == nil || out == nil {
		return nil
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}

func (f *fakeTransport) Get(ctx context.Context, endpoint string, out any) error {
	f.LastMethod, f.LastEndpoint = "GET", endpoint
	if f.GetErr != nil {
		return f.GetErr
	}
	return f.replay(f.GetPayload, out)
}

func (f *fakeTransport) Post(ctx context.Context, endpoint string, body any, out any) error {
	f.LastMethod, f.LastEndpoint, f.LastBody = "POST", endpoint, body
	if f.PostErr != nil {
		return f.PostErr
	}
	return f.replay(f.PostPayload, out)
}

// ---- tests ----

var testUser = models.User{
	ID:        "1",
	Email:     "a@b.com",
	FullName:  "A B",
	IsVip:     false,
	CreatedAt: "2024-01-01",
}

func TestAuthService_Login(t *testing.T) {
	ft := &fakeTransport{PostPayload: models.AuthResponse{User: testUser, Token: "tok123"}}
	svc := NewAuthService(ft)

	creds := models.Credentials{Email: "a@b.com", Password: "x"}
	resp, err := svc.Login(context.Background(), creds)
	require.NoError(t, err)
	require.Equal(t, "POST", ft.LastMethod)
	require.Equal(t, EndpointLogin, ft.LastEndpoint)
	require.Equal(t, creds, ft.LastBody)
	require.Equal(t, testUser, resp.User)
	require.Equal(t, "tok123", resp.Token)
}

func TestAuthService_Login_PropagatesError(t *testing.T) {
	wantErr := errors.New("boom")
	svc := NewAuthService(&fakeTransport{PostErr: wantErr})

	resp, err := svc.Login(context.Background(), models.Credentials{})
	require.ErrorIs(t, err, wantErr)
	require.Nil(t, resp)
}

func TestAuthService_Logout_IgnoresResponseBody(t *testing.T) {
	ft := &fakeTransport{}
	svc := NewAuthService(ft)

	require.NoError(t, svc.Logout(context.Background()))
	require.Equal(t, EndpointLogout, ft.LastEndpoint)
	require.Nil(t, ft.LastBody)
}

func TestAuthService_Register(t *testing.T) {
	ft := &fakeTransport{PostPayload: models.AuthResponse{User: testUser, Token: "tok456"}}
	svc := NewAuthService(ft)

	data := models.RegisterData{Email: "a@b.com", Password: "x", Name: "A B"}
	resp, err := svc.Register(context.Background(), data)
	require.NoError(t, err)
	require.Equal(t, EndpointRegister, ft.LastEndpoint)
	require.Equal(t, data, ft.LastBody)
	require.Equal(t, "tok456", resp.Token)
}

func TestAuthService_GetProfile(t *testing.T) {
	ft := &fakeTransport{GetPayload: testUser}
	svc := NewAuthService(ft)

	user, err := svc.GetProfile(context.Background())
	require.NoError(t, err)
	require.Equal(t, "GET", ft.LastMethod)
	require.Equal(t, EndpointProfile, ft.LastEndpoint)
	require.Equal(t, testUser, *user)
}
