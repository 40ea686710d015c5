package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"authkit/internal/client/models"
	"authkit/internal/client/session"
)

// fakeStore is a scripted sessionStore.
type fakeStore struct {
	loginErr    error
	registerErr error
	logoutErr   error

	lastCreds models.Credentials
	lastData  models.RegisterData

	user     *models.User
	loggedIn bool
	errMsg   string
	region   session.Region

	onboardingDone  bool
	onboardingReset bool
	errorCleared    bool
	initialized     bool
}

func (f *fakeStore) InitializeAuth(ctx context.Context) error {
	f.initialized = true
	return nil
}

func (f *fakeStore) LogIn(ctx context.Context, creds models.Credentials) error {
	f.lastCreds = creds
	if f.loginErr != nil {
		f.errMsg = "invalid credentials"
		return f.loginErr
	}
	f.loggedIn = true
	return nil
}

func (f *fakeStore) LogOut(ctx context.Context) error {
	if f.logoutErr != nil {
		return f.logoutErr
	}
	f.loggedIn = false
	f.user = nil
	return nil
}

func (f *fakeStore) CreateAccount(ctx context.Context, data models.RegisterData) error {
	f.lastData = data
	if f.registerErr != nil {
		f.errMsg = "email taken"
		return f.registerErr
	}
	f.loggedIn = true
	return nil
}

func (f *fakeStore) CompleteOnboarding(ctx context.Context) { f.onboardingDone = true }
func (f *fakeStore) ResetOnboarding(ctx context.Context)    { f.onboardingReset = true }
func (f *fakeStore) ClearError()                            { f.errorCleared = true; f.errMsg = "" }
func (f *fakeStore) User() *models.User                     { return f.user }
func (f *fakeStore) IsLoggedIn() bool                       { return f.loggedIn }
func (f *fakeStore) Err() string                            { return f.errMsg }
func (f *fakeStore) Region() session.Region                 { return f.region }

func newTestApp(store *fakeStore) *App {
	return &App{store: store, reader: bufio.NewReader(strings.NewReader(""))}
}

func stubInput(t *testing.T, texts []string, password string) {
	t.Helper()
	origText, origPw := getSimpleText, getPassword
	t.Cleanup(func() { getSimpleText, getPassword = origText, origPw })

	i := 0
	getSimpleText = func(r *bufio.Reader, prompt string, w io.Writer) (string, error) {
		if i >= len(texts) {
			return "", io.EOF
		}
		s := texts[i]
		i++
		return s, nil
	}
	getPassword = func(w io.Writer) ([]byte, error) {
		return []byte(password), nil
	}
}

func TestAppLogin_PassesCredentials(t *testing.T) {
	stubInput(t, []string{"a@b.com"}, "x")
	store := &fakeStore{user: &models.User{FullName: "A B"}}
	app := newTestApp(store)

	require.NoError(t, app.Login(context.Background()))
	require.Equal(t, models.Credentials{Email: "a@b.com", Password: "x"}, store.lastCreds)
	require.True(t, store.loggedIn)
}

func TestAppLogin_SurfacesStoreError(t *testing.T) {
	stubInput(t, []string{"a@b.com"}, "bad")
	store := &fakeStore{loginErr: errors.New("401")}
	app := newTestApp(store)

	err := app.Login(context.Background())
	require.Error(t, err)
	require.False(t, store.loggedIn)
}

func TestAppRegister_PassesData(t *testing.T) {
	stubInput(t, []string{"a@b.com", "A B"}, "x")
	store := &fakeStore{user: &models.User{FullName: "A B"}}
	app := newTestApp(store)

	require.NoError(t, app.Register(context.Background()))
	require.Equal(t, models.RegisterData{Email: "a@b.com", Password: "x", Name: "A B"}, store.lastData)
}

func TestAppLogout(t *testing.T) {
	store := &fakeStore{loggedIn: true, user: &models.User{}}
	app := newTestApp(store)

	require.NoError(t, app.Logout(context.Background()))
	require.False(t, store.loggedIn)
	require.Nil(t, store.user)
}

func TestAppDismiss(t *testing.T) {
	store := &fakeStore{errMsg: "stale error"}
	app := newTestApp(store)

	require.NoError(t, app.Dismiss(context.Background()))
	require.True(t, store.errorCleared)
}

func TestAppOnboardingHandlers(t *testing.T) {
	store := &fakeStore{}
	app := newTestApp(store)
	ctx := context.Background()

	require.NoError(t, app.FinishOnboarding(ctx))
	require.True(t, store.onboardingDone)

	require.NoError(t, app.RestartOnboarding(ctx))
	require.True(t, store.onboardingReset)
}

func TestAppProfile_NotSignedIn(t *testing.T) {
	app := newTestApp(&fakeStore{})
	require.NoError(t, app.Profile(context.Background()))
}

func TestAppProfile_SignedIn(t *testing.T) {
	app := newTestApp(&fakeStore{user: &models.User{
		FullName:  "A B",
		Email:     "a@b.com",
		IsVip:     true,
		CreatedAt: "2024-01-01",
	}})
	require.NoError(t, app.Profile(context.Background()))
}
