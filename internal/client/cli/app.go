// Package cli is the interactive front-end: a REPL standing in for the
// mobile app's screens. It owns composition of the client stack (database,
// token store, transport, session store) and blocks once at startup on
// session restoration before the first route-guard evaluation.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"authkit/internal/client/api"
	"authkit/internal/client/client"
	"authkit/internal/client/config"
	"authkit/internal/client/models"
	"authkit/internal/client/repositories/state"
	"authkit/internal/client/securestore"
	"authkit/internal/client/services"
	"authkit/internal/client/session"
	"authkit/internal/logging"

	_ "modernc.org/sqlite"
)

// sessionStore is the surface of session.Store the CLI consumes. Tests
// substitute a fake.
type sessionStore interface {
	InitializeAuth(ctx context.Context) error
	LogIn(ctx context.Context, creds models.Credentials) error
	LogOut(ctx context.Context) error
	CreateAccount(ctx context.Context, data models.RegisterData) error
	CompleteOnboarding(ctx context.Context)
	ResetOnboarding(ctx context.Context)
	ClearError()
	User() *models.User
	IsLoggedIn() bool
	Err() string
	Region() session.Region
}

// App wires the client stack together and drives the REPL.
type App struct {
	config *config.Config
	store  sessionStore
	log    logging.Logger
	reader *bufio.Reader
}

// NewApp builds the full client stack from cfg.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	repo := state.NewSQLiteRepository(db)
	tokens := securestore.NewSealedStore(repo, cfg.KeyFilePath)

	transport := api.New(cfg.APIBaseURL, tokens,
		api.WithLogger(log),
		api.WithTimeout(cfg.RequestTimeout),
	)
	svc := services.NewAuthService(transport)

	store := session.New(ctx, svc, tokens, repo, log)

	return &App{
		config: cfg,
		store:  store,
		log:    log,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the session, then enters the REPL. Restoration is the single
// mandatory suspension point: no command is accepted until it resolves, so
// the first region evaluation never sees a stale snapshot.
func (a *App) Run(ctx context.Context) error {
	fmt.Println("Checking authentication...")
	if err := a.store.InitializeAuth(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
	return nil
}

// status renders the prompt suffix: the admitted region plus the signed-in
// user, e.g. "app a@b.com".
func (a *App) status() string {
	s := a.store.Region().String()
	if u := a.store.User(); u != nil {
		s += " " + u.Email
	}
	return s
}

func (a *App) Region() session.Region {
	return a.store.Region()
}
