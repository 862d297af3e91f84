package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/sportowyhub/sportowyhub-cli/internal/client/api"
	"github.com/sportowyhub/sportowyhub-cli/internal/client/config"
	"github.com/sportowyhub/sportowyhub-cli/internal/client/secrets"
	"github.com/sportowyhub/sportowyhub-cli/internal/client/services"
	"github.com/sportowyhub/sportowyhub-cli/internal/client/session"
	"github.com/sportowyhub/sportowyhub-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// App owns the wired services and the interactive state of the CLI. The
// user field caches the signed-in identity for the prompt; the session
// store stays the source of truth.
type App struct {
	config    *config.Config
	auth      services.AuthService
	listings  services.ListingsService
	favorites services.FavoritesService
	recent    services.RecentSearchesService
	log       logging.Logger
	reader    *bufio.Reader
	db        *sql.DB
	user      string
}

// NewApp opens the local secret store, wires the HTTP provider and the
// services, and restores the signed-in identity if a session is persisted.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	store, db, err := secrets.Open(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "opening secret store", "error", err)
		return nil, err
	}

	provider := api.NewProvider(c.APIBaseURL, c.RequestTimeout)

	as := services.NewAuthService(provider, session.NewStore(store), log)
	ls := services.NewListingsService(provider, log)
	fs := services.NewFavoritesService(provider, as, log)
	rs := services.NewRecentSearchesService(store, log)

	app := &App{
		config:    c,
		auth:      as,
		listings:  ls,
		favorites: fs,
		recent:    rs,
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		db:        db,
	}

	if user, err := as.CurrentUser(ctx); err == nil {
		app.user = user
	}

	return app, nil
}

// Run warms the favorites cache and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.favorites.LoadIDs(ctx); err != nil {
		a.log.Warn(ctx, "loading favorites cache", "error", err)
	}

	printlnFn("Welcome to SportowyHub CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// Close releases the secret-store database handle.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.user != ""
}

func (a *App) status() string {
	if a.user == "" {
		return ""
	}
	return "(" + a.user + ")"
}
