package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/nuesadev/scholarengine/internal/config"
	"github.com/nuesadev/scholarengine/internal/discovery"
	"github.com/nuesadev/scholarengine/internal/engine"
	"github.com/nuesadev/scholarengine/internal/logging"
	"github.com/nuesadev/scholarengine/internal/medium"
	"github.com/nuesadev/scholarengine/internal/notify"
	"github.com/nuesadev/scholarengine/internal/store"
)

// App is the interactive portal client. It owns the storage medium and the
// engine and tears both down when Run returns.
type App struct {
	config *config.Config
	log    logging.Logger
	medium medium.Medium
	engine *engine.Engine

	reader   *bufio.Reader
	userName string
}

// NewApp opens the local store described by c and builds the engine on top
// of it. When c.SealPassphrase is set, the store is encrypted at rest; when
// c.DiscoveryFeedURL is set, discovery polling becomes available.
func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()

	zl, err := zap.NewProduction()
	if err != nil {
		return nil, err
	}
	log := logging.NewZapLogger(zl)

	var m medium.Medium
	m, err = medium.OpenSQLite(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	if c.SealPassphrase != "" {
		m, err = medium.NewSealedMedium(ctx, m, c.SealPassphrase)
		if err != nil {
			return nil, err
		}
	}

	opts := []engine.Option{
		engine.WithLogger(log),
		engine.WithAlerter(notify.LogAlerter{Log: log}),
		engine.WithSessionConfig(c.SessionConfig()),
		engine.WithPollInterval(c.PollInterval),
		engine.WithWelcomeDelay(c.WelcomeDelay),
		engine.OnSessionWarning(func() {
			fmt.Println("Session expiring soon. Press Enter to stay signed in.")
		}),
		engine.OnSessionExpired(func() {
			fmt.Println("Session expired due to inactivity. Please log in again.")
		}),
	}
	if c.DiscoveryFeedURL != "" {
		opts = append(opts, engine.WithDiscoverer(discovery.NewHTTPDiscoverer(c.DiscoveryFeedURL)))
	}

	e := engine.New(store.New(m, store.WithLogger(log)), opts...)

	return &App{
		config: c,
		log:    log,
		medium: m,
		engine: e,
		reader: bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the background machinery and blocks in the REPL until the
// user exits.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.engine.RequestAlertPermission(ctx)
	if err := a.engine.StartDiscoveryPolling(ctx); err != nil {
		a.log.Error(ctx, "discovery polling not started", "error", err)
	}

	// resume a persisted session if one survived the last run
	if user, err := a.engine.CurrentUser(ctx); err == nil && user != nil {
		a.userName = user.Name
		a.engine.StartSessionMonitor(ctx)
		fmt.Printf("Welcome back, %s.\n", user.Name)
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

// Close stops the engine and releases the storage medium.
func (a *App) Close() {
	a.engine.Close()
	if err := a.medium.Close(); err != nil {
		a.log.Error(context.Background(), "error closing store", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.userName)
}
