package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"
	"sync"
	"time"

	"github.com/iqranow/iqranow-cli/internal/client/api"
	"github.com/iqranow/iqranow-cli/internal/client/config"
	"github.com/iqranow/iqranow-cli/internal/client/models"
	"github.com/iqranow/iqranow-cli/internal/client/prefs"
	"github.com/iqranow/iqranow-cli/internal/client/repositories/state"
	"github.com/iqranow/iqranow-cli/internal/client/session"
	"github.com/iqranow/iqranow-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// Mode reflects the last known reachability of the backend.
type Mode string

const (
	ModeUnknown Mode = ""
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

// App wires the stores, the API client, and the REPL together.
type App struct {
	config  *config.Config
	api     api.Client
	session *session.Store
	prefs   *prefs.Store
	repo    state.Repository
	log     logging.Logger

	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer

	modeMu sync.RWMutex
	mode   Mode

	// goals mirrors the goal list of the most recent fetch so a freshly
	// created goal can be shown as current without a re-fetch.
	goals []models.Goal

	// pendingCmd is the protected command requested while signed out,
	// replayed after the next successful login.
	pendingCmd string
}

// NewApp opens the local state database and builds the application graph.
// The returned cleanup func closes the database and must be called on exit.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, func(), error) {
	db, repo, err := state.OpenDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing local database", "error", err)
		return nil, nil, err
	}

	sess := session.NewStore(repo, log)
	apiClient := api.NewHTTPClient(cfg.ServerBaseURL, sess, cfg.RequestTimeout)
	sess.BindClient(apiClient)

	prefStore := prefs.NewStore(ctx, repo, log, func(scale float64) {
		log.Debug(ctx, "font scale applied", "scale", scale)
	})

	app := &App{
		config:  cfg,
		api:     apiClient,
		session: sess,
		prefs:   prefStore,
		repo:    repo,
		log:     log,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
	cleanup := func() { _ = db.Close() }
	return app, cleanup, nil
}

// Run restores any persisted session, starts the reachability watcher, and
// enters the prompt loop. It returns when the user exits or ctx is canceled.
func (a *App) Run(ctx context.Context) {
	if err := a.session.InitializeFromStorage(ctx); err != nil {
		a.log.Warn(ctx, "failed to restore session", "error", err)
	}

	go a.startOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn()
}

func (a *App) setPendingCmd(cmd string) {
	a.pendingCmd = cmd
}

func (a *App) takePendingCmd() string {
	cmd := a.pendingCmd
	a.pendingCmd = ""
	return cmd
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()
	if changed {
		a.log.Info(ctx, "connectivity changed", "mode", string(mode))
	}
}

func (a *App) getMode() Mode {
	a.modeMu.RLock()
	defer a.modeMu.RUnlock()
	return a.mode
}

// getStatus renders the prompt suffix, e.g. "(Aisha online)".
func (a *App) getStatus() string {
	s := ""
	if u := a.session.User(); u != nil {
		s = u.FirstName() + " "
	} else if a.session.LoggedIn() {
		s = "… " // token restored, profile still loading
	}
	if m := a.getMode(); m != ModeUnknown {
		s += string(m)
	}
	if s == "" {
		return ""
	}
	return "(" + s + ")"
}

// startOnlineStatusWatcher probes /api/health on an interval and flips the
// prompt's connectivity indicator.
func (a *App) startOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			err := a.api.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ctx, ModeOffline)
			} else {
				a.setMode(ctx, ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
