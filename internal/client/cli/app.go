package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/jobtracker/internal/client/client"
	"github.com/dmitrijs2005/jobtracker/internal/client/config"
	"github.com/dmitrijs2005/jobtracker/internal/client/listview"
	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/client/services"
	"github.com/dmitrijs2005/jobtracker/internal/client/session"
	"github.com/dmitrijs2005/jobtracker/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	auth    services.AuthService
	apps    services.ApplicationService
	session *session.Context
	list    *listview.Model
	reader  *bufio.Reader
	out     io.Writer

	modeMu sync.Mutex
	mode   Mode

	unsubscribe func()
}

// NewApp wires the local database, the gRPC client, the services and the
// session context. The returned App owns all of them until Run returns.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stderr, "text", c.LogLevel).With("module", "cli")

	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	apiClient, err := client.NewJobTrackerClient(c.ServerEndpointAddr)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	auth := services.NewAuthService(apiClient, db, logger, c.RequestTimeout)
	sess := session.New(auth)
	apps := services.NewApplicationService(apiClient, sess, c.RequestTimeout)

	a := newApp(c, logger, auth, apps, sess, bufio.NewReader(os.Stdin), os.Stdout)
	a.db = db
	return a, nil
}

func newApp(c *config.Config, l logging.Logger, auth services.AuthService, apps services.ApplicationService,
	sess *session.Context, r *bufio.Reader, out io.Writer) *App {
	a := &App{
		config:  c,
		logger:  l,
		auth:    auth,
		apps:    apps,
		session: sess,
		list:    listview.New(apps),
		reader:  r,
		out:     out,
		mode:    ModeOnline,
	}
	a.unsubscribe = sess.Subscribe(func(ev models.IdentityEvent) {
		if ev.State == models.SignedOut {
			a.list.Reset()
		}
	})
	return a
}

func (a *App) Mode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		a.logger.Info(context.Background(), "connectivity changed", "mode", mode)
	}
}

// Run restores the saved session, starts the connectivity watcher and
// blocks in the REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	defer a.close(ctx)

	if err := a.session.Init(ctx); err != nil {
		a.logger.Warn(ctx, "session restore failed", "error", err)
		printlnFn("Could not restore your session: " + describe(err))
	}

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	if a.session.SignedIn() {
		a.runView(ctx, "list", nil)
	} else {
		printlnFn("Welcome to JobTracker. Type 'help' for commands.")
	}

	runREPL(ctx, a, a.reader)
}

func (a *App) close(ctx context.Context) {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	a.session.Close()
	if err := a.auth.Close(ctx); err != nil {
		a.logger.Warn(ctx, "client close failed", "error", err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn(ctx, "database close failed", "error", err)
		}
	}
}

// status is shown in the prompt.
func (a *App) status() string {
	switch {
	case a.session.Pending():
		return fmt.Sprintf("%s | ...", a.Mode())
	case a.session.SignedIn():
		return fmt.Sprintf("%s | %s", a.Mode(), a.session.Identity().Label())
	default:
		return fmt.Sprintf("%s | signed out", a.Mode())
	}
}

// StartOnlineStatusWatcher pings the server every interval and flips the
// prompt between online and offline until ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, interval)
			err := a.auth.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
