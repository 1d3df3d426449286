// Package services contains application services for the JobTracker client.
// This file defines the authentication service: sign-in, guest sign-in,
// registration, sign-out, session restore and identity change notifications.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/jobtracker/internal/client/client"
	"github.com/dmitrijs2005/jobtracker/internal/client/models"
	"github.com/dmitrijs2005/jobtracker/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/jobtracker/internal/dbx"
	"github.com/dmitrijs2005/jobtracker/internal/logging"
)

// AuthService defines the identity boundary for the CLI.
//
// Contract:
//   - CurrentIdentity: the signed-in identity, or nil.
//   - SignIn / SignInAnonymously / Register: authenticate and persist the session.
//   - SignOut: revoke the session on the server and forget it locally.
//   - Restore: resume a session persisted by an earlier run.
//   - Subscribe: observe Pending, SignedIn and SignedOut transitions.
//   - Ping: check server liveness.
//   - Close: release underlying client resources.
//
// Failed sign-ins are reported as client.ErrAuth wrapping the transport error.
type AuthService interface {
	CurrentIdentity() *models.Identity
	SignIn(ctx context.Context, email, password string) (*models.Identity, error)
	SignInAnonymously(ctx context.Context) (*models.Identity, error)
	Register(ctx context.Context, email, password string) (*models.Identity, error)
	SignOut(ctx context.Context) error
	Restore(ctx context.Context) (*models.Identity, error)
	Subscribe(fn func(models.IdentityEvent)) (unsubscribe func())
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// authService is the concrete AuthService backed by a remote Client
// and a local SQL database holding the saved session.
type authService struct {
	client  client.Client
	db      *sql.DB
	logger  logging.Logger
	timeout time.Duration

	mu          sync.Mutex
	current     *models.Identity
	subscribers map[int]func(models.IdentityEvent)
	nextSub     int
}

// NewAuthService constructs an AuthService bound to the given API client and DB.
// A positive timeout bounds every backend call.
func NewAuthService(c client.Client, db *sql.DB, l logging.Logger, timeout time.Duration) AuthService {
	a := &authService{
		client:      c,
		db:          db,
		logger:      l.With("module", "auth"),
		timeout:     timeout,
		subscribers: make(map[int]func(models.IdentityEvent)),
	}
	c.OnTokens(a.tokensRotated)
	return a
}

func (a *authService) getMetadataRepo(tx dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(tx)
}

func (a *authService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if a.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, a.timeout)
}

func (a *authService) CurrentIdentity() *models.Identity {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.current == nil {
		return nil
	}
	id := *a.current
	return &id
}

func (a *authService) Subscribe(fn func(models.IdentityEvent)) func() {
	a.mu.Lock()
	id := a.nextSub
	a.nextSub++
	a.subscribers[id] = fn
	a.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			a.mu.Lock()
			delete(a.subscribers, id)
			a.mu.Unlock()
		})
	}
}

// publish notifies subscribers outside the lock, in subscription order.
func (a *authService) publish(ev models.IdentityEvent) {
	a.mu.Lock()
	fns := make([]func(models.IdentityEvent), 0, len(a.subscribers))
	for i := 0; i < a.nextSub; i++ {
		if fn, ok := a.subscribers[i]; ok {
			fns = append(fns, fn)
		}
	}
	a.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

func (a *authService) setCurrent(id *models.Identity) {
	a.mu.Lock()
	a.current = id
	a.mu.Unlock()

	if id == nil {
		a.publish(models.IdentityEvent{State: models.SignedOut})
		return
	}
	cp := *id
	a.publish(models.IdentityEvent{State: models.SignedIn, Identity: &cp})
}

// settle republishes the unchanged state after a failed transition so
// observers leave Pending.
func (a *authService) settle() {
	a.setCurrent(a.CurrentIdentity())
}

func (a *authService) signIn(ctx context.Context, op func(ctx context.Context) (*models.Identity, error)) (*models.Identity, error) {
	a.publish(models.IdentityEvent{State: models.Pending})

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	id, err := op(ctx)
	if err != nil {
		a.settle()
		return nil, fmt.Errorf("%w: %w", client.ErrAuth, err)
	}

	a.saveSession(ctx, id)
	a.setCurrent(id)

	return a.CurrentIdentity(), nil
}

// SignIn authenticates with email and password.
func (a *authService) SignIn(ctx context.Context, email, password string) (*models.Identity, error) {
	return a.signIn(ctx, func(ctx context.Context) (*models.Identity, error) {
		return a.client.Login(ctx, email, password)
	})
}

// SignInAnonymously starts a guest session. Guest data is discarded on sign-out.
func (a *authService) SignInAnonymously(ctx context.Context) (*models.Identity, error) {
	return a.signIn(ctx, a.client.LoginAnonymously)
}

// Register creates an account and signs it in.
func (a *authService) Register(ctx context.Context, email, password string) (*models.Identity, error) {
	return a.signIn(ctx, func(ctx context.Context) (*models.Identity, error) {
		return a.client.Register(ctx, email, password)
	})
}

// SignOut always forgets the session locally. A server-side failure is
// returned after the local state has been cleared.
func (a *authService) SignOut(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	logoutErr := a.client.Logout(ctx)
	if logoutErr != nil {
		a.logger.Warn(ctx, "server logout failed", "error", logoutErr)
	}

	clearErr := a.clearSavedSession(ctx)
	a.setCurrent(nil)

	if logoutErr != nil {
		return fmt.Errorf("logout error: %w", logoutErr)
	}
	return clearErr
}

// Restore resumes the persisted session, if any. A session the server no
// longer accepts is forgotten and (nil, nil) is returned. Transport failures
// keep the saved session for the next attempt.
func (a *authService) Restore(ctx context.Context) (*models.Identity, error) {
	a.publish(models.IdentityEvent{State: models.Pending})

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	saved, err := a.getMetadataRepo(a.db).LoadSession(ctx)
	if err != nil {
		a.settle()
		return nil, fmt.Errorf("load session error: %w", err)
	}
	if saved == nil {
		a.settle()
		return nil, nil
	}

	if err := a.client.Resume(ctx, saved.RefreshToken); err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			a.logger.Info(ctx, "saved session rejected, signing out")
			if cerr := a.clearSavedSession(ctx); cerr != nil {
				a.logger.Warn(ctx, "clear saved session failed", "error", cerr)
			}
			a.settle()
			return nil, nil
		}
		a.settle()
		return nil, fmt.Errorf("%w: %w", client.ErrAuth, err)
	}

	id := &models.Identity{UserID: saved.UserID, Email: saved.Email, IsAnonymous: saved.IsAnonymous}
	a.saveSession(ctx, id)
	a.setCurrent(id)

	return a.CurrentIdentity(), nil
}

// saveSession persists the identity with the client's current refresh
// token. Failures only cost the ability to resume, so they are logged.
func (a *authService) saveSession(ctx context.Context, id *models.Identity) {
	err := dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return a.getMetadataRepo(tx).SaveSession(ctx, metadata.SavedSession{
			UserID:       id.UserID,
			Email:        id.Email,
			IsAnonymous:  id.IsAnonymous,
			RefreshToken: a.client.RefreshToken(),
		})
	})
	if err != nil {
		a.logger.Warn(ctx, "session not persisted", "error", err)
	}
}

// tokensRotated keeps the stored refresh token in step with transparent
// refreshes made by the transport.
func (a *authService) tokensRotated(refreshToken string) {
	if refreshToken == "" || a.CurrentIdentity() == nil {
		return
	}

	ctx, cancel := a.withTimeout(context.Background())
	defer cancel()

	if err := a.getMetadataRepo(a.db).Set(ctx, metadata.KeyRefreshToken, []byte(refreshToken)); err != nil {
		a.logger.Warn(ctx, "rotated token not persisted", "error", err)
	}
}

// Ping proxies a liveness check to the underlying client.
func (a *authService) Ping(ctx context.Context) error {
	ctx, cancel := a.withTimeout(ctx)
	defer cancel()
	return a.client.Ping(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}

// clearSavedSession wipes the locally persisted session.
func (a *authService) clearSavedSession(ctx context.Context) error {
	return a.getMetadataRepo(a.db).Clear(ctx)
}
