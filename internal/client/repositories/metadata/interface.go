// Package metadata is the client's local key/value store. It keeps the
// persisted session (identity plus refresh token) so a restarted CLI can
// resume without asking for credentials again.
package metadata

import (
	"context"
)

// Session keys.
const (
	KeyUserID       = "user_id"
	KeyEmail        = "email"
	KeyIsAnonymous  = "is_anonymous"
	KeyRefreshToken = "refresh_token"
)

// SavedSession is what survives a restart.
type SavedSession struct {
	UserID       string
	Email        string
	IsAnonymous  bool
	RefreshToken string
}

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error

	SaveSession(ctx context.Context, s SavedSession) error
	// LoadSession returns (nil, nil) when no session is stored.
	LoadSession(ctx context.Context) (*SavedSession, error)
}
