package models

import "time"

// RefreshToken is a stored session grant. Only a digest of the opaque token
// is persisted, so Token is whatever the caller looked it up with.
type RefreshToken struct {
	ID        int64
	UserID    string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the grant has lapsed at now.
func (t *RefreshToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
