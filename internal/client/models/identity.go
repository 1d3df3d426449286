// Package models holds client-side value types shared by the transport,
// services and CLI layers.
package models

import "time"

// Identity is the signed-in principal. Email is empty for guests.
type Identity struct {
	UserID      string
	Email       string
	IsAnonymous bool
}

// Label is a short human-readable name for prompts and banners.
func (i *Identity) Label() string {
	if i == nil {
		return ""
	}
	if i.IsAnonymous {
		return "guest"
	}
	return i.Email
}

// SessionState is the lifecycle stage of the current session.
type SessionState int

const (
	SignedOut SessionState = iota
	Pending
	SignedIn
)

func (s SessionState) String() string {
	switch s {
	case Pending:
		return "pending"
	case SignedIn:
		return "signed-in"
	default:
		return "signed-out"
	}
}

// IdentityEvent is published whenever the session state changes.
// Identity is nil unless State is SignedIn.
type IdentityEvent struct {
	State    SessionState
	Identity *Identity
}

// Export points at a server-side JSON snapshot of the user's applications.
type Export struct {
	URL       string
	Key       string
	Count     int
	ExpiresAt time.Time
}
