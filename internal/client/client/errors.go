package client

import "errors"

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnauthenticated is returned before any network call when no
	// identity is signed in.
	ErrUnauthenticated = errors.New("not signed in")

	// ErrAuth wraps sign-in, registration and guest sign-in failures.
	ErrAuth = errors.New("authentication failed")

	// ErrStore wraps record store failures other than NotFound and validation.
	ErrStore = errors.New("store error")

	ErrInvalidArgument = errors.New("invalid argument")
	ErrRateLimited     = errors.New("too many requests")
)
