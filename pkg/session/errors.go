package session

import "errors"

var (
	// ErrNotFound means no session is stored. It is not a failure for unauthenticated calls.
	ErrNotFound = errors.New("session: not found")
	ErrExpired  = errors.New("session: expired")
	// ErrNotLoggedIn is wrapped by operations that need an authenticated user.
	ErrNotLoggedIn   = errors.New("session: not logged in")
	ErrCorrupt       = errors.New("session: stored data is corrupt")
	ErrInvalidConfig = errors.New("session: invalid config")
)
