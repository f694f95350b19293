package auth

import (
	"errors"
	"fmt"

	"orderdesk/pkg/session"
)

// Domain errors
var (
	ErrEmptyCode       = errors.New("auth: login code is empty")
	ErrEmptyInviteCode = errors.New("auth: invite code is empty")
	// ErrMissingToken - login answered success without a token
	ErrMissingToken = errors.New("auth: login response has no token")
	ErrNotLoggedIn  = fmt.Errorf("auth: %w", session.ErrNotLoggedIn)
)
