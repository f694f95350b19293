package message

import (
	"errors"
	"fmt"

	"orderdesk/pkg/session"
)

// Domain errors
var (
	ErrEmptyMessageID = errors.New("message: message id is empty")
	ErrNotLoggedIn    = fmt.Errorf("message: %w", session.ErrNotLoggedIn)
)
