package upload

import (
	"errors"
	"fmt"

	"orderdesk/pkg/session"
)

// Domain errors
var (
	ErrEmptyFileName = errors.New("upload: file name is empty")
	ErrNoContent     = errors.New("upload: no content")
	ErrNotLoggedIn   = fmt.Errorf("upload: %w", session.ErrNotLoggedIn)
)
