package usecase

import (
	"errors"
	"fmt"

	"orderdesk/internal/auth"
	"orderdesk/pkg/session"
)

func notLoggedIn(err error) error {
	if err == session.ErrNotLoggedIn {
		return auth.ErrNotLoggedIn
	}
	if errors.Is(err, session.ErrNotLoggedIn) {
		return fmt.Errorf("%w: %v", auth.ErrNotLoggedIn, err)
	}
	return err
}
