package session

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Current returns the stored session when it is usable for a call that needs a user.
// A missing, unreadable, expired or user-less session yields ErrNotLoggedIn; other store
// failures pass through.
func Current(ctx context.Context, store Store, now time.Time) (Session, error) {
	if store == nil {
		return Session{}, ErrNotLoggedIn
	}
	s, err := store.Get(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Session{}, ErrNotLoggedIn
		}
		if errors.Is(err, ErrCorrupt) {
			return Session{}, fmt.Errorf("%w: %v", ErrNotLoggedIn, err)
		}
		return Session{}, err
	}
	if !s.IsValid(now) {
		return Session{}, fmt.Errorf("%w: session expired at %s", ErrNotLoggedIn, s.ExpiresAt.Format(time.RFC3339))
	}
	if s.UserID == "" {
		return Session{}, fmt.Errorf("%w: session has no user id", ErrNotLoggedIn)
	}
	return s, nil
}
