package usecase

import (
	"context"
	"errors"

	"orderdesk/internal/auth"
	"orderdesk/internal/auth/repository"
	"orderdesk/pkg/session"
)

// Profile serves the cached snapshot when fresh, otherwise fetches and caches it.
func (uc *implUseCase) Profile(ctx context.Context) (auth.Profile, error) {
	sess, err := session.Current(ctx, uc.store, uc.now())
	if err != nil {
		return auth.Profile{}, notLoggedIn(err)
	}

	cached, err := uc.cacheRepo.GetProfile(ctx, sess.UserID)
	if err == nil {
		uc.l.Debugf(ctx, "auth.usecase.Profile: cache hit for user %s", sess.UserID)
		return cached, nil
	}
	if !errors.Is(err, repository.ErrCacheMiss) {
		uc.l.Warnf(ctx, "auth.usecase.Profile: cacheRepo.GetProfile: %v", err)
	}

	profile, err := uc.erpRepo.GetProfile(ctx)
	if err != nil {
		return auth.Profile{}, err
	}

	if err := uc.cacheRepo.SaveProfile(ctx, sess.UserID, profile); err != nil {
		uc.l.Warnf(ctx, "auth.usecase.Profile: cacheRepo.SaveProfile: %v", err)
	}
	return profile, nil
}
