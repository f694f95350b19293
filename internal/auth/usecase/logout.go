package usecase

import (
	"context"
	"errors"

	"orderdesk/internal/auth"
	"orderdesk/pkg/session"
)

func (uc *implUseCase) Logout(ctx context.Context) error {
	sess, err := uc.store.Get(ctx)
	if err != nil && !errors.Is(err, session.ErrNotFound) {
		uc.l.Warnf(ctx, "auth.usecase.Logout: store.Get: %v", err)
	}
	if sess.UserID != "" {
		if err := uc.cacheRepo.InvalidateProfile(ctx, sess.UserID); err != nil {
			uc.l.Warnf(ctx, "auth.usecase.Logout: cacheRepo.InvalidateProfile: %v", err)
		}
	}
	return uc.store.Clear(ctx)
}

func (uc *implUseCase) Status(ctx context.Context) (auth.StatusOutput, error) {
	sess, err := uc.store.Get(ctx)
	if errors.Is(err, session.ErrNotFound) {
		return auth.StatusOutput{}, nil
	}
	if err != nil {
		return auth.StatusOutput{}, err
	}

	expired := sess.IsExpired(uc.now())
	return auth.StatusOutput{
		LoggedIn:  sess.Token != "" && !expired,
		Expired:   expired,
		OpenID:    sess.OpenID,
		UserID:    sess.UserID,
		ExpiresAt: sess.ExpiresAt,
	}, nil
}
