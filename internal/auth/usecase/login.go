package usecase

import (
	"context"
	"errors"
	"strings"

	"orderdesk/internal/auth"
	"orderdesk/internal/auth/repository"
	"orderdesk/pkg/response"
	"orderdesk/pkg/session"
)

// Login exchanges a one-time code for a session, stores it, then checks the company binding.
// A failed binding check does not undo the login.
func (uc *implUseCase) Login(ctx context.Context, input auth.LoginInput) (auth.LoginOutput, error) {
	code := strings.TrimSpace(input.Code)
	if code == "" {
		return auth.LoginOutput{}, auth.ErrEmptyCode
	}

	res, err := uc.erpRepo.WxLogin(ctx, repository.WxLoginOptions{
		Code:     code,
		NickName: input.NickName,
		Avatar:   input.AvatarURL,
	})
	if err != nil {
		return auth.LoginOutput{}, err
	}
	if res.Token == "" {
		return auth.LoginOutput{}, auth.ErrMissingToken
	}

	sess := session.Session{
		Token:     res.Token,
		OpenID:    res.OpenID,
		UnionID:   res.UnionID,
		UserID:    res.UserID,
		ExpiresAt: session.ResolveExpiry(res.ExpiresAtMillis, res.Token, uc.now()),
	}
	if err := uc.store.Put(ctx, sess); err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Login: store.Put: %v", err)
		return auth.LoginOutput{}, err
	}
	if err := uc.cacheRepo.InvalidateProfile(ctx, sess.UserID); err != nil {
		uc.l.Warnf(ctx, "auth.usecase.Login: cacheRepo.InvalidateProfile: %v", err)
	}
	uc.l.Infof(ctx, "auth.usecase.Login: logged in user=%s expires=%s", sess.UserID, sess.ExpiresAt)

	out := auth.LoginOutput{Session: sess}
	profile, err := uc.Profile(ctx)
	switch {
	case err == nil:
		out.Profile = profile
		out.NeedsBinding = !profile.IsBound()
	case errors.Is(err, response.ErrNeedInviteBind):
		out.NeedsBinding = true
	default:
		uc.l.Warnf(ctx, "auth.usecase.Login: profile check failed: %v", err)
	}
	return out, nil
}
