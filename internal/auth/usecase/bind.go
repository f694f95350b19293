package usecase

import (
	"context"
	"strings"

	"orderdesk/internal/auth"
	"orderdesk/internal/auth/repository"
	"orderdesk/pkg/session"
)

func (uc *implUseCase) BindCompany(ctx context.Context, inviteCode string) (auth.BindOutput, error) {
	inviteCode = strings.TrimSpace(inviteCode)
	if inviteCode == "" {
		return auth.BindOutput{}, auth.ErrEmptyInviteCode
	}

	sess, err := session.Current(ctx, uc.store, uc.now())
	if err != nil {
		return auth.BindOutput{}, notLoggedIn(err)
	}

	out, err := uc.erpRepo.BindCompany(ctx, repository.BindCompanyOptions{
		InviteCode: inviteCode,
		UserID:     sess.UserID,
	})
	if err != nil {
		return auth.BindOutput{}, err
	}

	if err := uc.cacheRepo.InvalidateProfile(ctx, sess.UserID); err != nil {
		uc.l.Warnf(ctx, "auth.usecase.BindCompany: cacheRepo.InvalidateProfile: %v", err)
	}
	return out, nil
}
