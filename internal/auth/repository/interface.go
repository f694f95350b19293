package repository

import (
	"context"

	"orderdesk/internal/auth"
)

//go:generate mockery --name ERPRepository
type ERPRepository interface {
	WxLogin(ctx context.Context, opts WxLoginOptions) (LoginResult, error)
	BindCompany(ctx context.Context, opts BindCompanyOptions) (auth.BindOutput, error)
	GetProfile(ctx context.Context) (auth.Profile, error)
}

// ProfileCacheRepository keeps the last profile snapshot per user.
//
//go:generate mockery --name ProfileCacheRepository
type ProfileCacheRepository interface {
	// GetProfile returns ErrCacheMiss when nothing fresh is stored.
	GetProfile(ctx context.Context, userID string) (auth.Profile, error)
	SaveProfile(ctx context.Context, userID string, p auth.Profile) error
	InvalidateProfile(ctx context.Context, userID string) error
}
