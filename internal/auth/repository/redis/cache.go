package redis

import (
	"context"
	"errors"
	"fmt"

	"orderdesk/internal/auth"
	"orderdesk/internal/auth/repository"
	pkgRedis "orderdesk/pkg/redis"
)

func (r *implCacheRepository) GetProfile(ctx context.Context, userID string) (auth.Profile, error) {
	var p auth.Profile
	err := r.redis.GetJSON(ctx, keyPrefix+userID, &p)
	switch {
	case errors.Is(err, pkgRedis.ErrNil):
		return auth.Profile{}, repository.ErrCacheMiss
	case errors.Is(err, pkgRedis.ErrDecode):
		r.l.Warnf(ctx, "auth.repository.redis.GetProfile: dropping unreadable snapshot: %v", err)
		_ = r.redis.Delete(ctx, keyPrefix+userID)
		return auth.Profile{}, repository.ErrCacheMiss
	case err != nil:
		return auth.Profile{}, err
	}
	return p, nil
}

func (r *implCacheRepository) SaveProfile(ctx context.Context, userID string, p auth.Profile) error {
	if err := r.redis.SetJSON(ctx, keyPrefix+userID, p, r.ttl); err != nil {
		r.l.Errorf(ctx, "auth.repository.redis.SaveProfile: Failed to save to cache: %v", err)
		return fmt.Errorf("%w: %v", repository.ErrCacheSetFailed, err)
	}
	return nil
}

func (r *implCacheRepository) InvalidateProfile(ctx context.Context, userID string) error {
	return r.redis.Delete(ctx, keyPrefix+userID)
}
