package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	pkgRedis "orderdesk/pkg/redis"
)

type redisStore struct {
	redis pkgRedis.IRedis
	key   string
}

// NewRedisStore returns a Store keeping the session under <prefix>session with a TTL
// matching the session's remaining lifetime.
func NewRedisStore(redis pkgRedis.IRedis, prefix string) Store {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &redisStore{redis: redis, key: prefix + sessionKey}
}

func (r *redisStore) Get(ctx context.Context) (Session, error) {
	var s Session
	err := r.redis.GetJSON(ctx, r.key, &s)
	switch {
	case errors.Is(err, pkgRedis.ErrNil):
		return Session{}, ErrNotFound
	case errors.Is(err, pkgRedis.ErrDecode):
		return Session{}, fmt.Errorf("%w: %v", ErrCorrupt, err)
	case err != nil:
		return Session{}, fmt.Errorf("failed to read session: %w", err)
	}
	return s, nil
}

func (r *redisStore) Put(ctx context.Context, s Session) error {
	ttl := time.Until(s.ExpiresAt)
	if ttl <= 0 {
		return ErrExpired
	}
	if err := r.redis.SetJSON(ctx, r.key, s, ttl); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (r *redisStore) Clear(ctx context.Context) error {
	if err := r.redis.Delete(ctx, r.key); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
