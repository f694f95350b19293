package redis

import (
	"time"

	"orderdesk/internal/auth/repository"
	"orderdesk/pkg/log"
	pkgRedis "orderdesk/pkg/redis"
)

const keyPrefix = "orderdesk:profile:"

type implCacheRepository struct {
	redis pkgRedis.IRedis
	ttl   time.Duration
	l     log.Logger
}

// New - Factory
func New(redis pkgRedis.IRedis, ttl time.Duration, l log.Logger) repository.ProfileCacheRepository {
	return &implCacheRepository{
		redis: redis,
		ttl:   ttl,
		l:     l,
	}
}
