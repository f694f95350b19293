package redis

import (
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// RedisConfig holds Redis configuration.
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	// ConnectTimeout bounds the initial ping. Zero means DefaultConnectTimeout.
	ConnectTimeout time.Duration
}

type redisImpl struct {
	client *goredis.Client
}
