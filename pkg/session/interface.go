package session

import (
	"context"
	"fmt"

	"orderdesk/pkg/encrypter"
	pkgRedis "orderdesk/pkg/redis"
)

// Store holds the single process-wide Session.
// Implementations are safe for concurrent use.
type Store interface {
	// Get returns the stored session or ErrNotFound. Expired sessions are returned as-is;
	// callers decide what expiry means for them.
	Get(ctx context.Context) (Session, error)
	Put(ctx context.Context, s Session) error
	Clear(ctx context.Context) error
}

// New builds the Store selected by cfg.Backend. redis may be nil unless the backend is redis.
func New(cfg Config, redis pkgRedis.IRedis) (Store, error) {
	switch cfg.Backend {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile:
		if cfg.FilePath == "" {
			return nil, fmt.Errorf("%w: file path is required", ErrInvalidConfig)
		}
		enc, err := encrypter.NewFromSecret(cfg.Secret, hkdfInfo)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		return NewFileStore(cfg.FilePath, enc), nil
	case BackendRedis:
		if redis == nil {
			return nil, fmt.Errorf("%w: redis client is required", ErrInvalidConfig)
		}
		return NewRedisStore(redis, cfg.KeyPrefix), nil
	default:
		return nil, fmt.Errorf("%w: unknown backend %q", ErrInvalidConfig, cfg.Backend)
	}
}
