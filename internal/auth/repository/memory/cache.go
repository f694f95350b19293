package memory

import (
	"context"
	"sync"
	"time"

	"orderdesk/internal/auth"
	"orderdesk/internal/auth/repository"
)

type entry struct {
	profile   auth.Profile
	expiresAt time.Time
}

type implCacheRepository struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

// New - Factory. A non-positive ttl disables caching.
func New(ttl time.Duration) repository.ProfileCacheRepository {
	return &implCacheRepository{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]entry),
	}
}

func (r *implCacheRepository) GetProfile(_ context.Context, userID string) (auth.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[userID]
	if !ok {
		return auth.Profile{}, repository.ErrCacheMiss
	}
	if !r.now().Before(e.expiresAt) {
		delete(r.entries, userID)
		return auth.Profile{}, repository.ErrCacheMiss
	}
	return e.profile, nil
}

func (r *implCacheRepository) SaveProfile(_ context.Context, userID string, p auth.Profile) error {
	if r.ttl <= 0 {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[userID] = entry{profile: p, expiresAt: r.now().Add(r.ttl)}
	return nil
}

func (r *implCacheRepository) InvalidateProfile(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, userID)
	return nil
}
