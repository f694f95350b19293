package usecase

import (
	"time"

	"orderdesk/internal/auth"
	"orderdesk/internal/auth/repository"
	"orderdesk/pkg/log"
	"orderdesk/pkg/session"
)

type implUseCase struct {
	erpRepo   repository.ERPRepository
	cacheRepo repository.ProfileCacheRepository
	store     session.Store
	l         log.Logger
	now       func() time.Time
}

// New - Factory function
func New(
	erpRepo repository.ERPRepository,
	cacheRepo repository.ProfileCacheRepository,
	store session.Store,
	l log.Logger,
) auth.UseCase {
	return &implUseCase{
		erpRepo:   erpRepo,
		cacheRepo: cacheRepo,
		store:     store,
		l:         l,
		now:       time.Now,
	}
}
