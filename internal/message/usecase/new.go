package usecase

import (
	"time"

	"orderdesk/internal/message"
	"orderdesk/internal/message/repository"
	"orderdesk/pkg/log"
	"orderdesk/pkg/session"
)

type implUseCase struct {
	erpRepo repository.ERPRepository
	store   session.Store
	l       log.Logger
	now     func() time.Time
}

// New - Factory function
func New(erpRepo repository.ERPRepository, store session.Store, l log.Logger) message.UseCase {
	return &implUseCase{
		erpRepo: erpRepo,
		store:   store,
		l:       l,
		now:     time.Now,
	}
}
