package usecase

import (
	"time"

	"orderdesk/internal/order"
	"orderdesk/internal/order/repository"
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
func New(erpRepo repository.ERPRepository, store session.Store, l log.Logger) order.UseCase {
	return &implUseCase{
		erpRepo: erpRepo,
		store:   store,
		l:       l,
		now:     time.Now,
	}
}
