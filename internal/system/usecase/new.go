package usecase

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"orderdesk/internal/system"
	"orderdesk/internal/system/repository"
	"orderdesk/pkg/log"
)

type implUseCase struct {
	erpRepo repository.ERPRepository
	l       log.Logger
	now     func() time.Time
}

// New - Factory function
func New(erpRepo repository.ERPRepository, l log.Logger) system.UseCase {
	return &implUseCase{
		erpRepo: erpRepo,
		l:       l,
		now:     time.Now,
	}
}

func (uc *implUseCase) Status(ctx context.Context) (system.Snapshot, error) {
	var snap system.Snapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		h, err := uc.erpRepo.Health(gctx)
		snap.Health = h
		return err
	})
	g.Go(func() error {
		s, err := uc.erpRepo.ERPStatus(gctx)
		snap.ERP = s
		return err
	})
	g.Go(func() error {
		p, err := uc.erpRepo.Performance(gctx)
		snap.Performance = p
		return err
	})

	if err := g.Wait(); err != nil {
		uc.l.Warnf(ctx, "system.usecase.Status: %v", err)
		return system.Snapshot{}, err
	}
	snap.CheckedAt = uc.now()
	return snap, nil
}
