package usecase

import (
	"context"
	"strings"
	"time"

	"orderdesk/internal/errorlog"
	"orderdesk/internal/errorlog/repository"
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
func New(erpRepo repository.ERPRepository, store session.Store, l log.Logger) errorlog.UseCase {
	return &implUseCase{
		erpRepo: erpRepo,
		store:   store,
		l:       l,
		now:     time.Now,
	}
}

func (uc *implUseCase) Report(ctx context.Context, input errorlog.ReportInput) error {
	text := strings.TrimSpace(input.Error)
	if text == "" {
		return errorlog.ErrEmptyReport
	}
	ts := input.Timestamp
	if ts.IsZero() {
		ts = uc.now()
	}

	// reports are accepted without a session; attach the openid when we have one
	var openID string
	if uc.store != nil {
		if sess, err := uc.store.Get(ctx); err == nil {
			openID = sess.OpenID
		}
	}

	if err := uc.erpRepo.ReportError(ctx, repository.ReportOptions{
		Error:     text,
		Timestamp: ts,
		OpenID:    openID,
	}); err != nil {
		uc.l.Warnf(ctx, "errorlog.usecase.Report: dropped report: %v", err)
		return err
	}
	return nil
}
