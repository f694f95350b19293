package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/errorlog"
	"orderdesk/internal/errorlog/repository"
	"orderdesk/pkg/log"
	"orderdesk/pkg/session"
)

type fakeERP struct {
	got []repository.ReportOptions
	err error
}

func (f *fakeERP) ReportError(_ context.Context, opts repository.ReportOptions) error {
	f.got = append(f.got, opts)
	return f.err
}

func TestReport(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

	newUC := func(erp *fakeERP, sess *session.Session) *implUseCase {
		store := session.NewMemoryStore()
		if sess != nil {
			require.NoError(t, store.Put(ctx, *sess))
		}
		uc := New(erp, store, log.NewNopLogger()).(*implUseCase)
		uc.now = func() time.Time { return now }
		return uc
	}

	t.Run("empty report", func(t *testing.T) {
		erp := &fakeERP{}
		assert.ErrorIs(t, newUC(erp, nil).Report(ctx, errorlog.ReportInput{Error: "  "}), errorlog.ErrEmptyReport)
		assert.Empty(t, erp.got)
	})

	t.Run("anonymous report is stamped now", func(t *testing.T) {
		erp := &fakeERP{}
		require.NoError(t, newUC(erp, nil).Report(ctx, errorlog.ReportInput{Error: "boom"}))
		assert.Equal(t, []repository.ReportOptions{{Error: "boom", Timestamp: now}}, erp.got)
	})

	t.Run("attaches openid even when expired", func(t *testing.T) {
		erp := &fakeERP{}
		sess := &session.Session{Token: "t", OpenID: "o1", ExpiresAt: now.Add(-time.Hour)}
		at := now.Add(-time.Minute)
		require.NoError(t, newUC(erp, sess).Report(ctx, errorlog.ReportInput{Error: "boom", Timestamp: at}))
		assert.Equal(t, "o1", erp.got[0].OpenID)
		assert.Equal(t, at, erp.got[0].Timestamp)
	})

	t.Run("failure is returned", func(t *testing.T) {
		boom := errors.New("offline")
		err := newUC(&fakeERP{err: boom}, nil).Report(ctx, errorlog.ReportInput{Error: "x"})
		assert.ErrorIs(t, err, boom)
	})
}
