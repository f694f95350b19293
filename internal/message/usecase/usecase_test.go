package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/message"
	"orderdesk/internal/message/repository"
	"orderdesk/pkg/log"
	"orderdesk/pkg/session"
)

type fakeERP struct {
	historyOpts []repository.HistoryOptions
	result      repository.HistoryResult
	calls       []string
}

func (f *fakeERP) History(_ context.Context, opts repository.HistoryOptions) (repository.HistoryResult, error) {
	f.calls = append(f.calls, "history")
	f.historyOpts = append(f.historyOpts, opts)
	return f.result, nil
}

func (f *fakeERP) MarkRead(_ context.Context, userID, messageID string) error {
	f.calls = append(f.calls, "read:"+userID+":"+messageID)
	return nil
}

func (f *fakeERP) MarkAllRead(_ context.Context, userID string) error {
	f.calls = append(f.calls, "read-all:"+userID)
	return nil
}

func (f *fakeERP) ClearAll(_ context.Context, userID string) error {
	f.calls = append(f.calls, "clear:"+userID)
	return nil
}

var testNow = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

func newTestUseCase(t *testing.T, erp *fakeERP, sess *session.Session) *implUseCase {
	t.Helper()
	store := session.NewMemoryStore()
	if sess != nil {
		require.NoError(t, store.Put(context.Background(), *sess))
	}
	uc := New(erp, store, log.NewNopLogger()).(*implUseCase)
	uc.now = func() time.Time { return testNow }
	return uc
}

func validSession() *session.Session {
	return &session.Session{Token: "t", UserID: "u1", ExpiresAt: testNow.Add(time.Hour)}
}

func TestRequiresUser(t *testing.T) {
	ctx := context.Background()
	sessions := map[string]*session.Session{
		"none":       nil,
		"no user id": {Token: "t", ExpiresAt: testNow.Add(time.Hour)},
		"expired":    {Token: "t", UserID: "u1", ExpiresAt: testNow.Add(-time.Minute)},
	}
	for name, sess := range sessions {
		t.Run(name, func(t *testing.T) {
			erp := &fakeERP{}
			uc := newTestUseCase(t, erp, sess)

			_, err := uc.History(ctx, message.HistoryInput{})
			assert.ErrorIs(t, err, message.ErrNotLoggedIn)
			assert.ErrorIs(t, uc.MarkRead(ctx, "m1"), message.ErrNotLoggedIn)
			assert.ErrorIs(t, uc.MarkAllRead(ctx), message.ErrNotLoggedIn)
			assert.ErrorIs(t, uc.ClearAll(ctx), session.ErrNotLoggedIn)
			assert.Empty(t, erp.calls, "no request leaves without a user")
		})
	}
}

func TestHistory(t *testing.T) {
	ctx := context.Background()
	hasMore := true
	erp := &fakeERP{result: repository.HistoryResult{
		Messages: []message.Message{
			{MessageID: "1", Type: "shipping", Data: []message.Field{{Key: "order_no", Value: "SO-1"}, {Key: "zone", Value: "A"}}},
			{MessageID: "2", Type: "weird", IsRead: true, Footer: "查看"},
			{MessageID: "3", Type: "system"},
		},
		HasMore: &hasMore,
	}}
	uc := newTestUseCase(t, erp, validSession())

	out, err := uc.History(ctx, message.HistoryInput{Type: "all"})
	require.NoError(t, err)
	assert.Equal(t, []repository.HistoryOptions{{UserID: "u1", Page: 1, PageSize: message.DefaultPageSize}}, erp.historyOpts)
	assert.True(t, out.HasMore)
	assert.Equal(t, 2, out.UnreadCount)
	require.Len(t, out.Messages, 3)
	assert.Equal(t, "发货通知", out.Messages[0].TypeText)
	assert.Equal(t, "订单号", out.Messages[0].Data[0].Key)
	assert.Equal(t, "zone", out.Messages[0].Data[1].Key)
	assert.Equal(t, message.DefaultFooter, out.Messages[0].Footer)
	assert.Equal(t, "未知类型", out.Messages[1].TypeText)
	assert.Equal(t, "查看", out.Messages[1].Footer)
}

func TestHistoryServerUnreadCountWins(t *testing.T) {
	unread := 7
	erp := &fakeERP{result: repository.HistoryResult{UnreadCount: &unread}}
	uc := newTestUseCase(t, erp, validSession())
	out, err := uc.History(context.Background(), message.HistoryInput{Type: "shipping", Page: 3, PageSize: 5})
	require.NoError(t, err)
	assert.Equal(t, 7, out.UnreadCount)
	assert.False(t, out.HasMore)
	assert.Equal(t, "shipping", erp.historyOpts[0].Type)
	assert.Equal(t, 3, erp.historyOpts[0].Page)
}

func TestMarkAndClear(t *testing.T) {
	ctx := context.Background()
	erp := &fakeERP{}
	uc := newTestUseCase(t, erp, validSession())

	assert.ErrorIs(t, uc.MarkRead(ctx, " "), message.ErrEmptyMessageID)
	require.NoError(t, uc.MarkRead(ctx, " m1 "))
	require.NoError(t, uc.MarkAllRead(ctx))
	require.NoError(t, uc.MarkAllRead(ctx))
	require.NoError(t, uc.ClearAll(ctx))
	assert.Equal(t, []string{"read:u1:m1", "read-all:u1", "read-all:u1", "clear:u1"}, erp.calls)
}
