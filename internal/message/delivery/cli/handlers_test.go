package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/message"
	"orderdesk/pkg/i18n"
	"orderdesk/pkg/locale"
	"orderdesk/pkg/log"
)

type fakeUseCase struct {
	historyIn  message.HistoryInput
	historyOut message.HistoryOutput
	readID     string
	markedAll  int
	cleared    int
	err        error
}

func (f *fakeUseCase) History(_ context.Context, in message.HistoryInput) (message.HistoryOutput, error) {
	f.historyIn = in
	return f.historyOut, f.err
}

func (f *fakeUseCase) MarkRead(_ context.Context, id string) error {
	f.readID = id
	return f.err
}

func (f *fakeUseCase) MarkAllRead(context.Context) error {
	f.markedAll++
	return f.err
}

func (f *fakeUseCase) ClearAll(context.Context) error {
	f.cleared++
	return f.err
}

func run(t *testing.T, uc message.UseCase, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true

	root := &cobra.Command{Use: "orderdesk", SilenceErrors: true, SilenceUsage: true}
	root.AddCommand(New(log.NewNopLogger(), uc).Commands()...)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(locale.SetLocaleToContext(context.Background(), locale.EN))
	return out.String(), err
}

func TestList(t *testing.T) {
	uc := &fakeUseCase{historyOut: message.HistoryOutput{
		Page:        1,
		HasMore:     true,
		UnreadCount: 3,
		Messages: []message.Message{{
			MessageID:  "m1",
			TypeText:   "订单状态",
			Title:      "Order shipped",
			Data:       []message.Field{{Key: "order_no", Value: "SO-1"}},
			CreateTime: time.Date(2026, 1, 2, 3, 4, 0, 0, time.Local),
			Action:     &message.Action{Type: "order", OrderNo: "SO-1"},
		}},
	}}

	out, err := run(t, uc, "messages", "list", "-t", "shipping", "-p", "2")
	require.NoError(t, err)
	assert.Equal(t, message.HistoryInput{Page: 2, PageSize: message.DefaultPageSize, Type: "shipping"}, uc.historyIn)
	assert.Contains(t, out, "[订单状态] Order shipped")
	assert.Contains(t, out, "2026-01-02 03:04")
	assert.Contains(t, out, message.FieldLabel("order_no"))
	assert.Contains(t, out, message.DefaultFooter)
	assert.Contains(t, out, "orderdesk orders detail SO-1")
	assert.Contains(t, out, "unread 3")
	assert.Contains(t, out, "next: --page 2")
}

func TestListEmpty(t *testing.T) {
	out, err := run(t, &fakeUseCase{}, "msg", "list")
	require.NoError(t, err)
	assert.Contains(t, out, i18n.Localize(locale.EN, i18n.MsgNoMessages, nil))
}

func TestMarkCommands(t *testing.T) {
	uc := &fakeUseCase{}

	out, err := run(t, uc, "messages", "read", "m9")
	require.NoError(t, err)
	assert.Equal(t, "m9", uc.readID)
	assert.Contains(t, out, i18n.Localize(locale.EN, i18n.MsgMarkedRead, nil))

	for i := 0; i < 2; i++ {
		out, err = run(t, uc, "messages", "read-all")
		require.NoError(t, err)
		assert.Contains(t, out, i18n.Localize(locale.EN, i18n.MsgMarkedAll, nil))
	}
	assert.Equal(t, 2, uc.markedAll)

	out, err = run(t, uc, "messages", "clear")
	require.NoError(t, err)
	assert.Equal(t, 1, uc.cleared)
	assert.Contains(t, out, i18n.Localize(locale.EN, i18n.MsgCleared, nil))

	uc.err = message.ErrNotLoggedIn
	_, err = run(t, uc, "messages", "read-all")
	assert.ErrorIs(t, err, message.ErrNotLoggedIn)
}
