package cliapp

import (
	"context"
	"io"
	"sync"
	"sync/atomic"

	"orderdesk/pkg/console"
	"orderdesk/pkg/i18n"
)

// loginNavigator is the CLI's way of sending the user back to the login entry point: it
// prints the login hint once per run and remembers that a new login is needed.
type loginNavigator struct {
	w        io.Writer
	once     sync.Once
	required atomic.Bool
}

func newLoginNavigator(w io.Writer) *loginNavigator {
	return &loginNavigator{w: w}
}

func (n *loginNavigator) GoToLogin(ctx context.Context) {
	n.required.Store(true)
	n.once.Do(func() {
		console.Hint(n.w, i18n.FromContext(ctx, i18n.MsgLoginHint, nil))
	})
}

// LoginRequired reports whether the server rejected the session during this run.
func (n *loginNavigator) LoginRequired() bool {
	return n.required.Load()
}
