package http

import (
	"context"
	"net/http"
	"time"

	"orderdesk/pkg/log"
	"orderdesk/pkg/session"
)

// ClientConfig holds configuration for the request core.
type ClientConfig struct {
	// BaseURL is joined with relative descriptor paths. Absolute targets ignore it.
	BaseURL   string
	Timeout   time.Duration
	Retries   int
	RetryWait time.Duration
	UserAgent string
}

// Response is the outcome of one successful attempt.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	// Attempts is how many attempts the call took, counting the first.
	Attempts int
}

// Doer abstracts HTTP request execution. *http.Client satisfies it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Navigator is told to show the login entry point when the server rejects the session.
type Navigator interface {
	GoToLogin(ctx context.Context)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context)

// GoToLogin implements Navigator.
func (f NavigatorFunc) GoToLogin(ctx context.Context) { f(ctx) }

// Sleeper waits for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// clientImpl implements IClient.
type clientImpl struct {
	config    ClientConfig
	doer      Doer
	store     session.Store
	navigator Navigator
	sleep     Sleeper
	newID     func() string
	now       func() time.Time
	l         log.Logger
}
