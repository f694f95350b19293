package http

import (
	"context"

	"orderdesk/pkg/log"
	"orderdesk/pkg/session"
)

// IClient is the single chokepoint for calls to the ERP API.
// Implementations are safe for concurrent use.
type IClient interface {
	// Execute performs desc with auth injection, classification and retries.
	// Failures are *TransportError, *AuthExpiredError, *HTTPError or ErrResponseTooLarge.
	Execute(ctx context.Context, desc Descriptor) (*Response, error)
	// ExecuteJSON is Execute followed by decoding the body into out (skipped when out is nil).
	ExecuteJSON(ctx context.Context, desc Descriptor, out any) error
}

// NewClient creates a new request core. store may be nil for clients that only talk to
// unauthenticated endpoints. Returns the interface.
func NewClient(cfg ClientConfig, store session.Store, opts ...Option) IClient {
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Retries < 0 {
		cfg.Retries = 0
	}
	if cfg.RetryWait < 0 {
		cfg.RetryWait = 0
	}

	c := &clientImpl{
		config:    cfg,
		doer:      defaultHTTPClient(),
		store:     store,
		navigator: NavigatorFunc(func(context.Context) {}),
		sleep:     sleepContext,
		newID:     newRequestID,
		now:       timeNow,
		l:         log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
