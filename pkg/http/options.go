package http

import (
	"time"

	"orderdesk/pkg/log"
)

// Option customises a client built by NewClient.
type Option func(*clientImpl)

// WithDoer replaces the transport.
func WithDoer(d Doer) Option {
	return func(c *clientImpl) {
		if d != nil {
			c.doer = d
		}
	}
}

// WithNavigator sets the collaborator invoked on 401.
func WithNavigator(n Navigator) Option {
	return func(c *clientImpl) {
		if n != nil {
			c.navigator = n
		}
	}
}

// WithSleeper replaces the backoff wait.
func WithSleeper(s Sleeper) Option {
	return func(c *clientImpl) {
		if s != nil {
			c.sleep = s
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l log.Logger) Option {
	return func(c *clientImpl) {
		if l != nil {
			c.l = l
		}
	}
}

// WithRequestIDGenerator replaces the X-Request-ID generator.
func WithRequestIDGenerator(fn func() string) Option {
	return func(c *clientImpl) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// WithClock replaces the clock used for session expiry checks.
func WithClock(fn func() time.Time) Option {
	return func(c *clientImpl) {
		if fn != nil {
			c.now = fn
		}
	}
}
