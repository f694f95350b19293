package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"orderdesk/pkg/log"
	"orderdesk/pkg/session"
)

func defaultHTTPClient() *http.Client {
	// per-attempt timeouts come from the request context
	return &http.Client{Transport: http.DefaultTransport}
}

func newRequestID() string {
	return uuid.NewString()
}

func timeNow() time.Time {
	return time.Now()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Execute performs desc: Building -> Attempting(n) -> {Success | Retrying | Failed}.
func (c *clientImpl) Execute(ctx context.Context, desc Descriptor) (*Response, error) {
	target, err := c.resolveURL(desc)
	if err != nil {
		return nil, err
	}

	requestID := c.newID()
	ctx = log.SetRequestID(ctx, requestID)
	method := desc.method()
	firstParty := c.isFirstParty(target)

	var lastErr *TransportError
	for attempt := 1; ; attempt++ {
		if attempt > 1 {
			retry := attempt - 1
			delay := c.config.RetryWait * time.Duration(retry)
			c.l.Warnf(ctx, "http.Execute: %s %s failed: %v; retry %d/%d in %s",
				method, target, lastErr.Err, retry, c.config.Retries, delay)
			if err := c.sleep(ctx, delay); err != nil {
				lastErr.Err = errors.Join(lastErr.Err, err)
				return nil, lastErr
			}
		}

		c.l.Debugf(ctx, "http.Execute: attempt %d %s %s", attempt, method, target)
		resp, err := c.attempt(ctx, desc, method, target, requestID, firstParty)
		if err != nil {
			var te *TransportError
			if !errors.As(err, &te) {
				return nil, err
			}
			te.Attempts = attempt
			lastErr = te
			if attempt > c.config.Retries || ctx.Err() != nil {
				c.l.Errorf(ctx, "http.Execute: %s %s giving up: %v", method, target, lastErr)
				return nil, lastErr
			}
			continue
		}
		resp.Attempts = attempt
		return c.classify(ctx, method, target, resp, firstParty)
	}
}

// ExecuteJSON performs desc and decodes the JSON body into out.
func (c *clientImpl) ExecuteJSON(ctx context.Context, desc Descriptor, out any) error {
	resp, err := c.Execute(ctx, desc)
	if err != nil {
		return err
	}
	if out == nil || len(resp.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("%w: %v", ErrDecodeResponse, err)
	}
	return nil
}

// attempt builds and sends one request. Network failures come back as *TransportError.
func (c *clientImpl) attempt(ctx context.Context, desc Descriptor, method, target, requestID string, firstParty bool) (*Response, error) {
	timeout := desc.Timeout
	if timeout <= 0 {
		timeout = c.config.Timeout
	}
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var body io.Reader
	if len(desc.Body) > 0 {
		body = bytes.NewReader(desc.Body)
	}
	req, err := http.NewRequestWithContext(attemptCtx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDescriptor, err)
	}

	if len(desc.Body) > 0 && desc.ContentType != "" {
		req.Header.Set(HeaderContentType, desc.ContentType)
	}
	if desc.Accept != "" {
		req.Header.Set(HeaderAccept, desc.Accept)
	}
	if c.config.UserAgent != "" {
		req.Header.Set(HeaderUserAgent, c.config.UserAgent)
	}
	req.Header.Set(HeaderRequestID, requestID)

	// read fresh each attempt so a concurrent logout or relogin is observed
	if firstParty {
		if err := c.injectAuth(ctx, req); err != nil {
			return nil, err
		}
	}
	for k, v := range desc.Header {
		req.Header.Set(k, v)
	}

	httpResp, err := c.doer.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(httpResp.Body, DefaultMaxBodySize+1))
	if err != nil {
		return nil, &TransportError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}
	if len(data) > DefaultMaxBodySize {
		return nil, fmt.Errorf("%w: %s %s exceeds %d bytes", ErrResponseTooLarge, method, target, DefaultMaxBodySize)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       data,
	}, nil
}

func (c *clientImpl) injectAuth(ctx context.Context, req *http.Request) error {
	if c.store == nil {
		return nil
	}
	s, err := c.store.Get(ctx)
	switch {
	case errors.Is(err, session.ErrNotFound):
		return nil
	case errors.Is(err, session.ErrCorrupt):
		// unreadable sessions are dropped so the next login can replace them
		c.l.Warnf(ctx, "http.injectAuth: discarding unreadable session: %v", err)
		if err := c.store.Clear(ctx); err != nil {
			c.l.Errorf(ctx, "http.injectAuth: failed to clear session: %v", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("%w: %v", ErrSessionUnavailable, err)
	case !s.IsValid(c.now()):
		c.l.Debugf(ctx, "http.injectAuth: session expired at %s, sending unauthenticated", s.ExpiresAt)
		return nil
	}
	req.Header.Set(HeaderAuthorization, BearerPrefix+s.Token)
	return nil
}

func (c *clientImpl) classify(ctx context.Context, method, target string, resp *Response, firstParty bool) (*Response, error) {
	switch {
	case resp.StatusCode == http.StatusUnauthorized && firstParty:
		c.l.Warnf(ctx, "http.classify: %s %s returned 401, clearing session", method, target)
		if c.store != nil {
			if err := c.store.Clear(ctx); err != nil {
				c.l.Errorf(ctx, "http.classify: failed to clear session: %v", err)
			}
		}
		c.navigator.GoToLogin(ctx)
		return nil, &AuthExpiredError{
			Message: messageFromBody(resp.Body, defaultAuthExpiredMessage),
			Body:    resp.Body,
		}
	case resp.StatusCode >= http.StatusBadRequest:
		c.l.Warnf(ctx, "http.classify: %s %s returned %d", method, target, resp.StatusCode)
		return nil, &HTTPError{
			Code:    resp.StatusCode,
			Message: messageFromBody(resp.Body, http.StatusText(resp.StatusCode)),
			Body:    resp.Body,
		}
	default:
		return resp, nil
	}
}

// messageFromBody extracts the server's "message" field, if the body is JSON and has one.
func messageFromBody(body []byte, fallback string) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Message == "" {
		return fallback
	}
	return payload.Message
}
