package http

import "time"

const (
	// DefaultTimeout bounds a single attempt, not the whole retry sequence.
	DefaultTimeout = 10 * time.Second
	// DefaultRetries is the number of retries after the first attempt.
	DefaultRetries = 3
	// DefaultRetryWait is the base delay; retry k waits DefaultRetryWait*k.
	DefaultRetryWait = 1 * time.Second
	// DefaultMaxBodySize caps how much of a response body is read.
	DefaultMaxBodySize = 1 << 22
)

const (
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderAccept        = "Accept"
	HeaderUserAgent     = "User-Agent"
	HeaderRequestID     = "X-Request-ID"

	ApplicationJSON = "application/json"
	BearerPrefix    = "Bearer "
)

const (
	defaultAuthExpiredMessage = "login expired"
)

// DefaultConfig returns default ClientConfig.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		Timeout:   DefaultTimeout,
		Retries:   DefaultRetries,
		RetryWait: DefaultRetryWait,
	}
}
