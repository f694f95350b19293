package session

import "time"

const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"

	// DefaultTTL applies when neither the login response nor the token carries an expiry.
	DefaultTTL = 7 * 24 * time.Hour

	DefaultKeyPrefix = "orderdesk:"
	sessionKey       = "session"
	hkdfInfo         = "session-file"
)
