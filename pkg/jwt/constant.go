package jwt

import "time"

const (
	// MinSecretKeyLen is the minimum length for HS256 secret key.
	MinSecretKeyLen = 32

	defaultTTL    = 2 * time.Hour
	defaultIssuer = "orderdesk-mockerp"
)
