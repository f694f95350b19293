package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiryFromMillis converts a millisecond epoch to a time. Zero or negative means unknown.
func ExpiryFromMillis(ms int64) (time.Time, bool) {
	if ms <= 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}

// ExpiryFromToken reads the exp claim of a JWT without verifying its signature.
// The client never holds the signing key; the server stays the authority on validity.
func ExpiryFromToken(token string) (time.Time, bool) {
	if token == "" {
		return time.Time{}, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// ResolveExpiry picks the expiry for a freshly issued token: the server-provided
// milliseconds first, then the token's exp claim, then now+DefaultTTL.
func ResolveExpiry(expiresAtMillis int64, token string, now time.Time) time.Time {
	if t, ok := ExpiryFromMillis(expiresAtMillis); ok {
		return t
	}
	if t, ok := ExpiryFromToken(token); ok {
		return t
	}
	return now.Add(DefaultTTL)
}
