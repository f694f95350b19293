package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Config holds JWT manager configuration.
type Config struct {
	SecretKey string
	Issuer    string
	TTL       time.Duration
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

// managerImpl implements IManager.
type managerImpl struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
	now       func() time.Time
}

// Claims carries the mini-program identity of the token holder.
type Claims struct {
	OpenID  string `json:"openid"`
	UnionID string `json:"unionid,omitempty"`
	jwt.RegisteredClaims
}
