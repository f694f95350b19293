package session

import "time"

// Session is the client-held proof of authentication.
type Session struct {
	Token string `json:"token"`
	// OpenID is the opaque identifying key issued by the login provider.
	OpenID    string    `json:"openid"`
	UnionID   string    `json:"unionid,omitempty"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// IsExpired reports whether the session has reached its expiry instant.
func (s Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// IsValid reports whether the session carries a token and has not expired.
func (s Session) IsValid(now time.Time) bool {
	return s.Token != "" && !s.IsExpired(now)
}

// Config selects and configures a Store backend.
type Config struct {
	Backend   string
	FilePath  string
	Secret    string
	KeyPrefix string
}
