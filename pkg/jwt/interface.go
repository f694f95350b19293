package jwt

import "time"

// IManager issues and verifies HS256 session tokens.
// Implementations are safe for concurrent use.
type IManager interface {
	Issue(subject, openID, unionID string) (token string, expiresAt time.Time, err error)
	Verify(token string) (*Claims, error)
}

// New creates a new JWT manager. Returns the interface.
func New(cfg Config) (IManager, error) {
	if len(cfg.SecretKey) < MinSecretKeyLen {
		return nil, ErrSecretTooShort
	}
	m := &managerImpl{
		secretKey: []byte(cfg.SecretKey),
		issuer:    cfg.Issuer,
		ttl:       cfg.TTL,
		now:       time.Now,
	}
	if m.issuer == "" {
		m.issuer = defaultIssuer
	}
	if m.ttl <= 0 {
		m.ttl = defaultTTL
	}
	if cfg.Now != nil {
		m.now = cfg.Now
	}
	return m, nil
}
