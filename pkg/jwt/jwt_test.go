package jwt

import (
	"errors"
	"testing"
	"time"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNew(t *testing.T) {
	if _, err := New(Config{SecretKey: "short"}); !errors.Is(err, ErrSecretTooShort) {
		t.Fatalf("expected ErrSecretTooShort, got %v", err)
	}
	if _, err := New(Config{SecretKey: testSecret}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestIssueVerify(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	m, _ := New(Config{SecretKey: testSecret, TTL: time.Hour, Now: func() time.Time { return now }})

	token, exp, err := m.Issue("u-1", "openid-1", "union-1")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if !exp.Equal(now.Add(time.Hour)) {
		t.Errorf("expiresAt = %v, want %v", exp, now.Add(time.Hour))
	}

	claims, err := m.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Subject != "u-1" || claims.OpenID != "openid-1" || claims.UnionID != "union-1" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.ID == "" {
		t.Error("expected a token id")
	}
}

func TestVerifyRejects(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	clock := now
	m, _ := New(Config{SecretKey: testSecret, TTL: time.Minute, Now: func() time.Time { return clock }})
	token, _, _ := m.Issue("u-1", "o", "")

	t.Run("expired", func(t *testing.T) {
		clock = now.Add(2 * time.Minute)
		defer func() { clock = now }()
		if _, err := m.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, _ := New(Config{SecretKey: testSecret + "x", Now: func() time.Time { return clock }})
		if _, err := other.Verify(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := m.Verify("not-a-token"); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("expected ErrInvalidToken, got %v", err)
		}
	})

	t.Run("empty subject", func(t *testing.T) {
		if _, _, err := m.Issue("", "o", ""); !errors.Is(err, ErrSubjectEmpty) {
			t.Fatalf("expected ErrSubjectEmpty, got %v", err)
		}
	})
}
