package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{ err error }

func (f failingStore) Get(context.Context) (Session, error) { return Session{}, f.err }
func (f failingStore) Put(context.Context, Session) error   { return f.err }
func (f failingStore) Clear(context.Context) error          { return f.err }

func TestCurrent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("nil store", func(t *testing.T) {
		_, err := Current(ctx, nil, now)
		assert.ErrorIs(t, err, ErrNotLoggedIn)
	})

	t.Run("empty store", func(t *testing.T) {
		_, err := Current(ctx, NewMemoryStore(), now)
		assert.ErrorIs(t, err, ErrNotLoggedIn)
	})

	t.Run("expired", func(t *testing.T) {
		st := NewMemoryStore()
		require.NoError(t, st.Put(ctx, Session{Token: "t", UserID: "u", ExpiresAt: now.Add(-time.Second)}))
		_, err := Current(ctx, st, now)
		assert.ErrorIs(t, err, ErrNotLoggedIn)
	})

	t.Run("no user id", func(t *testing.T) {
		st := NewMemoryStore()
		require.NoError(t, st.Put(ctx, Session{Token: "t", ExpiresAt: now.Add(time.Hour)}))
		_, err := Current(ctx, st, now)
		assert.ErrorIs(t, err, ErrNotLoggedIn)
	})

	t.Run("valid", func(t *testing.T) {
		st := NewMemoryStore()
		want := Session{Token: "t", UserID: "u", ExpiresAt: now.Add(time.Hour)}
		require.NoError(t, st.Put(ctx, want))
		got, err := Current(ctx, st, now)
		require.NoError(t, err)
		assert.Equal(t, want.UserID, got.UserID)
	})

	t.Run("unreadable session", func(t *testing.T) {
		_, err := Current(ctx, failingStore{err: ErrCorrupt}, now)
		assert.ErrorIs(t, err, ErrNotLoggedIn)
	})

	t.Run("store failure passes through", func(t *testing.T) {
		boom := errors.New("disk on fire")
		_, err := Current(ctx, failingStore{err: boom}, now)
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, ErrNotLoggedIn)
	})
}
