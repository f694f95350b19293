package redis

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRedis(t *testing.T) {
	ctx := context.Background()

	t.Run("validates config", func(t *testing.T) {
		_, err := NewRedis(ctx, RedisConfig{Port: 6379})
		assert.ErrorIs(t, err, ErrHostRequired)

		_, err = NewRedis(ctx, RedisConfig{Host: "localhost", Port: 70000})
		assert.ErrorIs(t, err, ErrInvalidPort)
	})

	t.Run("connects and round trips", func(t *testing.T) {
		mr := miniredis.RunT(t)
		port, err := strconv.Atoi(mr.Port())
		require.NoError(t, err)

		r, err := NewRedis(ctx, RedisConfig{Host: mr.Host(), Port: port})
		require.NoError(t, err)
		defer r.Close()

		require.NoError(t, r.Set(ctx, "k", "v", time.Minute))

		got, err := r.Get(ctx, "k")
		require.NoError(t, err)
		assert.Equal(t, "v", got)

		ok, err := r.Exists(ctx, "k")
		require.NoError(t, err)
		assert.True(t, ok)

		require.NoError(t, r.Delete(ctx, "k"))
		_, err = r.Get(ctx, "k")
		assert.ErrorIs(t, err, ErrNil)
	})

	t.Run("unreachable server", func(t *testing.T) {
		mr := miniredis.RunT(t)
		port, err := strconv.Atoi(mr.Port())
		require.NoError(t, err)
		mr.Close()

		_, err = NewRedis(ctx, RedisConfig{Host: mr.Host(), Port: port, ConnectTimeout: 200 * time.Millisecond})
		assert.Error(t, err)
	})
}

func TestJSON(t *testing.T) {
	type snapshot struct {
		Company string `json:"company"`
		Bound   bool   `json:"bound"`
	}

	mr := miniredis.RunT(t)
	r := NewFromClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
	ctx := context.Background()

	require.NoError(t, r.SetJSON(ctx, "p:1", snapshot{Company: "Acme", Bound: true}, time.Minute))
	assert.Equal(t, time.Minute, mr.TTL("p:1"))

	var got snapshot
	require.NoError(t, r.GetJSON(ctx, "p:1", &got))
	assert.Equal(t, snapshot{Company: "Acme", Bound: true}, got)

	assert.ErrorIs(t, r.GetJSON(ctx, "p:missing", &got), ErrNil)

	require.NoError(t, mr.Set("p:bad", "{not json"))
	assert.ErrorIs(t, r.GetJSON(ctx, "p:bad", &got), ErrDecode)
}
