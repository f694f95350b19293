package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/pkg/encrypter"
	pkgRedis "orderdesk/pkg/redis"
)

func newTestStores(t *testing.T) map[string]Store {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	enc, err := encrypter.NewFromSecret("test-secret", hkdfInfo)
	require.NoError(t, err)

	return map[string]Store{
		BackendMemory: NewMemoryStore(),
		BackendFile:   NewFileStore(filepath.Join(t.TempDir(), "nested", "session"), enc),
		BackendRedis:  NewRedisStore(pkgRedis.NewFromClient(rdb), "test:"),
	}
}

func TestStores(t *testing.T) {
	ctx := context.Background()
	want := Session{
		Token:     "tok",
		OpenID:    "openid-1",
		UserID:    "user-1",
		ExpiresAt: time.Now().Add(time.Hour).Truncate(time.Millisecond),
	}

	for name, store := range newTestStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get(ctx)
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.Put(ctx, want))

			got, err := store.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, want.Token, got.Token)
			assert.Equal(t, want.OpenID, got.OpenID)
			assert.Equal(t, want.UserID, got.UserID)
			assert.True(t, want.ExpiresAt.Equal(got.ExpiresAt))

			require.NoError(t, store.Clear(ctx))
			_, err = store.Get(ctx)
			assert.ErrorIs(t, err, ErrNotFound)

			// clearing twice is fine
			assert.NoError(t, store.Clear(ctx))
		})
	}
}

func TestRedisStoreRejectsExpired(t *testing.T) {
	stores := newTestStores(t)
	err := stores[BackendRedis].Put(context.Background(), Session{
		Token:     "tok",
		ExpiresAt: time.Now().Add(-time.Minute),
	})
	assert.ErrorIs(t, err, ErrExpired)
}

func TestFileStoreCorrupt(t *testing.T) {
	enc, err := encrypter.NewFromSecret("test-secret", hkdfInfo)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "session")
	require.NoError(t, os.WriteFile(path, []byte("not-encrypted"), 0o600))

	_, err = NewFileStore(path, enc).Get(context.Background())
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "default is memory", cfg: Config{}},
		{name: "file", cfg: Config{Backend: BackendFile, FilePath: filepath.Join(t.TempDir(), "s"), Secret: "x"}},
		{name: "file without path", cfg: Config{Backend: BackendFile, Secret: "x"}, wantErr: true},
		{name: "file without secret", cfg: Config{Backend: BackendFile, FilePath: "/tmp/s"}, wantErr: true},
		{name: "redis without client", cfg: Config{Backend: BackendRedis}, wantErr: true},
		{name: "unknown", cfg: Config{Backend: "etcd"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := New(tt.cfg, nil)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, store)
		})
	}
}
