package httpserver

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/mockerp"
	pkgJWT "orderdesk/pkg/jwt"
	"orderdesk/pkg/log"
)

func testConfig(t *testing.T, port int) Config {
	t.Helper()
	jm, err := pkgJWT.New(pkgJWT.Config{SecretKey: "0123456789abcdef0123456789abcdef"})
	require.NoError(t, err)
	return Config{
		Host:       "127.0.0.1",
		Port:       port,
		Mode:       gin.TestMode,
		Store:      mockerp.NewStore(),
		JWTManager: jm,
	}
}

func TestNewValidates(t *testing.T) {
	cfg := testConfig(t, 8088)

	_, err := New(nil, cfg)
	assert.Error(t, err)

	noPort := cfg
	noPort.Port = 0
	_, err = New(log.NewNopLogger(), noPort)
	assert.Error(t, err)

	noStore := cfg
	noStore.Store = nil
	_, err = New(log.NewNopLogger(), noStore)
	assert.Error(t, err)

	noJWT := cfg
	noJWT.JWTManager = nil
	_, err = New(log.NewNopLogger(), noJWT)
	assert.Error(t, err)
}

func TestRoutes(t *testing.T) {
	srv, err := New(log.NewNopLogger(), testConfig(t, 8088))
	require.NoError(t, err)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/ready", http.StatusOK},
		{http.MethodGet, "/live", http.StatusOK},
		{http.MethodGet, "/api/health/check", http.StatusOK},
		{http.MethodGet, "/api/orders/search", http.StatusUnauthorized},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	srv, err := New(log.NewNopLogger(), testConfig(t, port))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	require.Eventually(t, func() bool {
		resp, err := http.Get(srv.baseURL() + "/live")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
