package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgJWT "orderdesk/pkg/jwt"
	"orderdesk/pkg/log"
	"orderdesk/pkg/scope"
)

type recorded struct {
	endpoint string
	status   int
}

type fakeRecorder struct{ calls []recorded }

func (f *fakeRecorder) RecordCall(endpoint string, status int, _ time.Duration) {
	f.calls = append(f.calls, recorded{endpoint, status})
}

func newTestEngine(t *testing.T) (*gin.Engine, pkgJWT.IManager, *fakeRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	jm, err := pkgJWT.New(pkgJWT.Config{SecretKey: "0123456789abcdef0123456789abcdef"})
	require.NoError(t, err)
	rec := &fakeRecorder{}
	mw := New(log.NewNopLogger(), jm, rec)

	r := gin.New()
	r.Use(mw.CallStats(), Recovery(log.NewNopLogger()))
	r.GET("/me/:id", mw.Auth(), func(c *gin.Context) {
		p, _ := scope.GetPayloadFromContext(c.Request.Context())
		c.String(http.StatusOK, p.UserID+"|"+p.OpenID)
	})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r, jm, rec
}

func TestAuth(t *testing.T) {
	r, jm, _ := newTestEngine(t)
	token, _, err := jm.Issue("u1", "o1", "")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{name: "valid", header: "Bearer " + token, status: http.StatusOK, body: "u1|o1"},
		{name: "missing", header: "", status: http.StatusUnauthorized},
		{name: "no bearer prefix", header: token, status: http.StatusUnauthorized},
		{name: "bad token", header: "Bearer nope", status: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me/1", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
			if tt.body != "" {
				assert.Equal(t, tt.body, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"success":false`)
			}
		})
	}
}

func TestRecoveryAndCallStats(t *testing.T) {
	r, _, rec := newTestEngine(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me/42", nil))

	require.Len(t, rec.calls, 2)
	assert.Equal(t, recorded{"/panic", http.StatusInternalServerError}, rec.calls[0])
	assert.Equal(t, recorded{"/me/:id", http.StatusUnauthorized}, rec.calls[1])
}
