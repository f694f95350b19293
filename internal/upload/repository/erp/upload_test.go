package erp

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"orderdesk/internal/upload"
	pkghttp "orderdesk/pkg/http"
	"orderdesk/pkg/log"
	"orderdesk/pkg/session"
)

func TestUpload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/upload", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "order", r.FormValue("scene"))

		f, hdr, err := r.FormFile("file")
		require.NoError(t, err)
		defer f.Close()
		b, _ := io.ReadAll(f)
		assert.Equal(t, "a.txt", hdr.Filename)
		assert.Equal(t, "hello", string(b))

		_, _ = w.Write([]byte(`{"success":true,"data":{"fileId":3,"fileName":"a.txt","url":"https://cdn/a.txt","size":5}}`))
	}))
	defer srv.Close()

	store := session.NewMemoryStore()
	require.NoError(t, store.Put(context.Background(), session.Session{Token: "tok", UserID: "u1", ExpiresAt: time.Now().Add(time.Hour)}))
	repo := New(pkghttp.NewClient(pkghttp.ClientConfig{BaseURL: srv.URL}, store), log.NewNopLogger())

	out, err := repo.Upload(context.Background(), upload.UploadInput{
		FileName: "a.txt",
		Content:  strings.NewReader("hello"),
		Fields:   map[string]string{"scene": "order"},
	})
	require.NoError(t, err)
	assert.Equal(t, upload.UploadOutput{FileID: "3", FileName: "a.txt", URL: "https://cdn/a.txt", Size: 5}, out)
}
