package http

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptorWithHelpersDoNotAlias(t *testing.T) {
	base := NewGETDescriptor("/api/orders/search", url.Values{"page": {"1"}}).
		WithHeader("X-A", "1")

	derived := base.WithHeader("X-B", "2").WithQuery("page", "2").WithTimeout(time.Second)

	assert.Equal(t, map[string]string{"X-A": "1"}, base.Header)
	assert.Equal(t, "1", base.Query.Get("page"))
	assert.Zero(t, base.Timeout)

	assert.Equal(t, map[string]string{"X-A": "1", "X-B": "2"}, derived.Header)
	assert.Equal(t, "2", derived.Query.Get("page"))
	assert.Equal(t, time.Second, derived.Timeout)
}

func TestNewPOSTJSONDescriptor(t *testing.T) {
	desc, err := NewPOSTJSONDescriptor("/api/auth/bind-company", map[string]string{"inviteCode": "ABC"})
	require.NoError(t, err)
	assert.Equal(t, "POST", desc.method())
	assert.Equal(t, ApplicationJSON, desc.ContentType)
	assert.JSONEq(t, `{"inviteCode":"ABC"}`, string(desc.Body))

	_, err = NewPOSTJSONDescriptor("/x", make(chan int))
	assert.ErrorIs(t, err, ErrInvalidDescriptor)
}

func TestNewMultipartDescriptor(t *testing.T) {
	desc, err := NewMultipartDescriptor("/api/upload", "file", "photo.jpg",
		strings.NewReader("binary-bytes"), map[string]string{"orderNo": "SO-1"})
	require.NoError(t, err)

	mediaType, params, err := mime.ParseMediaType(desc.ContentType)
	require.NoError(t, err)
	assert.Equal(t, "multipart/form-data", mediaType)

	r := multipart.NewReader(bytes.NewReader(desc.Body), params["boundary"])
	form, err := r.ReadForm(1 << 20)
	require.NoError(t, err)
	assert.Equal(t, []string{"SO-1"}, form.Value["orderNo"])

	require.Len(t, form.File["file"], 1)
	fh := form.File["file"][0]
	assert.Equal(t, "photo.jpg", fh.Filename)
	f, err := fh.Open()
	require.NoError(t, err)
	defer f.Close()
	content, _ := io.ReadAll(f)
	assert.Equal(t, "binary-bytes", string(content))
}
