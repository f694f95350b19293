package http

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"sort"
)

// NewMultipartDescriptor creates a POST descriptor uploading content as fieldName with the
// given extra form fields. The body is buffered so every retry replays the same bytes.
func NewMultipartDescriptor(urlPath, fieldName, fileName string, content io.Reader, fields map[string]string) (Descriptor, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	// stable field order keeps bodies comparable across runs
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := w.WriteField(k, fields[k]); err != nil {
			return Descriptor{}, fmt.Errorf("%w: failed to write field %s: %v", ErrInvalidDescriptor, k, err)
		}
	}

	part, err := w.CreateFormFile(fieldName, fileName)
	if err != nil {
		return Descriptor{}, fmt.Errorf("%w: failed to create file part: %v", ErrInvalidDescriptor, err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return Descriptor{}, fmt.Errorf("%w: failed to copy file content: %v", ErrInvalidDescriptor, err)
	}
	if err := w.Close(); err != nil {
		return Descriptor{}, fmt.Errorf("%w: failed to close multipart writer: %v", ErrInvalidDescriptor, err)
	}

	return Descriptor{
		Method:      http.MethodPost,
		URLPath:     urlPath,
		Body:        buf.Bytes(),
		ContentType: w.FormDataContentType(),
		Accept:      ApplicationJSON,
	}, nil
}
