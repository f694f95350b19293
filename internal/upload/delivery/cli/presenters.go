package cli

import (
	"io"
	"strconv"

	"orderdesk/internal/upload"
	"orderdesk/pkg/console"
)

type uploadReq struct {
	Path   string
	Fields map[string]string
}

func (r uploadReq) toInput(content io.Reader) upload.UploadInput {
	return upload.UploadInput{FileName: r.Path, Content: content, Fields: r.Fields}
}

func uploadFields(out upload.UploadOutput) []console.Field {
	return []console.Field{
		{Key: "File ID", Value: out.FileID},
		{Key: "URL", Value: out.URL},
		{Key: "Size", Value: strconv.FormatInt(out.Size, 10) + " B"},
	}
}
