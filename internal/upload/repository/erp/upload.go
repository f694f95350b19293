package erp

import (
	"context"

	"orderdesk/internal/upload"
	"orderdesk/internal/upload/repository"
	pkghttp "orderdesk/pkg/http"
	"orderdesk/pkg/log"
	"orderdesk/pkg/response"
)

const (
	pathUpload = "/api/upload"
	fieldFile  = "file"
)

type implERPRepository struct {
	client pkghttp.IClient
	l      log.Logger
}

// New - Factory
func New(client pkghttp.IClient, l log.Logger) repository.ERPRepository {
	return &implERPRepository{
		client: client,
		l:      l,
	}
}

type uploadData struct {
	FileID   response.ID `json:"fileId"`
	FileName string      `json:"fileName"`
	URL      string      `json:"url"`
	Size     int64       `json:"size"`
}

func (r *implERPRepository) Upload(ctx context.Context, input upload.UploadInput) (upload.UploadOutput, error) {
	desc, err := pkghttp.NewMultipartDescriptor(pathUpload, fieldFile, input.FileName, input.Content, input.Fields)
	if err != nil {
		return upload.UploadOutput{}, err
	}

	resp, err := r.client.Execute(ctx, desc)
	if err != nil {
		r.l.Errorf(ctx, "upload.repository.erp.Upload: %v", err)
		return upload.UploadOutput{}, err
	}

	var data uploadData
	if _, err := response.Unwrap(resp.Body, &data); err != nil {
		r.l.Warnf(ctx, "upload.repository.erp.Upload: %v", err)
		return upload.UploadOutput{}, err
	}
	return upload.UploadOutput{
		FileID:   data.FileID.String(),
		FileName: data.FileName,
		URL:      data.URL,
		Size:     data.Size,
	}, nil
}
