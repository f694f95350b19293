package repository

import (
	"context"

	"orderdesk/internal/upload"
)

//go:generate mockery --name ERPRepository
type ERPRepository interface {
	Upload(ctx context.Context, input upload.UploadInput) (upload.UploadOutput, error)
}
