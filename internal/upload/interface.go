package upload

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Upload(ctx context.Context, input UploadInput) (UploadOutput, error)
}
