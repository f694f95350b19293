package usecase

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"orderdesk/internal/upload"
	"orderdesk/internal/upload/repository"
	"orderdesk/pkg/log"
	"orderdesk/pkg/session"
)

type implUseCase struct {
	erpRepo repository.ERPRepository
	store   session.Store
	l       log.Logger
	now     func() time.Time
}

// New - Factory function
func New(erpRepo repository.ERPRepository, store session.Store, l log.Logger) upload.UseCase {
	return &implUseCase{
		erpRepo: erpRepo,
		store:   store,
		l:       l,
		now:     time.Now,
	}
}

func (uc *implUseCase) Upload(ctx context.Context, input upload.UploadInput) (upload.UploadOutput, error) {
	input.FileName = filepath.Base(strings.TrimSpace(input.FileName))
	if input.FileName == "" || input.FileName == "." || input.FileName == string(filepath.Separator) {
		return upload.UploadOutput{}, upload.ErrEmptyFileName
	}
	if input.Content == nil {
		return upload.UploadOutput{}, upload.ErrNoContent
	}

	if _, err := session.Current(ctx, uc.store, uc.now()); err != nil {
		if errors.Is(err, session.ErrNotLoggedIn) {
			return upload.UploadOutput{}, upload.ErrNotLoggedIn
		}
		return upload.UploadOutput{}, fmt.Errorf("upload: %w", err)
	}

	out, err := uc.erpRepo.Upload(ctx, input)
	if err != nil {
		return upload.UploadOutput{}, err
	}
	uc.l.Infof(ctx, "upload.usecase.Upload: uploaded %s as %s", input.FileName, out.FileID)
	return out, nil
}
