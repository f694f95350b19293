package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"orderdesk/internal/message"
	"orderdesk/pkg/session"
)

func (uc *implUseCase) MarkRead(ctx context.Context, messageID string) error {
	messageID = strings.TrimSpace(messageID)
	if messageID == "" {
		return message.ErrEmptyMessageID
	}
	userID, err := uc.userID(ctx)
	if err != nil {
		return err
	}
	return uc.erpRepo.MarkRead(ctx, userID, messageID)
}

// MarkAllRead is a single idempotent call; repeating it leaves server state unchanged.
func (uc *implUseCase) MarkAllRead(ctx context.Context) error {
	userID, err := uc.userID(ctx)
	if err != nil {
		return err
	}
	return uc.erpRepo.MarkAllRead(ctx, userID)
}

func (uc *implUseCase) ClearAll(ctx context.Context) error {
	userID, err := uc.userID(ctx)
	if err != nil {
		return err
	}
	if err := uc.erpRepo.ClearAll(ctx, userID); err != nil {
		return err
	}
	uc.l.Infof(ctx, "message.usecase.ClearAll: cleared messages of user %s", userID)
	return nil
}

func (uc *implUseCase) userID(ctx context.Context) (string, error) {
	sess, err := session.Current(ctx, uc.store, uc.now())
	if err == nil {
		return sess.UserID, nil
	}
	if errors.Is(err, session.ErrNotLoggedIn) {
		return "", message.ErrNotLoggedIn
	}
	return "", fmt.Errorf("message: %w", err)
}
