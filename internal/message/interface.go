package message

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	History(ctx context.Context, input HistoryInput) (HistoryOutput, error)
	MarkRead(ctx context.Context, messageID string) error
	MarkAllRead(ctx context.Context) error
	ClearAll(ctx context.Context) error
}
