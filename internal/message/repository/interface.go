package repository

import (
	"context"

	"orderdesk/internal/message"
)

//go:generate mockery --name ERPRepository
type ERPRepository interface {
	History(ctx context.Context, opts HistoryOptions) (HistoryResult, error)
	MarkRead(ctx context.Context, userID, messageID string) error
	MarkAllRead(ctx context.Context, userID string) error
	ClearAll(ctx context.Context, userID string) error
}

// HistoryOptions - query for /api/messages/history
type HistoryOptions struct {
	UserID   string
	Page     int
	PageSize int
	Type     string
}

// HistoryResult - raw page as returned by the server
type HistoryResult struct {
	Messages    []message.Message
	HasMore     *bool
	Total       int64
	UnreadCount *int
}
