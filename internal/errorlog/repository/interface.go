package repository

import (
	"context"
	"time"
)

//go:generate mockery --name ERPRepository
type ERPRepository interface {
	ReportError(ctx context.Context, opts ReportOptions) error
}

// ReportOptions - body of /api/logs/error. OpenID is empty for anonymous reports.
type ReportOptions struct {
	Error     string
	Timestamp time.Time
	OpenID    string
}
