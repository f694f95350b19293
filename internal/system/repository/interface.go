package repository

import (
	"context"

	"orderdesk/internal/system"
)

//go:generate mockery --name ERPRepository
type ERPRepository interface {
	Health(ctx context.Context) (system.Health, error)
	ERPStatus(ctx context.Context) (system.ERPStatus, error)
	Performance(ctx context.Context) (system.Performance, error)
}
