package repository

import (
	"context"

	"orderdesk/internal/order"
)

//go:generate mockery --name ERPRepository
type ERPRepository interface {
	SearchOrders(ctx context.Context, opts SearchOptions) (SearchResult, error)
	GetDetail(ctx context.Context, orderNo string) (order.Detail, error)
	GetMaterials(ctx context.Context, orderID string) ([]order.Material, error)
	GetMaterialProgress(ctx context.Context, materialID string) (order.MaterialProgress, error)
}
