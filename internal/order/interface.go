package order

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Search(ctx context.Context, input SearchInput) (SearchOutput, error)
	Detail(ctx context.Context, orderNo string) (Detail, error)
	Materials(ctx context.Context, orderID string) ([]Material, error)
	MaterialProgress(ctx context.Context, materialID string) (MaterialProgress, error)
}
