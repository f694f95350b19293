package system

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Status fetches health, ERP call stats and performance metrics concurrently.
	// Any failure fails the whole snapshot.
	Status(ctx context.Context) (Snapshot, error)
}
