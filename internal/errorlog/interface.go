package errorlog

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Report sends a client-side error to the server. Failures are logged and returned;
	// callers are expected to carry on regardless.
	Report(ctx context.Context, input ReportInput) error
}
