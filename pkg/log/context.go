package log

import "context"

type requestIDCtxKey struct{}

// SetRequestID returns a copy of ctx carrying id; loggers attach it to every entry.
func SetRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDCtxKey{}, id)
}

// GetRequestID returns the request id stored by SetRequestID, if any.
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDCtxKey{}).(string)
	return id, ok && id != ""
}
