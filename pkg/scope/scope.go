package scope

import "context"

type payloadCtxKey struct{}

// Payload is the verified identity behind a request.
type Payload struct {
	UserID string
	OpenID string
}

// SetPayloadToContext stores the payload in ctx.
func SetPayloadToContext(ctx context.Context, p Payload) context.Context {
	return context.WithValue(ctx, payloadCtxKey{}, p)
}

// GetPayloadFromContext returns the payload set by the auth middleware.
func GetPayloadFromContext(ctx context.Context) (Payload, bool) {
	p, ok := ctx.Value(payloadCtxKey{}).(Payload)
	return p, ok && p.UserID != ""
}
