package correlationid

import "context"

type ctxKey struct{}

// Header is the HTTP header carrying the correlation id.
const Header = "X-Correlation-ID"

// NewContext returns a copy of ctx carrying the given correlation id.
func NewContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext extracts the correlation id from ctx, if any.
func FromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok
}
