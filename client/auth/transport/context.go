package transport

import "context"

type (
	contextRetriedKey string
)

// ContextRetriedKey tags a request that has already been replayed after a
// refresh. A 401 on such a request is terminal.
const ContextRetriedKey contextRetriedKey = "authRetried"

// WithRetried marks ctx so that a 401 on the request never starts a refresh.
func WithRetried(ctx context.Context) context.Context {
	return context.WithValue(ctx, ContextRetriedKey, true)
}

func isRetried(ctx context.Context) bool {
	if v := ctx.Value(ContextRetriedKey); v != nil {
		retried, _ := v.(bool)
		return retried
	}
	return false
}
