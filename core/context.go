package core

import "context"

// Context keys for resolution options
type contextKey string

const suppressHeaderKey contextKey = "suppressHeader"

// WithSuppressHeader sets whether headers should be suppressed in the context.
// Exposed so embedding surfaces such as the MCP server can request quiet runs.
func WithSuppressHeader(ctx context.Context) context.Context {
	return context.WithValue(ctx, suppressHeaderKey, true)
}

// shouldSuppressHeader returns whether headers should be suppressed from context
func shouldSuppressHeader(ctx context.Context) bool {
	val := ctx.Value(suppressHeaderKey)
	if val == nil {
		return false // default: show headers
	}
	suppress, ok := val.(bool)
	return ok && suppress
}
