// Package ctxutil carries request-scoped values such as the trace id.
package ctxutil

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ctxKey string

const (
	// TraceIDKey is the field name used for trace ids in logs and gin contexts.
	TraceIDKey = "trace_id"
	// TraceIDHeader is read from and echoed to HTTP clients.
	TraceIDHeader = "X-Request-Id"

	traceIDCtxKey ctxKey = TraceIDKey
)

// GetTraceID gets trace id from context.Context.
func GetTraceID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if traceID, ok := ctx.Value(traceIDCtxKey).(string); ok {
		return traceID
	}
	return ""
}

// SetTraceID sets trace id to context.Context.
func SetTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDCtxKey, traceID)
}

// EnsureTraceID ensures that a trace ID exists in the context.
func EnsureTraceID(ctx context.Context) (context.Context, string) {
	if traceID := GetTraceID(ctx); traceID != "" {
		return ctx, traceID
	}
	traceID := uuid.NewString()
	return SetTraceID(ctx, traceID), traceID
}

// TraceMiddleware attaches a trace id to every request, honouring an
// incoming X-Request-Id header.
func TraceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if incoming := c.GetHeader(TraceIDHeader); incoming != "" {
			ctx = SetTraceID(ctx, incoming)
		}
		ctx, traceID := EnsureTraceID(ctx)

		c.Request = c.Request.WithContext(ctx)
		c.Set(TraceIDKey, traceID)
		c.Header(TraceIDHeader, traceID)
		c.Next()
	}
}
