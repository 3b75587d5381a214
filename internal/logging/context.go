package logging

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

type traceIDKey struct{}

// FromContext returns the logger stored on ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// ContextWithTraceID stores a trace ID on ctx.
func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey{}, traceID)
}

// TraceIDFromContext returns the trace ID stored on ctx, if any.
func TraceIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(traceIDKey{}).(string)
	return id
}

// GetOrGenerateTraceID returns the trace ID on ctx, generating a new ULID when absent.
func GetOrGenerateTraceID(ctx context.Context) string {
	if id := TraceIDFromContext(ctx); id != "" {
		return id
	}
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// WithTraceID attaches the trace ID and a logger carrying it to ctx.
func WithTraceID(ctx context.Context, base zerolog.Logger) context.Context {
	traceID := GetOrGenerateTraceID(ctx)
	ctx = ContextWithTraceID(ctx, traceID)
	l := base.With().Str("trace_id", traceID).Logger()
	return l.WithContext(ctx)
}
