package contextx

import (
	"context"
	"fmt"

	"github.com/rs/xid"
)

// HeaderTraceID заголовок, в котором trace id передаётся между клиентом и сервером.
const HeaderTraceID = "X-Trace-Id"

type TraceID string

type contextKeyTraceID struct{}

func (t TraceID) String() string {
	return string(t)
}

// NewTraceID выпускает новый trace id.
func NewTraceID() TraceID {
	return TraceID(xid.New().String())
}

func WithTraceID(ctx context.Context, traceID TraceID) context.Context {
	return context.WithValue(ctx, contextKeyTraceID{}, traceID)
}

func TraceIDFromContext(ctx context.Context) (TraceID, error) {
	traceID, ok := ctx.Value(contextKeyTraceID{}).(TraceID)
	if !ok {
		return "", fmt.Errorf("trace id: %w", ErrNoValue)
	}

	return traceID, nil
}
