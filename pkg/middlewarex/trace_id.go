package middlewarex

import (
	"net/http"

	"margin_engine/pkg/contextx"
)

const maxTraceIDLen = 64

// TraceID propagates the caller's trace id or issues a new one.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := contextx.TraceID(r.Header.Get(contextx.HeaderTraceID))

		if traceID == "" || len(traceID) > maxTraceIDLen {
			traceID = contextx.NewTraceID()
		}

		ctx := contextx.WithTraceID(r.Context(), traceID)

		w.Header().Set(contextx.HeaderTraceID, traceID.String())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
