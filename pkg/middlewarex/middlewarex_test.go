package middlewarex_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"margin_engine/pkg/contextx"
	"margin_engine/pkg/logx"
	"margin_engine/pkg/middlewarex"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

func TestTraceID(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name     string
		header   string
		expected string
	}{
		{name: "Propagated", header: "abc-123", expected: "abc-123"},
		{name: "Generated", header: ""},
		{name: "Too long", header: strings.Repeat("x", 65)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var seen contextx.TraceID

			h := middlewarex.TraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				traceID, err := contextx.TraceIDFromContext(r.Context())
				rq.NoError(err)

				seen = traceID
			}))

			r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tc.header != "" {
				r.Header.Set("X-Trace-Id", tc.header)
			}

			w := httptest.NewRecorder()
			h.ServeHTTP(w, r)

			rq.Equal(seen.String(), w.Header().Get("X-Trace-Id"))

			if tc.expected != "" {
				rq.Equal(tc.expected, seen.String())
			} else {
				rq.Len(seen.String(), 20)
			}
		})
	}
}

func TestLoggerEnrichesRequestLogger(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	h := middlewarex.TraceID(middlewarex.Logger(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		contextx.LoggerFromContextOrDefault(r.Context()).Info("handled")
	})))

	r := httptest.NewRequest(http.MethodGet, "/v1/pricing/segments", http.NoBody)
	r.Header.Set("User-Agent", "quote-cli")
	r.Header.Set("X-Trace-Id", "trace-42")
	r = r.WithContext(contextx.WithLogger(r.Context(), slog.New(slog.NewJSONHandler(&buf, nil))))

	h.ServeHTTP(httptest.NewRecorder(), r)

	var entry map[string]any
	rq.NoError(json.Unmarshal(buf.Bytes(), &entry))
	rq.Equal("trace-42", entry[logx.FieldTraceID])
	rq.Equal("quote-cli", entry[logx.FieldUserAgent])
	rq.Equal(http.MethodGet, entry[logx.FieldHTTPMethod])
}

func TestRecovery(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	h := middlewarex.Recovery(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("unexpected")
	}))

	r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	r = r.WithContext(contextx.WithLogger(r.Context(), slog.New(slog.NewJSONHandler(&buf, nil))))
	w := httptest.NewRecorder()

	rq.NotPanics(func() { h.ServeHTTP(w, r) })
	rq.Equal(http.StatusInternalServerError, w.Code)
	rq.Contains(w.Body.String(), `"code":"InternalServerError"`)
	rq.Contains(buf.String(), "panic in handler")
}

func TestRequestResponseLogging(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	masker := logx.NewSensitiveDataMasker()

	h := middlewarex.RequestLogging(masker, 0)(
		middlewarex.ResponseLogging(masker, 0)(
			http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusCreated)
				w.Write([]byte(`{"totalUnitCost":22.55}`))
			}),
		),
	)

	r := httptest.NewRequest(http.MethodPost, "/v1/pricing/optimize", strings.NewReader(`{"baseCost":15}`))
	r = r.WithContext(contextx.WithLogger(r.Context(), slog.New(slog.NewJSONHandler(&buf, nil))))
	w := httptest.NewRecorder()

	h.ServeHTTP(w, r)

	rq.Equal(http.StatusCreated, w.Code)
	rq.Equal(`{"totalUnitCost":22.55}`, w.Body.String())

	logs := buf.String()
	rq.Contains(logs, logx.FieldHTTPRequest)
	rq.Contains(logs, logx.FieldHTTPResponse)
	rq.NotContains(logs, "22.55")
	rq.NotContains(logs, `baseCost\":15`)
}

func TestHTTPMetrics(t *testing.T) {
	rq := require.New(t)

	registry := prometheus.NewRegistry()
	metrics := middlewarex.NewHTTPMetrics(registry)

	r := chi.NewRouter()
	r.Use(metrics.Middleware)
	r.Get("/v1/items/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	for _, id := range []string{"1", "2", "3"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/items/"+id, http.NoBody))
	}

	count, err := testutil.GatherAndCount(registry, "http_requests_total")
	rq.NoError(err)
	rq.Equal(1, count)
}
