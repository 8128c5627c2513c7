package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"margin_engine/pkg/logx"
	"margin_engine/pkg/middlewarex"
)

type HandlerOptions struct {
	SensitiveDataMasker logx.SensitiveDataMaskerInterface
	LogFieldMaxLen      int
	Metrics             *middlewarex.HTTPMetrics
}

// NewHandler собирает роутер с общей цепочкой middleware.
func NewHandler(s Server, opts HandlerOptions) http.Handler {
	if opts.SensitiveDataMasker == nil {
		opts.SensitiveDataMasker = logx.NewNopSensitiveDataMasker()
	}

	r := chi.NewRouter()

	r.Use(middlewarex.TraceID)
	r.Use(middlewarex.Logger)
	r.Use(middlewarex.Recovery)
	r.Use(middlewarex.RequestLogging(opts.SensitiveDataMasker, opts.LogFieldMaxLen))
	r.Use(middlewarex.ResponseLogging(opts.SensitiveDataMasker, opts.LogFieldMaxLen))

	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
	}

	s.RegisterRoutes(r)

	return r
}
