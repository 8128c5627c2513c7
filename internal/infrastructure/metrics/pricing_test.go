package metrics_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"margin_engine/internal/infrastructure/metrics"
)

func TestPricing(t *testing.T) {
	rq := require.New(t)

	registry := prometheus.NewRegistry()
	m := metrics.NewPricing(registry)

	m.ObserveOptimization("Mid-Range", "Fair", time.Millisecond)
	m.ObserveOptimization("Mid-Range", "Fair", time.Millisecond)
	m.ObserveOptimization("Luxury", "Weak", time.Millisecond)
	m.ObserveValidationFailure()
	m.ObserveCacheHit()

	rq.NoError(testutil.GatherAndCompare(registry, strings.NewReader(`
# HELP pricing_optimizations_total Number of computed price optimizations.
# TYPE pricing_optimizations_total counter
pricing_optimizations_total{segment="Luxury",tier="Weak"} 1
pricing_optimizations_total{segment="Mid-Range",tier="Fair"} 2
# HELP pricing_validation_failures_total Number of rejected optimization requests.
# TYPE pricing_validation_failures_total counter
pricing_validation_failures_total 1
# HELP pricing_quote_cache_hits_total Number of optimizations served from the quote cache.
# TYPE pricing_quote_cache_hits_total counter
pricing_quote_cache_hits_total 1
`),
		"pricing_optimizations_total",
		"pricing_validation_failures_total",
		"pricing_quote_cache_hits_total",
	))

	count, err := testutil.GatherAndCount(registry, "pricing_optimization_duration_seconds")
	rq.NoError(err)
	rq.Equal(1, count)
}
