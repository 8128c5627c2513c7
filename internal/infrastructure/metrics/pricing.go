package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "pricing"

// Pricing коллекторы сервиса оптимизации цены.
type Pricing struct {
	optimizations      *prometheus.CounterVec
	duration           prometheus.Histogram
	validationFailures prometheus.Counter
	cacheHits          prometheus.Counter
}

func NewPricing(registerer prometheus.Registerer) *Pricing {
	p := &Pricing{
		optimizations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "optimizations_total",
			Help:      "Number of computed price optimizations.",
		}, []string{"segment", "tier"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "optimization_duration_seconds",
			Help:      "Time spent computing a price optimization.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 10), //nolint:mnd
		}),
		validationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "validation_failures_total",
			Help:      "Number of rejected optimization requests.",
		}),
		cacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "quote_cache_hits_total",
			Help:      "Number of optimizations served from the quote cache.",
		}),
	}

	registerer.MustRegister(p.optimizations, p.duration, p.validationFailures, p.cacheHits)

	return p
}

func (p *Pricing) ObserveOptimization(segment, tier string, elapsed time.Duration) {
	p.optimizations.WithLabelValues(segment, tier).Inc()
	p.duration.Observe(elapsed.Seconds())
}

func (p *Pricing) ObserveValidationFailure() {
	p.validationFailures.Inc()
}

func (p *Pricing) ObserveCacheHit() {
	p.cacheHits.Inc()
}
