package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics bundles the Prometheus collectors for the service.
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	PricingCalculations *prometheus.CounterVec
	PricingFallbacks    prometheus.Counter
	CacheHits           prometheus.Counter
	CacheMisses         prometheus.Counter
	MapsFallbacks       prometheus.Counter
	SlotConflicts       prometheus.Counter
}

// Pricing calculation outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeFallback = "fallback"
	OutcomeInvalid  = "invalid"
)

// IncPricingCalculation counts one calculation with its outcome.
func (m *Metrics) IncPricingCalculation(outcome string) {
	m.PricingCalculations.WithLabelValues(outcome).Inc()
}

// IncPricingFallback counts one fallback-quote substitution.
func (m *Metrics) IncPricingFallback() { m.PricingFallbacks.Inc() }

// IncCacheHit counts one pricing cache hit.
func (m *Metrics) IncCacheHit() { m.CacheHits.Inc() }

// IncCacheMiss counts one pricing cache miss.
func (m *Metrics) IncCacheMiss() { m.CacheMisses.Inc() }

// IncMapsFallback counts one heuristic distance resolution.
func (m *Metrics) IncMapsFallback() { m.MapsFallbacks.Inc() }

// IncSlotConflict counts one rejected reservation attempt.
func (m *Metrics) IncSlotConflict() { m.SlotConflicts.Inc() }

// ObserveHTTPRequest records one completed HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

// New registers and returns the service collectors on the default registry.
func New(serviceName string) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total HTTP requests by method, path and status code.",
			ConstLabels: labels,
		}, []string{"method", "path", "status"}),
		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration by method and path.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),
		PricingCalculations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "pricing_calculations_total",
			Help:        "Pricing calculations by outcome (ok, fallback, invalid).",
			ConstLabels: labels,
		}, []string{"outcome"}),
		PricingFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "pricing_fallback_total",
			Help:        "Times the fixed fallback quote was substituted for a failed calculation.",
			ConstLabels: labels,
		}),
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "pricing_cache_hits_total",
			Help:        "Pricing cache hits.",
			ConstLabels: labels,
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "pricing_cache_misses_total",
			Help:        "Pricing cache misses, including cache-unavailable degradations.",
			ConstLabels: labels,
		}),
		MapsFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "distance_fallback_total",
			Help:        "Distance resolutions served by the keyword heuristic instead of the mapping provider.",
			ConstLabels: labels,
		}),
		SlotConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "slot_reservation_conflicts_total",
			Help:        "Reservation attempts rejected because the slot already holds an active reservation.",
			ConstLabels: labels,
		}),
	}
}
