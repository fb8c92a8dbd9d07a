package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	ProviderRequestSeconds *prometheus.HistogramVec
	ProviderErrors         *prometheus.CounterVec
	CacheLookups           *prometheus.CounterVec
	RoutesComputed         prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		ProviderRequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "trip_planner_provider_request_duration_seconds",
			Help:    "Duration of requests to external providers.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		ProviderErrors: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "trip_planner_provider_errors_total",
			Help: "Total number of failed external provider calls.",
		}, []string{"provider"}),
		CacheLookups: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "trip_planner_cache_lookups_total",
			Help: "Cache lookups partitioned by cache name and outcome.",
		}, []string{"cache", "outcome"}),
		RoutesComputed: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "trip_planner_routes_computed_total",
			Help: "Total number of successfully computed routes.",
		}),
	}
}

// The helpers below are nil-safe so adapters can run without a registry
// (tests, tools).

func (m *Metrics) ObserveProvider(provider string, seconds float64) {
	if m == nil {
		return
	}
	m.ProviderRequestSeconds.WithLabelValues(provider).Observe(seconds)
}

func (m *Metrics) ProviderError(provider string) {
	if m == nil {
		return
	}
	m.ProviderErrors.WithLabelValues(provider).Inc()
}

func (m *Metrics) CacheLookup(cache string, hit bool) {
	if m == nil {
		return
	}
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	m.CacheLookups.WithLabelValues(cache, outcome).Inc()
}

func (m *Metrics) RouteComputed() {
	if m == nil {
		return
	}
	m.RoutesComputed.Inc()
}
