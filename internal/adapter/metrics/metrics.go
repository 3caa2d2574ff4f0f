package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MatchMetrics holds all Prometheus metrics for the resolve service.
type MatchMetrics struct {
	LookupsTotal       *prometheus.CounterVec
	CacheHits          prometheus.Counter
	CacheMisses        prometheus.Counter
	IndexCompanies     prometheus.Gauge
	IndexCreditRecords prometheus.Gauge
	IndexRebuildsTotal prometheus.Counter
}

// NewMatchMetrics initializes and registers the Prometheus metrics.
func NewMatchMetrics() *MatchMetrics {
	return &MatchMetrics{
		LookupsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "companymatch",
			Subsystem: "resolve",
			Name:      "lookups_total",
			Help:      "Total number of resolved lookups by match confidence.",
		}, []string{"confidence"}), // confidence: high, medium, low, no_match, error
		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "companymatch",
			Subsystem: "resolve",
			Name:      "cache_hits_total",
			Help:      "Total number of result cache hits.",
		}),
		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "companymatch",
			Subsystem: "resolve",
			Name:      "cache_misses_total",
			Help:      "Total number of result cache misses.",
		}),
		IndexCompanies: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "companymatch",
			Subsystem: "index",
			Name:      "companies_gauge",
			Help:      "Number of distinct company names in the active reference index.",
		}),
		IndexCreditRecords: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "companymatch",
			Subsystem: "index",
			Name:      "credit_records_gauge",
			Help:      "Number of de-duplicated credit records in the active reference index.",
		}),
		IndexRebuildsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "companymatch",
			Subsystem: "index",
			Name:      "rebuilds_total",
			Help:      "Total number of successful reference index rebuilds.",
		}),
	}
}
