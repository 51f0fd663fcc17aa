package metrics

import "github.com/prometheus/client_golang/prometheus"

// Search index Prometheus metrics.
var (
	MirrorTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "mirror_total",
			Help:      "Document mirror outcomes",
		},
		[]string{"kind", "outcome"},
	)

	ReindexDocumentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "reindex_documents_total",
			Help:      "Documents processed by the startup reindex",
		},
		[]string{"outcome"}, // "indexed" / "failed"
	)

	SearchDegradedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "search_degraded_total",
			Help:      "Searches answered with the degraded empty shape",
		},
		[]string{"operation", "reason"}, // reason: "unavailable" / "error"
	)

	FacetCacheTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "facet_cache_total",
			Help:      "Faceted search cache hits and misses",
		},
		[]string{"result"}, // "hit" / "miss"
	)

	SearchIndexUp = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "search_index_up",
			Help:      "1 if the last search index liveness check succeeded",
		},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers the search index metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(MirrorTotal)
	prometheus.MustRegister(ReindexDocumentsTotal)
	prometheus.MustRegister(SearchDegradedTotal)
	prometheus.MustRegister(FacetCacheTotal)
	prometheus.MustRegister(SearchIndexUp)
	searchMetricsRegistered = true
}
