package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "shopsearch"

// Search Prometheus metrics.
var (
	SearchRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "search_requests_total",
			Help:      "Total number of search requests",
		},
		[]string{"outcome"}, // "hit" / "empty" / "blank"
	)

	SearchResults = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "search_results",
			Help:      "Number of entries returned per non-blank search",
			Buckets:   []float64{0, 1, 2, 5, 10, 20, 50, 100},
		},
	)

	SuggestionRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "suggestion_requests_total",
			Help:      "Total number of suggestion requests",
		},
		[]string{"outcome"}, // "hit" / "empty" / "short"
	)

	HistoryErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "history_errors_total",
			Help:      "History storage failures absorbed by the tracker",
		},
		[]string{"op"}, // "load" / "save" / "delete" / "seed"
	)

	CatalogReloadsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_reloads_total",
			Help:      "Catalog file reloads",
		},
		[]string{"status"}, // "ok" / "error"
	)

	CatalogEntries = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "catalog_entries",
			Help:      "Entries in the active catalog snapshot",
		},
	)
)

var searchMetricsRegistered bool

// RegisterSearchMetrics registers search, history and catalog metrics. Must be called once from main.
func RegisterSearchMetrics() {
	if searchMetricsRegistered {
		return
	}
	prometheus.MustRegister(SearchRequestsTotal)
	prometheus.MustRegister(SearchResults)
	prometheus.MustRegister(SuggestionRequestsTotal)
	prometheus.MustRegister(HistoryErrorsTotal)
	prometheus.MustRegister(CatalogReloadsTotal)
	prometheus.MustRegister(CatalogEntries)
	searchMetricsRegistered = true
}
