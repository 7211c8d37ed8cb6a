// Package metrics exposes process-wide Prometheus collectors at /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HoverQueriesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "globe_hover_queries_total",
		Help: "Total hover queries processed by the tracker",
	})
	HoverTransitionsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "globe_hover_transitions_total",
		Help: "Hover transitions emitted, by event type",
	}, []string{"type"})
	PickDurationMs = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "globe_pick_duration_ms",
		Help:    "Hit region pick duration in milliseconds",
		Buckets: []float64{0.05, 0.1, 0.5, 1, 5, 10, 50},
	})
	DensityCacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "globe_density_cache_hits_total",
		Help: "Density sample cache hits",
	})
	DensityCacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "globe_density_cache_misses_total",
		Help: "Density sample cache misses",
	})
	HoverPublishedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "globe_hover_published_total",
		Help: "Hover events written to the stream",
	})
	HoverDroppedTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "globe_hover_dropped_total",
		Help: "Hover events not written to the stream, by reason",
	}, []string{"reason"})
	CountriesLoaded = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "globe_countries_loaded",
		Help: "Countries in the registry after the last load",
	})
	CountryLoadIssuesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "globe_country_load_issues_total",
		Help: "Features skipped during registry load, by error code",
	}, []string{"code"})
)

func init() {
	prometheus.MustRegister(HoverQueriesTotal)
	prometheus.MustRegister(HoverTransitionsTotal)
	prometheus.MustRegister(PickDurationMs)
	prometheus.MustRegister(DensityCacheHitsTotal)
	prometheus.MustRegister(DensityCacheMissesTotal)
	prometheus.MustRegister(HoverPublishedTotal)
	prometheus.MustRegister(HoverDroppedTotal)
	prometheus.MustRegister(CountriesLoaded)
	prometheus.MustRegister(CountryLoadIssuesTotal)
}

// Handler returns the scrape endpoint for the default registry.
func Handler() http.Handler { return promhttp.Handler() }
