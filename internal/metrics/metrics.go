// Package metrics exposes Prometheus instrumentation for the refresh pipeline.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the refresh pipeline.
type Metrics struct {
	RefreshCyclesTotal   prometheus.Counter
	RefreshFailuresTotal prometheus.Counter
	PriceAlertsTotal     prometheus.Counter
	HoldingsUpdated      prometheus.Gauge
	RefreshDuration      prometheus.Histogram

	registry *prometheus.Registry
}

// New creates and registers all metrics on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		RefreshCyclesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nivesh_refresh_cycles_total",
			Help: "Completed refresh cycles (success path).",
		}),
		RefreshFailuresTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nivesh_refresh_failures_total",
			Help: "Refresh cycles aborted by a storage or internal failure.",
		}),
		PriceAlertsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "nivesh_price_alerts_total",
			Help: "Price alerts emitted across all refresh cycles.",
		}),
		HoldingsUpdated: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "nivesh_holdings_updated",
			Help: "Holdings whose price was updated in the last cycle.",
		}),
		RefreshDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "nivesh_refresh_duration_seconds",
			Help:    "Wall time of a full refresh cycle.",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		}),
		registry: reg,
	}

	reg.MustRegister(
		m.RefreshCyclesTotal,
		m.RefreshFailuresTotal,
		m.PriceAlertsTotal,
		m.HoldingsUpdated,
		m.RefreshDuration,
	)

	return m
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
