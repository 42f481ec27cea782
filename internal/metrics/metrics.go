// Package metrics owns the prometheus registry and the collectors the
// service exposes for scraping at /metrics.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	ItemsCreated    prometheus.Counter
	ItemsDeleted    prometheus.Counter
}

// New builds a self-contained registry with process/runtime collectors
// plus the service's own counters. A fresh registry per instance keeps
// tests from tripping over duplicate registration.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Count of HTTP requests by method, route and status.",
		}, []string{"method", "path", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		ItemsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "items_created_total",
			Help: "Count of items successfully created.",
		}),
		ItemsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "items_deleted_total",
			Help: "Count of items successfully deleted.",
		}),
	}
	reg.MustRegister(m.RequestsTotal, m.RequestDuration, m.ItemsCreated, m.ItemsDeleted)
	return m
}

// Handler serves the registry in the prometheus text exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
