// Package metrics exposes the server's Prometheus collectors and the small
// ops HTTP endpoint that serves them alongside a health probe.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "jobtracker"

// Metrics owns a registry and the RPC collectors registered in it.
type Metrics struct {
	registry *prometheus.Registry

	rpcInFlight   prometheus.Gauge
	rpcRequests   *prometheus.CounterVec
	rpcDuration   *prometheus.HistogramVec
	rateLimited   *prometheus.CounterVec
	exportsIssued prometheus.Counter
}

// New builds a Metrics with a fresh registry, including Go and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rpcInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "grpc",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight unary RPCs.",
		}),
		rpcRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "grpc",
			Name:      "requests_total",
			Help:      "Total number of unary RPCs handled.",
		}, []string{"method", "code"}),
		rpcDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "grpc",
			Name:      "request_duration_seconds",
			Help:      "Duration of unary RPCs.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		}, []string{"method"}),
		rateLimited: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "rate_limited_total",
			Help:      "Auth RPCs rejected by the per-peer limiter.",
		}, []string{"method"}),
		exportsIssued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "export",
			Name:      "snapshots_total",
			Help:      "Export snapshots uploaded.",
		}),
	}

	m.registry.MustRegister(
		m.rpcInFlight,
		m.rpcRequests,
		m.rpcDuration,
		m.rateLimited,
		m.exportsIssued,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
	return m
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler returns an HTTP handler exposing the registered collectors.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RPCStarted marks one RPC as in flight; the returned func records its outcome.
func (m *Metrics) RPCStarted(method string) func(code string) {
	start := time.Now()
	m.rpcInFlight.Inc()
	return func(code string) {
		m.rpcInFlight.Dec()
		m.rpcRequests.WithLabelValues(method, code).Inc()
		m.rpcDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())
	}
}

func (m *Metrics) RateLimited(method string) {
	m.rateLimited.WithLabelValues(method).Inc()
}

func (m *Metrics) ExportIssued() {
	m.exportsIssued.Inc()
}
