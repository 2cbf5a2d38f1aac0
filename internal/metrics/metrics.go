// Package metrics exposes Prometheus collectors for inbound requests and
// upstream calls.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upstream call outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Metrics owns its registry, so every instance can be created independently
// in tests.
type Metrics struct {
	RequestCounter   *prometheus.CounterVec
	LatencyHistogram *prometheus.HistogramVec
	UpstreamCounter  *prometheus.CounterVec
	UpstreamLatency  *prometheus.HistogramVec
	registry         *prometheus.Registry
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		RequestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookgw_requests_total",
				Help: "Total number of inbound HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		LatencyHistogram: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bookgw_request_duration_seconds",
				Help:    "Inbound HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		UpstreamCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bookgw_upstream_calls_total",
				Help: "Upstream operations by resource and outcome",
			},
			[]string{"resource", "outcome"},
		),
		UpstreamLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bookgw_upstream_duration_seconds",
				Help:    "Latency of outbound calls to the upstream API",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"resource"},
		),
		registry: registry,
	}

	registry.MustRegister(m.RequestCounter)
	registry.MustRegister(m.LatencyHistogram)
	registry.MustRegister(m.UpstreamCounter)
	registry.MustRegister(m.UpstreamLatency)
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return m
}

// ObserveRequest counts one inbound request and records its latency.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	m.RequestCounter.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.LatencyHistogram.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveUpstream counts one operation. d is zero for operations rejected
// before any outbound call, and no latency is recorded for them.
func (m *Metrics) ObserveUpstream(resource, outcome string, d time.Duration) {
	m.UpstreamCounter.WithLabelValues(resource, outcome).Inc()
	if outcome != OutcomeRejected {
		m.UpstreamLatency.WithLabelValues(resource).Observe(d.Seconds())
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
