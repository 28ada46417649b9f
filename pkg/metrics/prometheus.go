// Package metrics provides Prometheus metrics for the surf score service.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "surf"

	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Manager owns the collectors of the service.
type Manager struct {
	registry *prometheus.Registry

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	scoreCalculations *prometheus.CounterVec
	scoreValues       prometheus.Histogram

	spotWatchRuns   *prometheus.CounterVec
	spotWatchSpots  *prometheus.CounterVec
	upstreamLatency *prometheus.HistogramVec
}

var globalManager = NewManager(prometheus.NewRegistry()) //nolint:gochecknoglobals // singleton metrics manager

// NewManager registers every collector on the given registry.
func NewManager(registry *prometheus.Registry) *Manager {
	m := &Manager{
		registry: registry,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by endpoint, method, and status",
		}, []string{"endpoint", "method", "status"}),
		httpRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.02, 0.05, 0.1, 0.2, 0.5, 1.0},
		}, []string{"endpoint", "method"}),
		scoreCalculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "score",
			Name:      "calculations_total",
			Help:      "Total number of surf score calculations by source and outcome",
		}, []string{"source", "outcome"}),
		scoreValues: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "score",
			Name:      "value",
			Help:      "Distribution of computed surf scores",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		}),
		spotWatchRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "spot_watch",
			Name:      "runs_total",
			Help:      "Total number of spot watch runs by outcome",
		}, []string{"outcome"}),
		spotWatchSpots: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "spot_watch",
			Name:      "spots_total",
			Help:      "Total number of spots processed by the spot watch by outcome",
		}, []string{"outcome"}),
		upstreamLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "upstream",
			Name:      "request_duration_seconds",
			Help:      "Latency of upstream conditions requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"upstream", "outcome"}),
	}

	registry.MustRegister(
		m.httpRequests,
		m.httpRequestDuration,
		m.scoreCalculations,
		m.scoreValues,
		m.spotWatchRuns,
		m.spotWatchSpots,
		m.upstreamLatency,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Manager) RecordHTTPRequest(endpoint, method, status string, duration time.Duration) {
	m.httpRequests.WithLabelValues(endpoint, method, status).Inc()
	m.httpRequestDuration.WithLabelValues(endpoint, method).Observe(duration.Seconds())
}

func (m *Manager) RecordScore(source string, score float64, err error) {
	if err != nil {
		m.scoreCalculations.WithLabelValues(source, OutcomeError).Inc()
		return
	}
	m.scoreCalculations.WithLabelValues(source, OutcomeSuccess).Inc()
	m.scoreValues.Observe(score)
}

func (m *Manager) RecordSpotWatchRun(scored, failed int, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	m.spotWatchRuns.WithLabelValues(outcome).Inc()
	m.spotWatchSpots.WithLabelValues(OutcomeSuccess).Add(float64(scored))
	m.spotWatchSpots.WithLabelValues(OutcomeError).Add(float64(failed))
}

func (m *Manager) RecordUpstream(upstream string, duration time.Duration, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeError
	}
	m.upstreamLatency.WithLabelValues(upstream, outcome).Observe(duration.Seconds())
}

// Global returns the process-wide manager.
func Global() *Manager {
	return globalManager
}

// Handler exposes the process-wide registry.
func Handler() http.Handler {
	return globalManager.Handler()
}

// RecordHTTPRequest records an HTTP request on the process-wide manager.
func RecordHTTPRequest(endpoint, method, status string, duration time.Duration) {
	globalManager.RecordHTTPRequest(endpoint, method, status, duration)
}

// RecordScore records a score calculation on the process-wide manager.
func RecordScore(source string, score float64, err error) {
	globalManager.RecordScore(source, score, err)
}

// RecordSpotWatchRun records a spot watch run on the process-wide manager.
func RecordSpotWatchRun(scored, failed int, err error) {
	globalManager.RecordSpotWatchRun(scored, failed, err)
}

// RecordUpstream records an upstream request on the process-wide manager.
func RecordUpstream(upstream string, duration time.Duration, err error) {
	globalManager.RecordUpstream(upstream, duration, err)
}
