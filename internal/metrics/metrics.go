// Package metrics provides Prometheus metrics for the reasonify HTTP API.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Exporter collects reasoning-extraction metrics.
type Exporter struct {
	registry *prometheus.Registry

	documents      *prometheus.CounterVec
	blocks         *prometheus.CounterVec
	reasoning      prometheus.Histogram
	requestLatency *prometheus.HistogramVec

	handler http.Handler
}

// Config configures the exporter.
type Config struct {
	// Registry to use (if nil, creates a new one)
	Registry *prometheus.Registry

	// Buckets for latency histograms (in seconds)
	LatencyBuckets []float64

	// Buckets for reasoning duration (in seconds)
	ReasoningBuckets []float64
}

// DefaultConfig returns default metrics configuration.
func DefaultConfig() Config {
	return Config{
		LatencyBuckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		ReasoningBuckets: []float64{0, 1, 2, 5, 10, 30, 60, 120, 300},
	}
}

// NewExporter creates a new Prometheus exporter.
func NewExporter(cfg Config) *Exporter {
	defaults := DefaultConfig()
	if len(cfg.LatencyBuckets) == 0 {
		cfg.LatencyBuckets = defaults.LatencyBuckets
	}
	if len(cfg.ReasoningBuckets) == 0 {
		cfg.ReasoningBuckets = defaults.ReasoningBuckets
	}

	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	e := &Exporter{registry: registry}

	e.documents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reasonify",
			Subsystem: "engine",
			Name:      "documents_total",
			Help:      "Total number of processed documents",
		},
		[]string{"endpoint", "status"},
	)

	e.blocks = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "reasonify",
			Subsystem: "engine",
			Name:      "reasoning_blocks_total",
			Help:      "Total number of rendered reasoning blocks",
		},
		[]string{"start_tag"},
	)

	e.reasoning = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "reasonify",
			Subsystem: "engine",
			Name:      "reasoning_seconds",
			Help:      "Reasoning duration per rendered block in seconds",
			Buckets:   cfg.ReasoningBuckets,
		},
	)

	e.requestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "reasonify",
			Subsystem: "engine",
			Name:      "request_latency_seconds",
			Help:      "Request handling latency in seconds",
			Buckets:   cfg.LatencyBuckets,
		},
		[]string{"endpoint"},
	)

	registry.MustRegister(e.documents, e.blocks, e.reasoning, e.requestLatency)
	e.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return e
}

// RecordDocument records one handled request.
func (e *Exporter) RecordDocument(endpoint string, latency time.Duration, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	e.documents.WithLabelValues(endpoint, status).Inc()
	e.requestLatency.WithLabelValues(endpoint).Observe(latency.Seconds())
}

// RecordBlock records one rendered reasoning block.
func (e *Exporter) RecordBlock(startTag string, durationSeconds int) {
	e.blocks.WithLabelValues(startTag).Inc()
	e.reasoning.Observe(float64(durationSeconds))
}

// Registry returns the underlying registry.
func (e *Exporter) Registry() *prometheus.Registry {
	return e.registry
}

// ServeHTTP implements http.Handler.
func (e *Exporter) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	e.handler.ServeHTTP(w, r)
}
