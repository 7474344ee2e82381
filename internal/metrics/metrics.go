// Package metrics exposes prometheus collectors for the analysis service.
package metrics

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds the ladderscope collectors on a private prometheus registry.
type Registry struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	TablesAnalyzed   *prometheus.CounterVec
	RungsAnalyzed    prometheus.Counter
	RowsSkipped      prometheus.Counter
	ChainsTruncated  prometheus.Counter
	AnalysisDuration *prometheus.HistogramVec
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// DefaultRegistry returns the process-wide registry.
func DefaultRegistry() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
	})
	return defaultRegistry
}

func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	r.HTTPRequestsTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ladderscope_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	r.HTTPRequestDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ladderscope_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	r.TablesAnalyzed = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "ladderscope_tables_analyzed_total",
			Help: "Element tables analysed, by outcome",
		},
		[]string{"status"},
	)

	r.RungsAnalyzed = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "ladderscope_rungs_analyzed_total",
			Help: "Total number of rungs analysed",
		},
	)

	r.RowsSkipped = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "ladderscope_rows_skipped_total",
			Help: "Element table rows skipped as malformed",
		},
	)

	r.ChainsTruncated = promauto.With(r.registry).NewCounter(
		prometheus.CounterOpts{
			Name: "ladderscope_chains_truncated_total",
			Help: "Rungs whose chain enumeration hit the configured cap",
		},
	)

	r.AnalysisDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ladderscope_analysis_duration_seconds",
			Help:    "Time spent in the analysis engine",
			Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		},
		[]string{"operation"},
	)

	return r
}

// Handler serves the registry in the prometheus exposition format.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records an HTTP request with its duration
func (r *Registry) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	r.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	r.HTTPRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordAnalysis records one engine run over a table.
func (r *Registry) RecordAnalysis(operation string, rungs, skipped, truncated int, duration time.Duration) {
	r.TablesAnalyzed.WithLabelValues("ok").Inc()
	r.RungsAnalyzed.Add(float64(rungs))
	r.RowsSkipped.Add(float64(skipped))
	r.ChainsTruncated.Add(float64(truncated))
	r.AnalysisDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordRejected counts a table that could not be decoded at all.
func (r *Registry) RecordRejected() {
	r.TablesAnalyzed.WithLabelValues("rejected").Inc()
}
