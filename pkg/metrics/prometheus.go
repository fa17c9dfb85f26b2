// Package metrics provides Prometheus metrics for the pulseboard dashboard
// service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns every Prometheus metric of the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Data boundary metrics
	queriesExecuted prometheus.Counter
	queryErrors     prometheus.Counter
	queryLatency    prometheus.Histogram

	// Query cache metrics
	cacheHits    prometheus.Counter
	cacheMisses  prometheus.Counter
	cacheEntries prometheus.Gauge

	// Catalog metrics
	categoryResolves prometheus.Counter
	resolveFailures  prometheus.Counter

	// Metric engine
	kpiComputeLatency prometheus.Histogram

	// HTTP surface
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	errorsByEndpoint    *prometheus.CounterVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "pulseboard",
		subsystem:        "dashboard",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.queriesExecuted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "queries_executed_total",
		Help:      "Total number of store queries executed (cache misses included)",
	})
	m.queryErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "query_errors_total",
		Help:      "Total number of store query failures swallowed into empty results",
	})
	m.queryLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "query_latency_milliseconds",
		Help:      "Histogram of store query latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.cacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cache_hits_total",
		Help:      "Total number of query results served from the TTL cache",
	})
	m.cacheMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cache_misses_total",
		Help:      "Total number of cache misses (absent or expired entries)",
	})
	m.cacheEntries = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "cache_entries",
		Help:      "Current number of live cache entries",
	})

	m.categoryResolves = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "category_resolves_total",
		Help:      "Total number of successful category resolutions",
	})
	m.resolveFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "category_resolve_failures_total",
		Help:      "Total number of unknown-category rejections",
	})

	m.kpiComputeLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "kpi_compute_latency_milliseconds",
		Help:      "Histogram of KPI bundle computation latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint, method and status",
	}, []string{"endpoint", "method", "status"})
	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "Histogram of HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status"})
	m.errorsByEndpoint = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "errors_by_endpoint_total",
		Help:      "Total number of error responses by endpoint and error class",
	}, []string{"endpoint", "method", "class"})
}

// GetRegistry returns the registry metrics are collected in.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}

// RecordQuery records one executed store query and its latency.
func RecordQuery(durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.queriesExecuted.Inc()
	globalManager.queryLatency.Observe(durationMs)
}

// RecordQueryError records a swallowed store query failure.
func RecordQueryError() {
	if !globalManager.enabled {
		return
	}
	globalManager.queryErrors.Inc()
}

// RecordCacheHit records a query served from the cache.
func RecordCacheHit() {
	if !globalManager.enabled {
		return
	}
	globalManager.cacheHits.Inc()
}

// RecordCacheMiss records an absent or expired cache entry.
func RecordCacheMiss() {
	if !globalManager.enabled {
		return
	}
	globalManager.cacheMisses.Inc()
}

// SetCacheEntries updates the live cache entry gauge.
func SetCacheEntries(n int) {
	if !globalManager.enabled {
		return
	}
	globalManager.cacheEntries.Set(float64(n))
}

// RecordResolve records a successful category resolution.
func RecordResolve() {
	if !globalManager.enabled {
		return
	}
	globalManager.categoryResolves.Inc()
}

// RecordResolveFailure records an unknown-category rejection.
func RecordResolveFailure() {
	if !globalManager.enabled {
		return
	}
	globalManager.resolveFailures.Inc()
}

// RecordKPICompute records the latency of one KPI bundle computation.
func RecordKPICompute(durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.kpiComputeLatency.Observe(durationMs)
}

// RecordHTTPRequest records one HTTP request.
func RecordHTTPRequest(endpoint, method, status string) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequests.WithLabelValues(endpoint, method, status).Inc()
}

// RecordHTTPRequestDuration records one HTTP request's duration.
func RecordHTTPRequestDuration(endpoint, method, status string, durationMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, status).Observe(durationMs)
}

// RecordEndpointError records an error response by class.
func RecordEndpointError(endpoint, method, class string) {
	if !globalManager.enabled {
		return
	}
	globalManager.errorsByEndpoint.WithLabelValues(endpoint, method, class).Inc()
}
