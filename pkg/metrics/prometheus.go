// Package metrics provides Prometheus metrics for the ExeCap league service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the ExeCap service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	customLabels     map[string]string
	metricPrefix     string
	registry         prometheus.Registerer

	// Refresh Metrics - one refresh is a full load + snapshot build
	refreshTotal      prometheus.Counter
	refreshFailures   prometheus.Counter
	refreshDurationMs prometheus.Histogram

	// Ingest Metrics - per fact-table row accounting
	rowsIngested  *prometheus.CounterVec
	rowsSkipped   *prometheus.CounterVec
	filesIngested prometheus.Counter
	loadWarnings  prometheus.Counter

	// Snapshot Metrics - published league snapshot state
	snapshotSwapCount       prometheus.Counter
	snapshotLastUnix        prometheus.Gauge
	snapshotBuildDurationMs prometheus.Gauge

	// League Metrics - business scale of the current snapshot
	companies           prometheus.Gauge
	people              prometheus.Gauge
	freeAgents          prometheus.Gauge
	overBudgetCompanies prometheus.Gauge
	leagueSpendUSD      prometheus.Gauge

	// Object Storage Metrics
	storageFetchRetries   prometheus.Counter
	storageFetchFailures  prometheus.Counter
	storageFetchLatencyMs prometheus.Histogram

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Error Metrics
	errorRateByType     *prometheus.CounterVec
	errorRateByEndpoint *prometheus.CounterVec
	errorLatency        *prometheus.HistogramVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "execap",
		subsystem:        "league",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		customLabels:     make(map[string]string),
		metricPrefix:     "",
		registry:         prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // long function required for comprehensive metrics initialization
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	// Refresh metrics
	m.refreshTotal = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refresh_total",
		Help:      "Total number of refresh operations attempted",
	})

	m.refreshFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refresh_failures_total",
		Help:      "Total number of refresh operations that failed and kept the prior snapshot",
	})

	m.refreshDurationMs = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "refresh_duration_milliseconds",
		Help:      "Histogram of end-to-end refresh duration in milliseconds",
		Buckets:   []float64{10, 50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000},
	})

	// Ingest metrics
	m.rowsIngested = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "rows_ingested_total",
			Help:      "Total number of fact rows ingested, by table",
		},
		[]string{"table"},
	)

	m.rowsSkipped = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "rows_skipped_total",
			Help:      "Total number of malformed or duplicate rows skipped, by table",
		},
		[]string{"table"},
	)

	m.filesIngested = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "files_ingested_total",
		Help:      "Total number of source files ingested into the manifest",
	})

	m.loadWarnings = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "load_warnings_total",
		Help:      "Total number of per-company load warnings (missing or empty files)",
	})

	// Snapshot metrics
	m.snapshotSwapCount = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_swaps_total",
		Help:      "Total number of snapshot swaps published",
	})

	m.snapshotLastUnix = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_last_unix",
		Help:      "Unix timestamp of the last published snapshot",
	})

	m.snapshotBuildDurationMs = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "snapshot_build_duration_milliseconds",
		Help:      "Build duration of the last published snapshot in milliseconds",
	})

	// League metrics
	m.companies = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "companies",
		Help:      "Number of companies in the current snapshot",
	})

	m.people = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "people",
		Help:      "Number of people in the current snapshot",
	})

	m.freeAgents = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "free_agents",
		Help:      "Number of free agents in the current snapshot",
	})

	m.overBudgetCompanies = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "over_budget_companies",
		Help:      "Number of companies spending above their cap budget",
	})

	m.leagueSpendUSD = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "league_spend_usd",
		Help:      "Total measured compensation spend across the league in USD",
	})

	// Object storage metrics
	m.storageFetchRetries = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "storage_fetch_retries_total",
		Help:      "Total number of object storage fetch retries",
	})

	m.storageFetchFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "storage_fetch_failures_total",
		Help:      "Total number of object storage fetches that exhausted their retries",
	})

	m.storageFetchLatencyMs = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "storage_fetch_latency_milliseconds",
		Help:      "Latency of individual object storage fetches in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	// HTTP metrics
	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	// Error metrics
	m.errorRateByType = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_type_total",
			Help:      "Total number of errors by type",
		},
		[]string{"error_type", "severity"},
	)

	m.errorRateByEndpoint = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "errors_by_endpoint_total",
			Help:      "Total number of errors by endpoint",
		},
		[]string{"endpoint", "method", "error_type"},
	)

	m.errorLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "error_latency_milliseconds",
			Help:      "Latency of operations that resulted in errors",
			Buckets:   m.histogramBuckets,
		},
		[]string{"component", "error_type"},
	)

	// System metrics
	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_time_milliseconds",
		Help:      "GC pause time in milliseconds",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	})
}

// RecordRefresh increments the refresh counter.
func RecordRefresh() {
	globalManager.refreshTotal.Inc()
}

// RecordRefreshFailure increments the refresh failure counter.
func RecordRefreshFailure() {
	globalManager.refreshFailures.Inc()
}

// RecordRefreshDuration records end-to-end refresh duration in milliseconds.
func RecordRefreshDuration(durationMs float64) {
	globalManager.refreshDurationMs.Observe(durationMs)
}

// RecordRowsIngested adds to the ingested row counter for a table.
func RecordRowsIngested(table string, n int) {
	globalManager.rowsIngested.WithLabelValues(table).Add(float64(n))
}

// RecordRowSkipped increments the skipped row counter for a table.
func RecordRowSkipped(table string) {
	globalManager.rowsSkipped.WithLabelValues(table).Inc()
}

// RecordFileIngested increments the ingested file counter.
func RecordFileIngested() {
	globalManager.filesIngested.Inc()
}

// RecordLoadWarning increments the load warning counter.
func RecordLoadWarning() {
	globalManager.loadWarnings.Inc()
}

// RecordSnapshotSwap records a published snapshot and its build duration.
func RecordSnapshotSwap(buildDurationMs float64) {
	globalManager.snapshotSwapCount.Inc()
	globalManager.snapshotLastUnix.Set(float64(time.Now().Unix()))
	globalManager.snapshotBuildDurationMs.Set(buildDurationMs)
}

// UpdateCompanies sets the company count gauge.
func UpdateCompanies(count int) {
	globalManager.companies.Set(float64(count))
}

// UpdatePeople sets the people count gauge.
func UpdatePeople(count int) {
	globalManager.people.Set(float64(count))
}

// UpdateFreeAgents sets the free agent count gauge.
func UpdateFreeAgents(count int) {
	globalManager.freeAgents.Set(float64(count))
}

// UpdateOverBudgetCompanies sets the over-budget company count gauge.
func UpdateOverBudgetCompanies(count int) {
	globalManager.overBudgetCompanies.Set(float64(count))
}

// UpdateLeagueSpend sets the total league spend gauge.
func UpdateLeagueSpend(usd float64) {
	globalManager.leagueSpendUSD.Set(usd)
}

// RecordStorageFetchRetry increments the storage retry counter.
func RecordStorageFetchRetry() {
	globalManager.storageFetchRetries.Inc()
}

// RecordStorageFetchFailure increments the storage failure counter.
func RecordStorageFetchFailure() {
	globalManager.storageFetchFailures.Inc()
}

// RecordStorageFetchLatency records a single fetch latency in milliseconds.
func RecordStorageFetchLatency(latencyMs float64) {
	globalManager.storageFetchLatencyMs.Observe(latencyMs)
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// RecordErrorByType records an error with type and severity labels.
func RecordErrorByType(errorType, severity string) {
	globalManager.errorRateByType.WithLabelValues(errorType, severity).Inc()
}

// RecordErrorByEndpoint records an error with endpoint, method, and error type labels.
func RecordErrorByEndpoint(endpoint, method, errorType string) {
	globalManager.errorRateByEndpoint.WithLabelValues(endpoint, method, errorType).Inc()
}

// RecordErrorLatency records the latency of an operation that resulted in an error.
func RecordErrorLatency(component, errorType string, latencyMs float64) {
	globalManager.errorLatency.WithLabelValues(component, errorType).Observe(latencyMs)
}

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
