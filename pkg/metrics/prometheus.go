package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager holds every Prometheus metric the draftboard service records.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Engine metrics
	dropComputations    prometheus.Counter
	dropComputeDuration prometheus.Histogram
	poolsScored         prometheus.Counter

	// Draft metrics
	picksAssigned prometheus.Counter
	picksCleared  prometheus.Counter
	pickConflicts prometheus.Counter

	// Import metrics
	importsAccepted prometheus.Counter
	importsRejected prometheus.Counter
	importRows      prometheus.Counter

	// Operational metrics
	totalPlayers  prometheus.Gauge
	draftedCount  prometheus.Gauge
	httpRequests  *prometheus.CounterVec
	httpDurations *prometheus.HistogramVec

	// System metrics
	systemMemory     prometheus.Gauge
	systemGoroutines prometheus.Gauge
	systemGCPause    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "draftboard",
		subsystem:        "draft",
		histogramBuckets: prometheus.DefBuckets,
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

	m.dropComputations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "drop_computations_total",
		Help:      "Total number of drop-score computations performed",
	})
	m.dropComputeDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "drop_compute_duration_milliseconds",
		Help:      "Histogram of drop-score computation duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})
	m.poolsScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pools_scored_total",
		Help:      "Total number of position/FLEX pools scored",
	})

	m.picksAssigned = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "picks_assigned_total",
		Help:      "Total number of overall pick numbers assigned",
	})
	m.picksCleared = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "picks_cleared_total",
		Help:      "Total number of picks undone",
	})
	m.pickConflicts = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pick_conflicts_total",
		Help:      "Total number of pick-number conflicts hit during assignment",
	})

	m.importsAccepted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "imports_accepted_total",
		Help:      "Total number of accepted bulk player imports",
	})
	m.importsRejected = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "imports_rejected_total",
		Help:      "Total number of rejected bulk player imports",
	})
	m.importRows = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "import_rows_total",
		Help:      "Total number of player rows inserted by bulk imports",
	})

	m.totalPlayers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players_total",
		Help:      "Current number of players in the pool",
	})
	m.draftedCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "players_drafted",
		Help:      "Current number of drafted players",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total HTTP requests by endpoint, method and status code",
	}, []string{"endpoint", "method", "status_code"})
	m.httpDurations = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "Histogram of HTTP request duration in milliseconds",
		Buckets:   m.histogramBuckets,
	}, []string{"endpoint", "method", "status_code"})

	m.systemMemory = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "memory_bytes",
		Help:      "Current allocated heap memory in bytes",
	})
	m.systemGoroutines = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "goroutines",
		Help:      "Current number of goroutines",
	})
	m.systemGCPause = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: "system",
		Name:      "gc_pause_milliseconds",
		Help:      "Histogram of average GC pause time in milliseconds",
		Buckets:   m.histogramBuckets,
	})
}

// RecordDropComputation records one completed drop-score computation.
func RecordDropComputation(durationMs float64) {
	globalManager.dropComputations.Inc()
	globalManager.dropComputeDuration.Observe(durationMs)
}

// RecordPoolScored counts one scored pool.
func RecordPoolScored() {
	globalManager.poolsScored.Inc()
}

// RecordPickAssigned counts one successful pick assignment.
func RecordPickAssigned() {
	globalManager.picksAssigned.Inc()
}

// RecordPickCleared counts one undraft.
func RecordPickCleared() {
	globalManager.picksCleared.Inc()
}

// RecordPickConflict counts one pick-number collision.
func RecordPickConflict() {
	globalManager.pickConflicts.Inc()
}

// RecordImportAccepted counts one accepted import with its row count.
func RecordImportAccepted(rows int) {
	globalManager.importsAccepted.Inc()
	globalManager.importRows.Add(float64(rows))
}

// RecordImportRejected counts one rejected import.
func RecordImportRejected() {
	globalManager.importsRejected.Inc()
}

// UpdateTotalPlayers sets the current player-pool size.
func UpdateTotalPlayers(count int) {
	globalManager.totalPlayers.Set(float64(count))
}

// UpdateDraftedPlayers sets the current drafted-player count.
func UpdateDraftedPlayers(count int) {
	globalManager.draftedCount.Set(float64(count))
}

// RecordHTTPRequest counts one HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records one HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpDurations.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// UpdateSystemMemoryUsage sets the current allocated heap size.
func UpdateSystemMemoryUsage(bytes uint64) {
	globalManager.systemMemory.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the current goroutine count.
func UpdateSystemGoroutineCount(count int) {
	globalManager.systemGoroutines.Set(float64(count))
}

// RecordSystemGCPauseTime records the average GC pause in milliseconds.
func RecordSystemGCPauseTime(ms float64) {
	globalManager.systemGCPause.Observe(ms)
}

// GetRegistry returns the custom registry serving /healthz.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
