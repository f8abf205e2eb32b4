// Package metrics provides Prometheus metrics for the unit normalization service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Conversion metrics
	conversionsTotal   *prometheus.CounterVec
	conversionErrors   *prometheus.CounterVec
	safeConversionNull prometheus.Counter

	// Classification metrics
	classifications        *prometheus.CounterVec
	classificationFallback prometheus.Counter

	// Preference metrics
	preferenceVersion prometheus.Gauge
	preferenceUpdates prometheus.Counter

	// Migration metrics
	migrationRecordsConverted prometheus.Counter
	migrationRecordsUnchanged prometheus.Counter
	migrationRecordsDegraded  prometheus.Counter
	migrationBatchDuration    prometheus.Histogram
	migrationValidationErrors prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
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
		namespace:        "uom",
		subsystem:        "core",
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

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.conversionsTotal = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "conversions_total",
			Help:      "Total number of unit conversions by direction",
		},
		[]string{"direction"},
	)

	m.conversionErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "conversion_errors_total",
			Help:      "Total number of conversion failures by reason",
		},
		[]string{"reason"},
	)

	m.safeConversionNull = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "safe_conversion_null_total",
		Help:      "Total number of lenient conversions that degraded to a null result",
	})

	m.classifications = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "classifications_total",
			Help:      "Total number of metric-key classifications by resolved family",
		},
		[]string{"family"},
	)

	m.classificationFallback = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "classification_fallback_total",
		Help:      "Total number of metric keys that hit the fallback family",
	})

	m.preferenceVersion = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "preference_version",
		Help:      "Current version counter of the active display preferences",
	})

	m.preferenceUpdates = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "preference_updates_total",
		Help:      "Total number of preference mutations",
	})

	m.migrationRecordsConverted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "migration_records_converted_total",
		Help:      "Total number of legacy records converted to base units",
	})

	m.migrationRecordsUnchanged = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "migration_records_unchanged_total",
		Help:      "Total number of legacy records passed through unchanged",
	})

	m.migrationRecordsDegraded = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "migration_records_degraded_total",
		Help:      "Total number of legacy records that degraded to identity conversion on an unrecognized unit",
	})

	m.migrationBatchDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "migration_batch_duration_milliseconds",
		Help:      "Migration batch duration in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	m.migrationValidationErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "migration_validation_errors_total",
		Help:      "Total number of errors reported by post-migration validation",
	})

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
}

// RecordConversion increments the conversion counter for a direction
// ("to_base", "from_base", "convert").
func RecordConversion(direction string) {
	globalManager.conversionsTotal.WithLabelValues(direction).Inc()
}

// RecordConversionError increments the conversion error counter for a reason
// ("unknown_unit", "incompatible_units").
func RecordConversionError(reason string) {
	globalManager.conversionErrors.WithLabelValues(reason).Inc()
}

// RecordSafeConversionNull increments the lenient-conversion null counter.
func RecordSafeConversionNull() {
	globalManager.safeConversionNull.Inc()
}

// RecordClassification increments the classification counter for a family.
func RecordClassification(family string) {
	globalManager.classifications.WithLabelValues(family).Inc()
}

// RecordClassificationFallback increments the fallback-family counter.
func RecordClassificationFallback() {
	globalManager.classificationFallback.Inc()
}

// UpdatePreferenceVersion sets the active preference version gauge.
func UpdatePreferenceVersion(version uint64) {
	globalManager.preferenceVersion.Set(float64(version))
}

// RecordPreferenceUpdate increments the preference mutation counter.
func RecordPreferenceUpdate() {
	globalManager.preferenceUpdates.Inc()
}

// RecordMigrationConverted increments the converted-records counter.
func RecordMigrationConverted() {
	globalManager.migrationRecordsConverted.Inc()
}

// RecordMigrationUnchanged increments the unchanged-records counter.
func RecordMigrationUnchanged() {
	globalManager.migrationRecordsUnchanged.Inc()
}

// RecordMigrationDegraded increments the degraded-records counter.
func RecordMigrationDegraded() {
	globalManager.migrationRecordsDegraded.Inc()
}

// RecordMigrationBatchDuration records a migration batch duration in milliseconds.
func RecordMigrationBatchDuration(durationMs float64) {
	globalManager.migrationBatchDuration.Observe(durationMs)
}

// RecordMigrationValidationErrors adds to the validation error counter.
func RecordMigrationValidationErrors(count int) {
	globalManager.migrationValidationErrors.Add(float64(count))
}

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, durationMs float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(durationMs)
}

// GetRegistry returns the custom registry used by the global manager.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
