// Package metrics provides the centralized Prometheus registry for the
// reporting API.
package metrics

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Global registry instance
var (
	registry *prometheus.Registry
	once     sync.Once
)

// Counter metrics
var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "race_report",
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests handled",
	}, []string{"path", "method", "status"})
	ResponsesByFormatTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "race_report",
		Name:      "responses_by_format_total",
		Help:      "Total number of responses rendered per output format",
	}, []string{"format"})
	ReportCacheHits = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "race_report",
		Name:      "report_cache_hits_total",
		Help:      "Total number of report cache hits",
	})
	ReportCacheMisses = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "race_report",
		Name:      "report_cache_misses_total",
		Help:      "Total number of report cache misses",
	})
	IngestedRecordsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "race_report",
		Name:      "ingested_records_total",
		Help:      "Total number of records ingested at startup per table",
	}, []string{"table"})
)

// Gauge metrics
var (
	ReportCacheHitRatio = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "race_report",
		Name:      "report_cache_hit_ratio",
		Help:      "Ratio of report cache hits to total lookups",
	})
)

// Histogram metrics
var (
	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "race_report",
		Name:      "http_request_duration_seconds",
		Help:      "Duration of HTTP request handling in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"path"})
)

// InitRegistry initializes the global Prometheus registry.
func InitRegistry() *prometheus.Registry {
	once.Do(func() {
		registry = prometheus.NewRegistry()

		registry.MustRegister(HTTPRequestsTotal)
		registry.MustRegister(ResponsesByFormatTotal)
		registry.MustRegister(ReportCacheHits)
		registry.MustRegister(ReportCacheMisses)
		registry.MustRegister(IngestedRecordsTotal)

		registry.MustRegister(ReportCacheHitRatio)

		registry.MustRegister(HTTPRequestDuration)
	})
	return registry
}

// GetRegistry returns the global Prometheus registry.
func GetRegistry() *prometheus.Registry {
	if registry == nil {
		return InitRegistry()
	}
	return registry
}

// Handler returns the Prometheus HTTP handler.
func Handler() http.Handler {
	return promhttp.HandlerFor(GetRegistry(), promhttp.HandlerOpts{})
}

// RecordRequest records a handled HTTP request.
func RecordRequest(path, method string, status int, durationSeconds float64) {
	HTTPRequestsTotal.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(path).Observe(durationSeconds)
}

// RecordResponseFormat records the output format of a rendered
// response.
func RecordResponseFormat(format string) {
	ResponsesByFormatTotal.WithLabelValues(format).Inc()
}

// RecordIngestedRecords records how many records a table received
// during startup ingestion.
func RecordIngestedRecords(table string, count int) {
	IngestedRecordsTotal.WithLabelValues(table).Add(float64(count))
}
