package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics for the application.
// It includes counters and histograms for HTTP traffic, database queries
// and report generation.
type Metrics struct {
	HTTPRequests        *prometheus.CounterVec   // Counter for handled HTTP requests
	HTTPRequestDuration *prometheus.HistogramVec // Histogram for HTTP request durations
	DBQueryDuration     *prometheus.HistogramVec // Histogram for database query durations
	ReportGeneration    prometheus.Histogram     // Histogram for excel report generation durations
}

// NewMetrics creates a new Metrics instance with the provided Prometheus Registerer.
//
// Parameters:
//   - reg: A Prometheus Registerer used to register the metrics.
//
// Returns:
//   - A pointer to the newly created Metrics instance.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "employee_http_requests_total",
			Help: "Total number of handled HTTP requests",
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "employee_http_request_duration_seconds",
			Help:    "Duration of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "employee_db_query_duration_seconds",
			Help:    "Duration of database queries.",
			Buckets: prometheus.DefBuckets,
		}, []string{"query_type"}), // query_type: find_all, find_by_id, insert, upsert, delete
		ReportGeneration: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name: "employee_report_generation_duration_seconds",
			Help: "Duration of report excel generation.",
		}),
	}
}

// ObserveDBQuery records the time elapsed since started for the given query type.
// It is a no-op on a nil receiver.
func (m *Metrics) ObserveDBQuery(queryType string, started time.Time) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(queryType).Observe(time.Since(started).Seconds())
}

// ObserveHTTPRequest counts one handled request and records its duration.
// It is a no-op on a nil receiver.
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, started time.Time) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(started).Seconds())
}

// ObserveReport records the duration of one report generation. It is a no-op on a nil receiver.
func (m *Metrics) ObserveReport(started time.Time) {
	if m == nil {
		return
	}
	m.ReportGeneration.Observe(time.Since(started).Seconds())
}
