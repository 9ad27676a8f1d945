package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsService encapsulates Prometheus instrumentation for the HTTP
// surface and the state mirror.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	mirrorDuration  *prometheus.HistogramVec
	mirrorFailures  *prometheus.CounterVec
	importRows      prometheus.Counter
	importErrors    prometheus.Counter

	requestCount         uint64
	requestDurationTotal uint64
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	mirrorDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "state_mirror_save_duration_seconds",
		Help:    "Duration of state snapshot writes to the mirror backend",
		Buckets: prometheus.DefBuckets,
	}, []string{"backend"})

	mirrorFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "state_mirror_save_failures_total",
		Help: "Total failed state snapshot writes",
	}, []string{"backend"})

	importRows := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "import_rows_total",
		Help: "Total spreadsheet rows processed by the importer",
	})

	importErrors := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "import_row_errors_total",
		Help: "Total spreadsheet rows rejected by the importer",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, mirrorDuration, mirrorFailures, importRows, importErrors, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:        registry,
		handler:         handler,
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		mirrorDuration:  mirrorDuration,
		mirrorFailures:  mirrorFailures,
		importRows:      importRows,
		importErrors:    importErrors,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
	atomic.AddUint64(&m.requestDurationTotal, uint64(duration.Nanoseconds()))
}

// ObserveMirrorSave records a snapshot write attempt against the mirror.
func (m *MetricsService) ObserveMirrorSave(backend string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.mirrorDuration.WithLabelValues(backend).Observe(duration.Seconds())
	if err != nil {
		m.mirrorFailures.WithLabelValues(backend).Inc()
	}
}

// ObserveImport records importer row throughput.
func (m *MetricsService) ObserveImport(rows, errors int) {
	if m == nil {
		return
	}
	m.importRows.Add(float64(rows))
	m.importErrors.Add(float64(errors))
}
