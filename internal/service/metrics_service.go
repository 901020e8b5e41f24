package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ituna-edu/portal-api/internal/models"
)

// MetricsService encapsulates Prometheus instrumentation and provides
// lightweight snapshots for the admin dashboard.
type MetricsService struct {
	registry          *prometheus.Registry
	handler           http.Handler
	requestDuration   *prometheus.HistogramVec
	requestTotal      *prometheus.CounterVec
	storeOpDuration   *prometheus.HistogramVec
	reportsGenerated  prometheus.Counter
	assistantRequests prometheus.Counter

	requestCount      uint64
	requestDurTotal   uint64
	storeOpCount      uint64
	storeOpDurTotal   uint64
	reportCount       uint64
	assistantReqCount uint64
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

	storeOpDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "store_operation_duration_seconds",
		Help:    "Duration of persistence store operations",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})

	reportsGenerated := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "progress_reports_generated_total",
		Help: "Total progress report PDFs rendered",
	})

	assistantRequests := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "assistant_requests_total",
		Help: "Total assistant chat and media requests",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, storeOpDuration, reportsGenerated, assistantRequests, goroutines)

	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return &MetricsService{
		registry:          registry,
		handler:           handler,
		requestDuration:   requestDuration,
		requestTotal:      requestTotal,
		storeOpDuration:   storeOpDuration,
		reportsGenerated:  reportsGenerated,
		assistantRequests: assistantRequests,
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

// ObserveHTTPRequest records request metrics and aggregates simple stats for snapshots.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
	atomic.AddUint64(&m.requestDurTotal, uint64(duration.Nanoseconds()))
}

// ObserveStoreOperation records timing for a persistence store round trip.
func (m *MetricsService) ObserveStoreOperation(operation string, duration time.Duration) {
	if m == nil {
		return
	}
	m.storeOpDuration.WithLabelValues(operation).Observe(duration.Seconds())
	atomic.AddUint64(&m.storeOpCount, 1)
	atomic.AddUint64(&m.storeOpDurTotal, uint64(duration.Nanoseconds()))
}

// RecordReportGenerated counts a completed progress report render.
func (m *MetricsService) RecordReportGenerated() {
	if m == nil {
		return
	}
	m.reportsGenerated.Inc()
	atomic.AddUint64(&m.reportCount, 1)
}

// RecordAssistantRequest counts one assistant interaction.
func (m *MetricsService) RecordAssistantRequest() {
	if m == nil {
		return
	}
	m.assistantRequests.Inc()
	atomic.AddUint64(&m.assistantReqCount, 1)
}

// Snapshot returns aggregated metrics suitable for the admin dashboard.
func (m *MetricsService) Snapshot() models.SystemMetrics {
	if m == nil {
		return models.SystemMetrics{}
	}
	requests := atomic.LoadUint64(&m.requestCount)
	reqDuration := atomic.LoadUint64(&m.requestDurTotal)
	storeOps := atomic.LoadUint64(&m.storeOpCount)
	storeDuration := atomic.LoadUint64(&m.storeOpDurTotal)

	var avgRequestMs float64
	if requests > 0 {
		avgRequestMs = float64(reqDuration) / float64(requests) / float64(time.Millisecond)
	}

	var avgStoreMs float64
	if storeOps > 0 {
		avgStoreMs = float64(storeDuration) / float64(storeOps) / float64(time.Millisecond)
	}

	return models.SystemMetrics{
		RequestsTotal:            requests,
		AverageRequestDurationMs: avgRequestMs,
		StoreOperations:          storeOps,
		AverageStoreOperationMs:  avgStoreMs,
		ReportsGenerated:         atomic.LoadUint64(&m.reportCount),
		AssistantRequests:        atomic.LoadUint64(&m.assistantReqCount),
		Goroutines:               runtime.NumGoroutine(),
		GeneratedAt:              time.Now().UTC(),
	}
}
