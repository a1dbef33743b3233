package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	RequestSize     *prometheus.HistogramVec
	ResponseSize    *prometheus.HistogramVec

	// Store metrics
	StoreOps *prometheus.CounterVec
	Entities *prometheus.GaugeVec

	// WebSocket metrics
	WSConnections prometheus.Gauge
	WSMessages    *prometheus.CounterVec

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
}

// NewMetrics creates a new metrics collector
func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),

		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vaultview_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vaultview_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		RequestSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vaultview_http_request_size_bytes",
				Help:    "HTTP request size in bytes",
				Buckets: prometheus.ExponentialBuckets(128, 4, 8),
			},
			[]string{"method", "path"},
		),
		ResponseSize: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "vaultview_http_response_size_bytes",
				Help:    "HTTP response size in bytes",
				Buckets: prometheus.ExponentialBuckets(128, 4, 8),
			},
			[]string{"method", "path"},
		),

		StoreOps: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vaultview_store_operations_total",
				Help: "Store mutations by operation and outcome",
			},
			[]string{"op", "status"},
		),
		Entities: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "vaultview_entities",
				Help: "Current number of live entities by kind",
			},
			[]string{"kind"},
		),

		WSConnections: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "vaultview_ws_connections",
				Help: "Active WebSocket connections",
			},
		),
		WSMessages: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "vaultview_ws_messages_total",
				Help: "WebSocket messages by type and direction",
			},
			[]string{"type", "direction"},
		),

		Uptime: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "vaultview_uptime_seconds",
				Help: "Service uptime in seconds",
			},
		),
	}
}

// RecordHTTPRequest records metrics for one HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration, reqSize, respSize int64) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.RequestSize.WithLabelValues(method, path).Observe(float64(reqSize))
	m.ResponseSize.WithLabelValues(method, path).Observe(float64(respSize))
	m.Uptime.Set(time.Since(m.startTime).Seconds())
}

// RecordStoreOp counts one store operation outcome
func (m *Metrics) RecordStoreOp(op, status string) {
	m.StoreOps.WithLabelValues(op, status).Inc()
}

// SetEntityCounts refreshes the live entity gauges
func (m *Metrics) SetEntityCounts(folders, files, comments, properties int) {
	m.Entities.WithLabelValues("folder").Set(float64(folders))
	m.Entities.WithLabelValues("file").Set(float64(files))
	m.Entities.WithLabelValues("comment").Set(float64(comments))
	m.Entities.WithLabelValues("property").Set(float64(properties))
}

// WSConnected tracks a new WebSocket connection
func (m *Metrics) WSConnected() {
	m.WSConnections.Inc()
}

// WSDisconnected tracks a closed WebSocket connection
func (m *Metrics) WSDisconnected() {
	m.WSConnections.Dec()
}

// RecordWSMessage counts one WebSocket message
func (m *Metrics) RecordWSMessage(msgType, direction string) {
	m.WSMessages.WithLabelValues(msgType, direction).Inc()
}
