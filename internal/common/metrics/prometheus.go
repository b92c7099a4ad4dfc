// Package metrics 提供 Prometheus 指标收集
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics 指标收集器
type Metrics struct {
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge
	uploadsTotal         *prometheus.CounterVec
	bookingsTotal        prometheus.Counter
}

var defaultMetrics *Metrics

// Init 初始化指标收集器
func Init(namespace string) *Metrics {
	if namespace == "" {
		namespace = "hotel_floorplan"
	}

	m := &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
		httpRequestsInFlight: promauto.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "http_requests_in_flight",
				Help:      "Current number of HTTP requests being processed",
			},
		),
		uploadsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "uploads_total",
				Help:      "Total number of floor plan image uploads",
			},
			[]string{"status"},
		),
		bookingsTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "bookings_total",
				Help:      "Total number of bookings created",
			},
		),
	}

	defaultMetrics = m
	return m
}

// GetMetrics 获取默认指标收集器
func GetMetrics() *Metrics {
	if defaultMetrics == nil {
		return Init("")
	}
	return defaultMetrics
}

// Middleware 返回 Gin 中间件
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// 跳过 metrics 端点本身
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		m.httpRequestsInFlight.Inc()

		c.Next()

		m.httpRequestsInFlight.Dec()
		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}

		m.httpRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		m.httpRequestDuration.WithLabelValues(c.Request.Method, path).Observe(duration)
	}
}

// Handler 返回 Prometheus HTTP 处理器
func Handler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}

// RecordUpload 记录图片上传
func (m *Metrics) RecordUpload(success bool) {
	status := "ok"
	if !success {
		status = "error"
	}
	m.uploadsTotal.WithLabelValues(status).Inc()
}

// RecordBooking 记录预订创建
func (m *Metrics) RecordBooking() {
	m.bookingsTotal.Inc()
}
