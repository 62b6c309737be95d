// Package metrics registers the Prometheus collectors for the HTTP API.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the collectors tracking API usage.
type Metrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	datasetRecords  prometheus.Gauge
}

// New creates the collectors and registers them on the default registry.
func New() *Metrics {
	m := &Metrics{}
	m.requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dashboard",
		Name:      "http_requests_total",
		Help:      "Number of HTTP requests by route and status",
	}, []string{"route", "status"})
	m.requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "dashboard",
		Name:      "http_request_duration_seconds",
		Help:      "Time spent serving HTTP requests",
	}, []string{"route"})
	m.datasetRecords = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "dashboard",
		Name:      "dataset_records",
		Help:      "Number of records in the loaded dataset snapshot",
	})

	prometheus.MustRegister(
		m.requestsTotal, m.requestDuration, m.datasetRecords,
	)
	return m
}

// SetDatasetRecords publishes the size of the loaded snapshot.
func (m *Metrics) SetDatasetRecords(n int) {
	m.datasetRecords.Set(float64(n))
}

// Middleware returns a gin middleware observing every request.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requestsTotal.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
		m.requestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
	}
}

// Handler exposes the default registry for scraping.
func Handler() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
