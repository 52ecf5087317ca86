package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics collects HTTP and analysis counters for prometheus scraping.
type Metrics struct {
	registry        *prometheus.Registry
	requests        *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	analyses         prometheus.Counter
	analysisDuration prometheus.Histogram
	nodesAnalyzed    prometheus.Counter
	unknownNodes     prometheus.Counter
}

// NewMetrics registers collectors on a fresh registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	m := &Metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "pagelift_http_requests_total",
			Help: "HTTP requests by method, path, and status.",
		}, []string{"method", "path", "status"}),
		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "pagelift_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		analyses: factory.NewCounter(prometheus.CounterOpts{
			Name: "pagelift_analyses_total",
			Help: "Documents analyzed.",
		}),
		analysisDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "pagelift_analysis_duration_seconds",
			Help:    "Full-walk analysis latency.",
			Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}),
		nodesAnalyzed: factory.NewCounter(prometheus.CounterOpts{
			Name: "pagelift_nodes_analyzed_total",
			Help: "Elements classified across all analyses.",
		}),
		unknownNodes: factory.NewCounter(prometheus.CounterOpts{
			Name: "pagelift_unknown_nodes_total",
			Help: "Elements no pattern matched.",
		}),
	}
	m.registry = reg
	return m
}

// Handler returns the gin middleware recording request metrics.
func (m *Metrics) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		started := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.requests.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.requestDuration.WithLabelValues(c.Request.Method, path).
			Observe(time.Since(started).Seconds())
	}
}

// ObserveAnalysis records one analysis run.
func (m *Metrics) ObserveAnalysis(nodes, unknown int, elapsed time.Duration) {
	m.analyses.Inc()
	m.analysisDuration.Observe(elapsed.Seconds())
	m.nodesAnalyzed.Add(float64(nodes))
	m.unknownNodes.Add(float64(unknown))
}

// Scraper returns the /metrics endpoint handler.
func (m *Metrics) Scraper() gin.HandlerFunc {
	h := promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
