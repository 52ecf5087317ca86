package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsHandlerRecordsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics()

	r := gin.New()
	r.Use(m.Handler())
	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	r.GET("/metrics", m.Scraper())

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)

	body := w.Body.String()
	assert.Contains(t, body, "pagelift_http_requests_total")
	assert.Contains(t, body, `path="/health"`)
	assert.Contains(t, body, "pagelift_http_request_duration_seconds")
}

func TestObserveAnalysis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := NewMetrics()
	m.ObserveAnalysis(42, 3, 150*time.Millisecond)
	m.ObserveAnalysis(10, 0, 20*time.Millisecond)

	r := gin.New()
	r.GET("/metrics", m.Scraper())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := w.Body.String()
	assert.Contains(t, body, "pagelift_analyses_total 2")
	assert.Contains(t, body, "pagelift_nodes_analyzed_total 52")
	assert.Contains(t, body, "pagelift_unknown_nodes_total 3")
}
