package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func limitedRouter(rps, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewRateLimiter(rps, burst).Handler())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func get(r *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiterAllowsWithinBurst(t *testing.T) {
	r := limitedRouter(1, 3)

	for i := 0; i < 3; i++ {
		w := get(r, "10.0.0.1:1234")
		assert.Equal(t, http.StatusOK, w.Code, "request %d", i)
	}
}

func TestRateLimiterRejectsOverBurst(t *testing.T) {
	r := limitedRouter(1, 2)

	get(r, "10.0.0.2:1234")
	get(r, "10.0.0.2:1234")
	w := get(r, "10.0.0.2:1234")

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate limit exceeded")
}

func TestRateLimiterIsolatesClients(t *testing.T) {
	r := limitedRouter(1, 1)

	assert.Equal(t, http.StatusOK, get(r, "10.0.0.3:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "10.0.0.3:1234").Code)

	// A different client still has its full bucket.
	assert.Equal(t, http.StatusOK, get(r, "10.0.0.4:1234").Code)
}

func TestRateLimiterAllow(t *testing.T) {
	rl := NewRateLimiter(1, 2)
	defer rl.Stop()

	assert.True(t, rl.allow("a"))
	assert.True(t, rl.allow("a"))
	assert.False(t, rl.allow("a"))
	assert.True(t, rl.allow("b"))
}

func TestRateLimiterPrunesIdleClients(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	defer rl.Stop()

	rl.allow("stale")
	rl.allow("fresh")

	rl.mu.Lock()
	rl.clients["stale"].lastSeen = time.Now().Add(-10 * time.Minute)
	rl.mu.Unlock()

	rl.prune(3 * time.Minute)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.clients, "stale")
	assert.Contains(t, rl.clients, "fresh")
}
