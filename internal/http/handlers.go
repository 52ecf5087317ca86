// Package http contains the gin handlers exposing the recognition engine:
// document analysis, pattern inventory, and health.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pagelift/pagelift/backend/internal/dom"
	"github.com/pagelift/pagelift/backend/internal/logging"
	"github.com/pagelift/pagelift/backend/internal/middleware"
	"github.com/pagelift/pagelift/backend/internal/recognition"
)

// Handlers contains all HTTP handlers.
type Handlers struct {
	analyzer *recognition.Analyzer
	registry *recognition.Registry
	metrics  *middleware.Metrics
	log      *logging.Logger
}

// NewHandlers creates a handler set.
func NewHandlers(analyzer *recognition.Analyzer, registry *recognition.Registry, metrics *middleware.Metrics, log *logging.Logger) *Handlers {
	return &Handlers{
		analyzer: analyzer,
		registry: registry,
		metrics:  metrics,
		log:      log,
	}
}

// AnalyzeRequest is the analysis request body.
type AnalyzeRequest struct {
	HTML string `json:"html" binding:"required"`
}

// Analyze classifies every element of the posted document and returns the
// analyzed tree. Unparseable documents are a client error; per-node style
// failures surface as diagnostics on a successful response.
func (h *Handlers) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "html field required"})
		return
	}

	started := time.Now()
	report, err := h.analyzer.AnalyzeDocument(req.HTML)
	if err != nil {
		if errors.Is(err, dom.ErrMalformedDocument) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		h.log.Error("analysis failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		return
	}

	if h.metrics != nil {
		h.metrics.ObserveAnalysis(report.Stats.Nodes, report.Stats.Unknown, time.Since(started))
	}

	// Analyzed trees get large; sonic keeps serialization off the hot path.
	body, err := sonic.Marshal(report)
	if err != nil {
		h.log.Error("report serialization failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "serialization failed"})
		return
	}
	c.Data(http.StatusOK, "application/json", body)
}

// Patterns lists the registered rules in scan order for auditability.
func (h *Handlers) Patterns(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"patterns": h.registry.Inventory(),
		"count":    h.registry.Len(),
	})
}

// Health reports service liveness.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"patterns": h.registry.Len(),
	})
}

// Root identifies the service.
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "PageLift Recognition Service",
		"version": "0.3.0",
	})
}
