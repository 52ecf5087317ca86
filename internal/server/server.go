// Package server wires configuration, logging, the pattern registry, and
// the HTTP surface into a runnable service.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pagelift/pagelift/backend/internal/config"
	apihttp "github.com/pagelift/pagelift/backend/internal/http"
	"github.com/pagelift/pagelift/backend/internal/logging"
	"github.com/pagelift/pagelift/backend/internal/middleware"
	"github.com/pagelift/pagelift/backend/internal/recognition"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	router  *gin.Engine
	http    *http.Server
	log     *logging.Logger
	limiter *middleware.RateLimiter
}

// New builds the service from configuration. Pattern definition problems
// (including overlay file mistakes) fail here, at startup.
func New(cfg *config.Config, log *logging.Logger) (*Server, error) {
	registry, err := recognition.RegistryWithOverlay(cfg.Analyzer.PatternsFile)
	if err != nil {
		return nil, fmt.Errorf("build pattern registry: %w", err)
	}
	log.Info("pattern registry built", zap.Int("patterns", registry.Len()))

	analyzer := recognition.NewAnalyzer(registry,
		recognition.WithWorkers(cfg.Analyzer.Workers),
		recognition.WithLogger(log.Named("analyzer")),
	)

	if !cfg.Logging.Development {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Content-Type", "Accept", "Origin", "Authorization"},
		MaxAge:       12 * time.Hour,
	}))

	metrics := middleware.NewMetrics()
	router.Use(metrics.Handler())

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
		router.Use(limiter.Handler())
	}

	handlers := apihttp.NewHandlers(analyzer, registry, metrics, log.Named("http"))

	router.GET("/", handlers.Root)
	router.GET("/health", handlers.Health)
	router.GET("/metrics", metrics.Scraper())
	router.GET("/patterns", handlers.Patterns)
	router.POST("/analyze", handlers.Analyze)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	return &Server{
		router: router,
		http: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		log:     log,
		limiter: limiter,
	}, nil
}

// Run starts the server and blocks until it stops.
func (s *Server) Run() error {
	s.log.Info("starting recognition service", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down")
	if s.limiter != nil {
		s.limiter.Stop()
	}
	return s.http.Shutdown(ctx)
}
