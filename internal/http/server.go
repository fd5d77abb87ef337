package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/metric"

	authHTTP "github.com/allisson/imagevault/internal/auth/http"
	authUseCase "github.com/allisson/imagevault/internal/auth/usecase"
	"github.com/allisson/imagevault/internal/config"
	imageHTTP "github.com/allisson/imagevault/internal/image/http"
	"github.com/allisson/imagevault/internal/metrics"
)

// RouterConfig bundles the handlers and collaborators wired into the router.
type RouterConfig struct {
	Config        *config.Config
	Logger        *slog.Logger
	DB            *sql.DB
	AuthUseCase   authUseCase.AuthUseCase
	AuthHandler   *authHTTP.AuthHandler
	ImageHandler  *imageHTTP.ImageHandler
	MeterProvider metric.MeterProvider // nil disables HTTP metrics
}

// SetupRouter builds the gin engine with all routes and middleware.
//
// Route layout:
//   - GET  /health, /ready     unauthenticated probes
//   - POST /signup             account creation
//   - POST /signin             Basic credentials for a fresh token
//   - GET  /images             authenticated (Basic or Bearer)
//   - GET  /images/:id         authenticated
//   - POST /images             authenticated
func SetupRouter(rc RouterConfig) *gin.Engine {
	gin.SetMode(rc.Config.GetGinMode())

	router := gin.New()
	router.Use(requestid.New())
	router.Use(CustomLoggerMiddleware(rc.Logger))
	router.Use(gin.Recovery())

	if corsMiddleware := createCORSMiddleware(
		rc.Config.CORSEnabled,
		rc.Config.CORSAllowOrigins,
		rc.Logger,
	); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if rc.MeterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(rc.MeterProvider))
	}

	router.GET("/health", healthHandler())
	router.GET("/ready", readinessHandler(rc.DB))

	router.POST("/signup", rc.AuthHandler.SignUpHandler)
	router.POST("/signin", rc.AuthHandler.SignInHandler)

	authenticated := router.Group("/")
	authenticated.Use(authHTTP.AuthenticationMiddleware(rc.AuthUseCase, rc.Logger))
	if rc.Config.RateLimitEnabled {
		authenticated.Use(authHTTP.RateLimitMiddleware(
			rc.Config.RateLimitRequestsPerSec,
			rc.Config.RateLimitBurst,
			rc.Logger,
		))
	}
	authenticated.GET("/images", rc.ImageHandler.ListHandler)
	authenticated.GET("/images/:id", rc.ImageHandler.GetHandler)
	authenticated.POST("/images", rc.ImageHandler.CreateHandler)

	return router
}

// healthHandler reports process liveness.
func healthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	}
}

// readinessHandler reports whether the service can reach its database.
func readinessHandler(db *sql.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := db.PingContext(ctx); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}

// Server represents the main HTTP server.
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// NewServer creates a new HTTP server serving the given handler.
func NewServer(host string, port int, handler http.Handler, logger *slog.Logger) *Server {
	return &Server{
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			Handler:      handler,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
