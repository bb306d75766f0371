// Package server wires the HTTP surface: health probes, the synchronous
// analyze endpoint and the read-side endpoints over vendors, sample
// emails, cases and the knowledge base.
package server

import (
	"time"

	"vdms/internal/cases"
	"vdms/internal/config"
	"vdms/internal/handlers"
	"vdms/internal/knowledge"
	"vdms/internal/poller"
	"vdms/internal/store"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// Server represents the application server
type Server struct {
	echo      *echo.Echo
	db        *sqlx.DB // nil in seed-data mode
	store     store.Store
	pipeline  poller.Pipeline
	cases     *cases.Repository
	retriever *knowledge.Retriever
	config    *config.Config
	logger    zerolog.Logger
}

// New creates a new server instance. db may be nil when the seed store
// serves reference data; retriever may be nil when no knowledge backend
// is configured.
func New(cfg *config.Config, db *sqlx.DB, st store.Store, pipeline poller.Pipeline, repo *cases.Repository, retriever *knowledge.Retriever, logger zerolog.Logger) *Server {
	return &Server{
		config:    cfg,
		db:        db,
		store:     st,
		pipeline:  pipeline,
		cases:     repo,
		retriever: retriever,
		logger:    logger,
	}
}

// zerologMiddleware creates a zerolog-based logging middleware for Echo
func (s *Server) zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			req := c.Request()
			res := c.Response()

			s.logger.Info().
				Str("method", req.Method).
				Str("uri", req.RequestURI).
				Str("remote_ip", c.RealIP()).
				Int("status", res.Status).
				Int64("latency_ms", time.Since(start).Milliseconds()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return err
		}
	}
}

// Initialize sets up the Echo framework with middleware and routes
func (s *Server) Initialize() {
	s.echo = echo.New()

	s.echo.Use(s.zerologMiddleware())
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.CORS())

	s.echo.HideBanner = true

	s.setupRoutes()
}

// setupRoutes configures all the application routes
func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	// Swagger documentation
	s.echo.GET("/swagger/*", echoSwagger.WrapHandler)

	// Health endpoints (keep at root level for monitoring)
	s.echo.GET("/healthz", handlers.HealthHandler(s.config.Version))
	s.echo.GET("/healthz/db", handlers.DBHealthHandler(s.db))

	api.GET("/", handlers.RootHandler(s.config.Version))
	api.POST("/analyze", handlers.AnalyzeHandler(s.store, s.pipeline, s.cases, s.logger))
	api.GET("/vendors", handlers.VendorsHandler(s.store))
	api.GET("/sample-emails", handlers.SampleEmailsHandler())
	api.GET("/cases", handlers.CasesHandler(s.cases))
	api.GET("/cases/:id", handlers.CaseHandler(s.cases))
	api.POST("/knowledge/query", handlers.KnowledgeQueryHandler(s.retriever))

	// Serve the demo UI (this should be last to avoid conflicts)
	s.echo.Static("/", "static")
}

// Start starts the HTTP server
func (s *Server) Start() error {
	s.logger.Info().Str("port", s.config.Port).Msg("Server starting")
	return s.echo.Start(":" + s.config.Port)
}
