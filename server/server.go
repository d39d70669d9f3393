// Package server wires the HTTP surface around the cleaning engine. The
// engine itself is stateless; everything session-shaped lives here.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"claritygate/server/handlers"
	"claritygate/server/middleware"
	"claritygate/server/services"
)

// Server is the HTTP server for the visitor-list cleaning service.
type Server struct {
	cfg    *Config
	engine *gin.Engine
	http   *http.Server
}

// NewServer builds the router, middleware chain and handlers.
func NewServer(cfg *Config) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger())
	engine.Use(middleware.Recovery())
	engine.Use(middleware.CORS())
	if cfg.EnableGzip {
		engine.Use(middleware.Gzip())
	}

	cleaningService := services.NewCleaningService()
	cleanHandler := handlers.NewCleanHandler(cleaningService, cfg.MaxUploadBytes)
	templateHandler := handlers.NewTemplateHandler()
	clearanceHandler := handlers.NewClearanceHandler()

	api := engine.Group("/api")
	{
		api.POST("/clean", middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst), cleanHandler.HandleClean)
		api.GET("/template", templateHandler.HandleTemplate)
		api.GET("/clearance", clearanceHandler.HandleClearance)
	}
	engine.GET("/health", handlers.HandleHealth)
	handlers.RegisterSwaggerRoutes(engine)

	return &Server{
		cfg:    cfg,
		engine: engine,
		http: &http.Server{
			Addr:              ":" + cfg.Port,
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start serves until Shutdown or a listener error.
func (s *Server) Start() error {
	Logger.Info("server starting", "port", s.cfg.Port)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	Logger.Info("server shutting down")
	return s.http.Shutdown(ctx)
}
