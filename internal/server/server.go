package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pageza/recipe-translate/backend/config"
	"github.com/pageza/recipe-translate/backend/internal/api"
	"github.com/pageza/recipe-translate/backend/internal/middleware"
	"github.com/pageza/recipe-translate/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger zerolog.Logger
}

// New creates a new server instance
func New(cfg *config.Config, recipeService service.IRecipeService, logger zerolog.Logger) *Server {
	router := gin.New()
	router.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.ErrorHandler(logger),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)

	api.NewRecipeHandler(recipeService, logger).RegisterRoutes(router)

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              net.JoinHostPort(cfg.ServerHost, cfg.ServerPort),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger.With().Str("component", "server").Logger(),
	}
}

// Start serves until Shutdown is called; it returns nil after a clean shutdown
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.http.Addr).Msg("starting server")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}

// Handler exposes the router
func (s *Server) Handler() http.Handler {
	return s.router
}
