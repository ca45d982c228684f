package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/alexanderramin/capplan/internal/service"
)

const (
	maxBodySize     = 1 << 20 // 1MB
	shutdownTimeout = 10 * time.Second
)

// Services bundles the use cases the HTTP API exposes.
type Services struct {
	Scenarios service.ScenarioService
	Items     service.ItemService
	Settings  service.SettingsService
	Estimate  service.EstimateService
	Capacity  service.CapacityService
	Import    service.ImportService
}

// Server is the capplan JSON API.
type Server struct {
	svc    Services
	logger zerolog.Logger
	router *gin.Engine
}

// NewServer creates a new API server.
func NewServer(svc Services, logger zerolog.Logger) *Server {
	router := gin.New()
	router.Use(recoverer(logger), requestLogger(logger), limitBody(maxBodySize))

	s := &Server{
		svc:    svc,
		logger: logger,
		router: router,
	}

	api := router.Group("/api")
	{
		api.GET("/health", s.handleHealth)

		api.GET("/scenarios", s.handleListScenarios)
		api.POST("/scenarios", s.handleCreateScenario)
		api.GET("/scenarios/:id", s.handleGetScenario)
		api.PUT("/scenarios/:id", s.handleUpdateScenario)
		api.POST("/scenarios/:id/archive", s.handleArchiveScenario)
		api.POST("/scenarios/:id/unarchive", s.handleUnarchiveScenario)
		api.DELETE("/scenarios/:id", s.handleDeleteScenario)
		api.GET("/scenarios/:id/items", s.handleListItems)
		api.POST("/scenarios/:id/items", s.handleCreateItem)
		api.POST("/scenarios/:id/import", s.handleImportItems)
		api.GET("/scenarios/:id/summary", s.handleSummary)
		api.POST("/import", s.handleImportScenario)

		api.GET("/items/:id", s.handleGetItem)
		api.PUT("/items/:id", s.handleUpdateItem)
		api.PUT("/items/:id/scores/:role", s.handleScoreItem)
		api.PUT("/items/:id/override/:role", s.handleFocusOverride)
		api.DELETE("/items/:id", s.handleDeleteItem)

		api.GET("/settings", s.handleGetSettings)
		api.PUT("/settings/:key", s.handleSetSetting)
		api.DELETE("/settings/:key", s.handleUnsetSetting)

		api.POST("/estimate", s.handleEstimate)
	}

	return s
}

// Handler exposes the router for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", addr).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info().Msg("http server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
