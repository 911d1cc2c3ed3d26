package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"npiregistry/internal/config"
	"npiregistry/server/handlers"
	"npiregistry/server/middleware"
)

// shutdownTimeout время на завершение активных запросов при остановке
const shutdownTimeout = 10 * time.Second

// Server HTTP сервер поиска по реестру NPPES
type Server struct {
	cfg        *config.Config
	engine     *gin.Engine
	httpServer *http.Server
	logger     *slog.Logger
}

// NewServer создает сервер: собирает сервис, middleware и маршруты
func NewServer(cfg *config.Config) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(middleware.GinRecoveryMiddleware())
	engine.Use(middleware.GinRequestIDMiddleware())
	engine.Use(middleware.GinLoggerMiddleware())
	engine.Use(middleware.GinCORSMiddleware())
	engine.Use(middleware.GinGzipMiddleware())

	service := NewProviderService(cfg)
	handlers.RegisterRoutes(engine, service, cfg.MaxBatchSize)
	handlers.RegisterSwaggerRoutes(engine, cfg.Port)

	return &Server{
		cfg:    cfg,
		engine: engine,
		httpServer: &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: engine,
		},
		logger: slog.Default().With("component", "server"),
	}
}

// Engine возвращает собранный Gin роутер (используется в тестах)
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run запускает сервер и останавливает его при отмене контекста
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "port", s.cfg.Port)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.httpServer.Shutdown(shutdownCtx)
}
