// @title NPI Registry Lookup API
// @version 1.0
// @description HTTP API поиска провайдеров в реестре NPPES по номерам NPI и критериям.

// @contact.name API Support
// @contact.email support@example.com

// @host localhost:8080
// @BasePath /
// @schemes http https

package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"npiregistry/internal/config"
	"npiregistry/server"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	setupLogger(cfg.LogLevel)

	srv := server.NewServer(cfg)

	// Обработка сигналов для graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("NPI registry lookup server",
		"port", cfg.Port,
		"registry", cfg.RegistryBaseURL,
	)

	if err := srv.Run(ctx); err != nil {
		log.Fatalf("Ошибка работы сервера: %v", err)
	}

	slog.Info("server stopped")
}

// setupLogger настраивает глобальный slog логгер по уровню из конфигурации
func setupLogger(level string) {
	var slogLevel slog.Level
	switch strings.ToUpper(level) {
	case "DEBUG":
		slogLevel = slog.LevelDebug
	case "WARN":
		slogLevel = slog.LevelWarn
	case "ERROR":
		slogLevel = slog.LevelError
	default:
		slogLevel = slog.LevelInfo
	}

	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel})
	slog.SetDefault(slog.New(handler))
}
