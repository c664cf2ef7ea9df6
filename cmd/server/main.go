package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/reshetovitsme/podcast-feed/internal/di"
	"github.com/reshetovitsme/podcast-feed/internal/modules/feed/domain"
	"github.com/reshetovitsme/podcast-feed/internal/shared/config"
	httpServer "github.com/reshetovitsme/podcast-feed/internal/transport/http"
	"github.com/samber/do/v2"
	slogmulti "github.com/samber/slog-multi"
)

func main() {
	injector, err := di.Setup()
	if err != nil {
		slog.Error("Failed to setup dependency injection", "error", err)
		os.Exit(1)
	}

	cfg, err := do.Invoke[*config.Config](injector)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Text logs to stdout, errors additionally as JSON to stderr
	textHandler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel(cfg.AppEnv),
	})
	jsonHandler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})
	logger := slog.New(slogmulti.Fanout(textHandler, jsonHandler))
	slog.SetDefault(logger)

	server, err := do.Invoke[*httpServer.Server](injector)
	if err != nil {
		slog.Error("Failed to initialize HTTP server", "error", err)
		os.Exit(1)
	}
	server.SetLogger(logger)

	go func() {
		if err := server.Start(); err != nil {
			slog.Error("Failed to start HTTP server", "error", err)
			os.Exit(1)
		}
	}()

	slog.Info("Application started", "port", cfg.HTTPPort, "env", cfg.AppEnv, "config_file", cfg.ConfigFile)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	<-ctx.Done()
	slog.Info("Shutting down...")

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := di.Shutdown(shutdownCtx, injector); err != nil {
		slog.Error("Error during shutdown", "error", err)
	}
}

func logLevel(env domain.AppEnv) slog.Level {
	switch env {
	case domain.AppEnvLocal, domain.AppEnvDevelopment:
		return slog.LevelDebug
	case domain.AppEnvTesting:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
