package di

import (
	"context"
	"log/slog"

	feedRepo "github.com/reshetovitsme/podcast-feed/internal/modules/feed/repository"
	feedService "github.com/reshetovitsme/podcast-feed/internal/modules/feed/service"
	"github.com/reshetovitsme/podcast-feed/internal/shared/config"
	httpServer "github.com/reshetovitsme/podcast-feed/internal/transport/http"
	"github.com/samber/do/v2"
	"github.com/samber/oops"
)

// Setup initializes the dependency injection container
func Setup() (do.Injector, error) {
	return SetupWith(config.Load)
}

// SetupWith is Setup with a custom config loader
func SetupWith(load func() (*config.Config, error)) (do.Injector, error) {
	injector := do.New()

	do.Provide(injector, func(i do.Injector) (*config.Config, error) {
		cfg, err := load()
		if err != nil {
			return nil, oops.With("context", "failed to load config").Wrap(err)
		}
		return cfg, nil
	})

	do.Provide(injector, func(i do.Injector) (feedRepo.Repository, error) {
		cfg := do.MustInvoke[*config.Config](i)
		repo, err := feedRepo.NewFileStorage(cfg.FeedsPath)
		if err != nil {
			return nil, oops.With("feeds_path", cfg.FeedsPath, "context", "failed to initialize feed repository").Wrap(err)
		}
		return repo, nil
	})

	do.Provide(injector, func(i do.Injector) (*feedService.Service, error) {
		repo := do.MustInvoke[feedRepo.Repository](i)
		return feedService.New(repo), nil
	})

	do.Provide(injector, func(i do.Injector) (*httpServer.Server, error) {
		cfg := do.MustInvoke[*config.Config](i)
		svc := do.MustInvoke[*feedService.Service](i)
		server := httpServer.New(cfg, svc)
		server.SetLogger(slog.Default())
		return server, nil
	})

	return injector, nil
}

// Shutdown gracefully shuts down all services
func Shutdown(ctx context.Context, injector do.Injector) error {
	if server, err := do.Invoke[*httpServer.Server](injector); err == nil && server != nil {
		if err := server.Shutdown(ctx); err != nil {
			return oops.With("context", "failed to stop http server").Wrap(err)
		}
	}
	return nil
}
