package main

import (
	"context"
	"log/slog"
	"os"

	"circlecheck/config"
	"circlecheck/internal/delivery"
	"circlecheck/internal/delivery/api"
	"circlecheck/internal/delivery/api/middleware"
	"circlecheck/internal/delivery/api/router/handler"
	logs "circlecheck/internal/infra/log"
	"circlecheck/internal/infra/metrics"
	"circlecheck/internal/infra/notification"
	"circlecheck/internal/infra/persistence"
	"circlecheck/internal/infra/persistence/memory"
	"circlecheck/internal/infra/persistence/postgres"
	"circlecheck/internal/infra/pubsub"
	"circlecheck/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		pubsub.Module,
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			validateConfig,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		memory.NewSeededStore,
		metrics.NewRegistry,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewRepositories,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewPushGateway,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewNotificationDispatcher,
			impl.NewGeofenceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewHookAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewLocationHookHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// validateConfig refuses to start when the webhook could never succeed
func validateConfig(cfg *config.Config, logger *slog.Logger) error {
	if err := cfg.ValidateHook(); err != nil {
		logger.Error("Invalid configuration", slog.Any("error", err))

		return err
	}

	return nil
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
