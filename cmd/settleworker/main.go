package main

import (
	"context"
	"log/slog"
	"os"

	"paygate/config"
	"paygate/internal/delivery"
	"paygate/internal/delivery/worker"
	"paygate/internal/delivery/worker/handler"
	logs "paygate/internal/infra/log"
	"paygate/internal/infra/persistence/postgres"
	"paygate/internal/infra/pubsub"
	"paygate/internal/usecase/impl"

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
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
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
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionRepository,
			postgres.NewTransactionManager,
		),
	)
}

// The worker is the subscriber and settles every pushed event itself, so its
// publisher is always disabled.
func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			pubsub.NewNoopPublisher,
			impl.NewLedgerService,
			impl.NewWebhookService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
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
