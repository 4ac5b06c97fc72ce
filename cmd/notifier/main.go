package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"github.com/forcollegesake07/food-bridge/config"
	"github.com/forcollegesake07/food-bridge/internal/delivery"
	"github.com/forcollegesake07/food-bridge/internal/delivery/worker"
	"github.com/forcollegesake07/food-bridge/internal/delivery/worker/handler"
	"github.com/forcollegesake07/food-bridge/internal/infra/changefeed"
	"github.com/forcollegesake07/food-bridge/internal/infra/firebase"
	logs "github.com/forcollegesake07/food-bridge/internal/infra/log"
	"github.com/forcollegesake07/food-bridge/internal/infra/metrics"
	"github.com/forcollegesake07/food-bridge/internal/infra/notification"
	"github.com/forcollegesake07/food-bridge/internal/infra/persistence/postgres"
	"github.com/forcollegesake07/food-bridge/internal/usecase/impl"
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
		metrics.NewDefault,
		firebase.NewAppProvider,
		changefeed.NewChangeFeed,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewProfileRepository,
			postgres.NewBroadcastRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			notification.NewNotificationService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewFanoutService,
			impl.AsFanoutEventHandler,
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
			fx.Annotate(
				newBroadcastWatchers,
				fx.ResultTags(`group:"deliveries,flatten"`),
			),
		),
	)
}

// newBroadcastWatchers adds the broadcast watcher only when the notifier owns broadcasts.
func newBroadcastWatchers(cfg *config.Config, params worker.WatcherParams) []delivery.Delivery {
	if cfg.Notifier == nil || !cfg.Notifier.WatchBroadcasts {
		return nil
	}

	return []delivery.Delivery{worker.NewBroadcastWatcher(params)}
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
