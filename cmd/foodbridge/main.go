package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"github.com/forcollegesake07/food-bridge/config"
	"github.com/forcollegesake07/food-bridge/internal/delivery"
	"github.com/forcollegesake07/food-bridge/internal/delivery/api"
	"github.com/forcollegesake07/food-bridge/internal/delivery/api/live"
	"github.com/forcollegesake07/food-bridge/internal/delivery/api/middleware"
	"github.com/forcollegesake07/food-bridge/internal/delivery/api/router/handler"
	"github.com/forcollegesake07/food-bridge/internal/infra/changefeed"
	"github.com/forcollegesake07/food-bridge/internal/infra/email"
	"github.com/forcollegesake07/food-bridge/internal/infra/firebase"
	"github.com/forcollegesake07/food-bridge/internal/infra/identity"
	logs "github.com/forcollegesake07/food-bridge/internal/infra/log"
	"github.com/forcollegesake07/food-bridge/internal/infra/metrics"
	"github.com/forcollegesake07/food-bridge/internal/infra/notification"
	"github.com/forcollegesake07/food-bridge/internal/infra/persistence/postgres"
	"github.com/forcollegesake07/food-bridge/internal/infra/pubsub"
	"github.com/forcollegesake07/food-bridge/internal/infra/qrcode"
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
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
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
			postgres.NewDonationRepository,
			postgres.NewRequestRepository,
			postgres.NewBroadcastRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			identity.NewIdentityProvider,
			notification.NewNotificationService,
			pubsub.NewEventPublisher,
			email.NewEmailSender,
			qrcode.NewPickupQRService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewGateService,
			impl.NewProfileService,
			impl.NewDonationService,
			impl.NewMatchService,
			impl.NewRequestService,
			impl.NewLifecycleService,
			impl.NewBroadcastService,
			impl.NewFanoutService,
			// The inline publisher delivers fan-out events in this process
			impl.AsFanoutEventHandler,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			live.NewStreamer,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewProfileHandler,
			handler.NewRestaurantHandler,
			handler.NewOrphanageHandler,
			handler.NewDriverHandler,
			handler.NewAdminHandler,
			handler.NewNoticeHandler,
			handler.NewTestHandler,
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
