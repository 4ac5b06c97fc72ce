package changefeed

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/forcollegesake07/food-bridge/config"
	"github.com/forcollegesake07/food-bridge/internal/domain/constants"
	"github.com/forcollegesake07/food-bridge/internal/domain/lifecycle"
	"github.com/forcollegesake07/food-bridge/internal/domain/service"
	"github.com/forcollegesake07/food-bridge/internal/errors"
	"github.com/forcollegesake07/food-bridge/internal/infra/metrics"
)

// Params holds dependencies for the change feed, injected by Fx
type Params struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Logger  *slog.Logger
	DB      *gorm.DB         `optional:"true"`
	Metrics *metrics.Metrics `optional:"true"`
}

// NewChangeFeed creates the change feed selected by configuration.
// The memory feed only connects live queries within one process.
func NewChangeFeed(params Params) (service.ChangeFeed, error) {
	cfg := params.Config.ChangeFeed
	logger := params.Logger

	provider := constants.ChangeFeedProviderMemory
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	switch provider {
	case constants.ChangeFeedProviderMemory:
		logger.Info("Using in-process change feed")

		return NewMemoryFeed(logger, params.Metrics), nil

	case constants.ChangeFeedProviderPostgres:
		if params.DB == nil {
			return nil, errors.New("postgres change feed requires a database")
		}
		feed := newPostgresFeed(params.DB, cfg.Channel, logger, params.Metrics)
		runCtx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})

		params.Lc.Append(fx.Hook{
			OnStart: func(context.Context) error {
				go func() {
					defer close(done)
					feed.run(runCtx)
				}()

				return nil
			},
			OnStop: func(ctx context.Context) error {
				cancel()
				select {
				case <-done:
				case <-ctx.Done():
				}

				return nil
			},
		})

		return feed, nil

	case constants.ChangeFeedProviderRedis:
		if cfg.RedisURL == "" {
			return nil, errors.New("redis URL is required for redis change feed")
		}
		client, err := newRedisClient(cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		feed := newRedisFeed(client, cfg.Channel, logger, params.Metrics)
		runCtx, cancel := context.WithCancel(context.Background())
		done := make(chan struct{})

		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancelStart := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancelStart()

				if err := client.Ping(ctx).Err(); err != nil {
					return errors.Wrap(err, "redis ping failed")
				}

				ready := make(chan struct{})
				go func() {
					defer close(done)
					feed.run(runCtx, ready)
				}()
				<-ready

				return nil
			},
			OnStop: func(ctx context.Context) error {
				cancel()
				select {
				case <-done:
				case <-ctx.Done():
				}

				return errors.WithStack(client.Close())
			},
		})

		return feed, nil

	default:
		return nil, errors.Errorf("unknown change feed provider: %s", provider)
	}
}
