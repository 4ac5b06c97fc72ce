package changefeed

import (
	"context"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/forcollegesake07/food-bridge/internal/errors"
	"github.com/forcollegesake07/food-bridge/internal/infra/metrics"
)

// redisFeed signals through a redis pub/sub channel.
type redisFeed struct {
	*broker

	client  *redis.Client
	channel string
}

func newRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse redis URL")
	}

	return redis.NewClient(opts), nil
}

func newRedisFeed(client *redis.Client, channel string, logger *slog.Logger, m *metrics.Metrics) *redisFeed {
	return &redisFeed{
		broker:  newBroker(logger, m),
		client:  client,
		channel: channel,
	}
}

func (f *redisFeed) Publish(ctx context.Context, collection string) error {
	if err := f.client.Publish(ctx, f.channel, collection).Err(); err != nil {
		return errors.Wrap(err, "failed to publish change")
	}

	return nil
}

// run relays channel messages until ctx is done. go-redis reconnects the
// subscription on its own.
func (f *redisFeed) run(ctx context.Context, ready chan<- struct{}) {
	pubsub := f.client.Subscribe(ctx, f.channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		f.logger.ErrorContext(ctx, "[ChangeFeed] Redis subscribe failed",
			slog.String("channel", f.channel),
			slog.Any("error", err),
		)
	}
	if ready != nil {
		close(ready)
	}

	f.logger.InfoContext(ctx, "[ChangeFeed] Listening for changes", slog.String("channel", f.channel))

	messages := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-messages:
			if !ok {
				return
			}
			f.signal(msg.Payload)
		}
	}
}
