package impl

import (
	"context"
	"log/slog"
	"sync"

	"github.com/pkg/errors"

	"github.com/forcollegesake07/food-bridge/internal/domain/service"
	"github.com/forcollegesake07/food-bridge/internal/infra/metrics"
	"github.com/forcollegesake07/food-bridge/internal/usecase"
)

// liveQuery re-runs a query whenever its collection is signalled.
type liveQuery struct {
	cancel context.CancelFunc
	once   sync.Once
}

func (q *liveQuery) Unsubscribe() {
	q.once.Do(q.cancel)
}

// startLiveQuery registers with the feed, delivers the first result before returning
// and then keeps delivering on one goroutine until ctx is done or the subscription
// is cancelled. Registration happens before the first query so no change is lost.
func startLiveQuery[T any](
	ctx context.Context,
	feed service.ChangeFeed,
	collection string,
	query func(context.Context) (T, error),
	onChange func(T),
	logger *slog.Logger,
	m *metrics.Metrics,
) (usecase.Subscription, error) {
	if onChange == nil {
		return nil, errors.New("onChange callback is required")
	}

	signals, release := feed.Subscribe(collection)

	initial, err := query(ctx)
	if err != nil {
		release()

		return nil, err
	}
	onChange(initial)

	runCtx, cancel := context.WithCancel(ctx)
	sub := &liveQuery{cancel: cancel}

	m.LiveSubscriptionOpened(collection)
	go func() {
		defer m.LiveSubscriptionClosed(collection)
		defer release()

		for {
			select {
			case <-runCtx.Done():
				return
			case _, ok := <-signals:
				if !ok {
					return
				}
			}

			result, err := query(runCtx)
			if runCtx.Err() != nil {
				return
			}
			if err != nil {
				logger.WarnContext(runCtx, "[LiveQuery] Re-query failed",
					slog.String("collection", collection),
					slog.Any("error", err),
				)

				continue
			}
			onChange(result)
		}
	}()

	return sub, nil
}
