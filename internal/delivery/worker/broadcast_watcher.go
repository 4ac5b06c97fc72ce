package worker

import (
	"context"
	"log/slog"
	"sync"

	"go.uber.org/fx"

	"github.com/forcollegesake07/food-bridge/internal/delivery"
	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	"github.com/forcollegesake07/food-bridge/internal/usecase"
)

// broadcastWatcher pushes admin broadcasts to their audience until the app stops.
type broadcastWatcher struct {
	fanout usecase.NotificationFanoutUsecase
	logger *slog.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// WatcherParams holds dependencies for the broadcast watcher
type WatcherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Fanout usecase.NotificationFanoutUsecase
	Logger *slog.Logger
}

// NewBroadcastWatcher creates the broadcast watcher delivery
func NewBroadcastWatcher(params WatcherParams) delivery.Delivery {
	w := &broadcastWatcher{
		fanout: params.Fanout,
		logger: params.Logger,
		done:   make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: w.stop,
	})

	return w
}

// Serve blocks until stop is called or the change feed fails.
func (w *broadcastWatcher) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	w.mu.Lock()
	w.cancel = cancel
	w.mu.Unlock()
	defer close(w.done)
	defer cancel()

	w.logger.Info("Starting broadcast watcher")

	return w.fanout.WatchBroadcasts(ctx, func(b *entity.Broadcast) {
		w.logger.Info("[BroadcastWatcher] Broadcast delivered",
			slog.String("broadcast_id", b.ID.String()),
			slog.Int("attempted", b.Attempted),
		)
	})
}

func (w *broadcastWatcher) stop(ctx context.Context) error {
	w.mu.Lock()
	cancel := w.cancel
	w.mu.Unlock()
	if cancel == nil {
		return nil
	}

	w.logger.Info("Stopping broadcast watcher")
	cancel()

	select {
	case <-w.done:
	case <-ctx.Done():
	}

	return nil
}
