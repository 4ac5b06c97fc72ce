package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/forcollegesake07/food-bridge/internal/domain/service"
)

const inlineDeliveryTimeout = 2 * time.Minute

// errPublisherClosed is returned when publishing after Close.
var errPublisherClosed = errors.New("publisher closed")

// inlinePublisher hands events to an in-process handler on a background goroutine.
// Delivery outlives the publishing request, the same way a broker push would.
type inlinePublisher struct {
	handler service.FanoutEventHandler
	logger  *slog.Logger

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

// NewInlinePublisher creates a publisher that delivers without a broker.
func NewInlinePublisher(handler service.FanoutEventHandler, logger *slog.Logger) service.EventPublisher {
	return &inlinePublisher{
		handler: handler,
		logger:  logger,
	}
}

func (p *inlinePublisher) PublishFanoutEvent(ctx context.Context, event *service.FanoutEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return errPublisherClosed
	}

	deliveryCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), inlineDeliveryTimeout)
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer cancel()

		attempted, err := p.handler.HandleFanoutEvent(deliveryCtx, event)
		if err != nil {
			p.logger.ErrorContext(deliveryCtx, "[InlinePubSub] Fan-out delivery failed",
				slog.String("event_id", event.ID),
				slog.Any("error", err),
			)

			return
		}

		p.logger.InfoContext(deliveryCtx, "[InlinePubSub] Fan-out delivered",
			slog.String("event_id", event.ID),
			slog.Int("attempted", attempted),
		)
	}()

	return nil
}

// Close stops accepting events and waits for in-flight deliveries.
func (p *inlinePublisher) Close() error {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()

	p.wg.Wait()

	return nil
}
