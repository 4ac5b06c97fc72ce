// Package changefeed signals collection changes to live queries.
package changefeed

import (
	"context"
	"log/slog"
	"sync"

	"github.com/forcollegesake07/food-bridge/internal/domain/service"
	"github.com/forcollegesake07/food-bridge/internal/infra/metrics"
)

// subscriber holds a single-slot signal channel. A pending signal absorbs any
// further ones until the reader drains it.
type subscriber struct {
	ch chan struct{}
}

// broker fans signals out to in-process subscribers.
type broker struct {
	mu      sync.Mutex
	subs    map[string]map[*subscriber]struct{}
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func newBroker(logger *slog.Logger, m *metrics.Metrics) *broker {
	return &broker{
		subs:    make(map[string]map[*subscriber]struct{}),
		logger:  logger,
		metrics: m,
	}
}

// NewMemoryFeed returns a change feed that only reaches subscribers in this process.
func NewMemoryFeed(logger *slog.Logger, m *metrics.Metrics) service.ChangeFeed {
	return newBroker(logger, m)
}

func (b *broker) Publish(_ context.Context, collection string) error {
	b.signal(collection)

	return nil
}

func (b *broker) Subscribe(collection string) (<-chan struct{}, func()) {
	sub := &subscriber{ch: make(chan struct{}, 1)}

	b.mu.Lock()
	set, ok := b.subs[collection]
	if !ok {
		set = make(map[*subscriber]struct{})
		b.subs[collection] = set
	}
	set[sub] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			delete(b.subs[collection], sub)
			if len(b.subs[collection]) == 0 {
				delete(b.subs, collection)
			}
			close(sub.ch)
		})
	}

	return sub.ch, cancel
}

// signal never blocks: a subscriber with a pending signal is skipped.
func (b *broker) signal(collection string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.metrics.IncChangeSignal(collection)

	for sub := range b.subs[collection] {
		select {
		case sub.ch <- struct{}{}:
		default:
		}
	}
}

func (b *broker) subscriberCount(collection string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.subs[collection])
}
