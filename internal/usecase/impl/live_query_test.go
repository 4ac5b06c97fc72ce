package impl

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forcollegesake07/food-bridge/internal/infra/changefeed"
	mockSvc "github.com/forcollegesake07/food-bridge/internal/mocks/service"
)

func TestStartLiveQuery_InitialErrorReleases(t *testing.T) {
	feed := mockSvc.NewMockChangeFeed(t)
	released := false
	feed.EXPECT().Subscribe("donations").Return(make(chan struct{}), func() { released = true })

	_, err := startLiveQuery(context.Background(), feed, "donations",
		func(context.Context) (int, error) { return 0, errors.New("query failed") },
		func(int) {}, newDiscardLogger(), nil,
	)
	require.Error(t, err)
	assert.True(t, released)
}

func TestStartLiveQuery_StopsOnUnsubscribe(t *testing.T) {
	feed := changefeed.NewMemoryFeed(newDiscardLogger(), nil)
	ctx := context.Background()
	calls := make(chan int, 8)
	n := 0

	sub, err := startLiveQuery(ctx, feed, "requests",
		func(context.Context) (int, error) { n++; return n, nil },
		func(v int) { calls <- v }, newDiscardLogger(), nil,
	)
	require.NoError(t, err)
	assert.Equal(t, 1, <-calls)

	require.NoError(t, feed.Publish(ctx, "requests"))
	select {
	case v := <-calls:
		assert.Equal(t, 2, v)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a re-query")
	}

	sub.Unsubscribe()
	sub.Unsubscribe()

	// releasing happens on the query goroutine; give it a moment to exit
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, feed.Publish(ctx, "requests"))

	select {
	case v := <-calls:
		t.Fatalf("unexpected delivery after unsubscribe: %d", v)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestStartLiveQuery_RequiresCallback(t *testing.T) {
	_, err := startLiveQuery[int](context.Background(), mockSvc.NewMockChangeFeed(t), "x",
		func(context.Context) (int, error) { return 0, nil }, nil, newDiscardLogger(), nil)
	assert.Error(t, err)
}
