//go:build integration

package changefeed

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

func TestRedisFeed_DeliversAcrossInstances(t *testing.T) {
	ctx := context.Background()

	container, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	testcontainers.CleanupContainer(t, container)

	url, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	newFeed := func() *redisFeed {
		client, err := newRedisClient(url)
		require.NoError(t, err)
		t.Cleanup(func() { _ = client.Close() })

		return newRedisFeed(client, "foodbridge_changes_test", testLogger(), nil)
	}

	writer := newFeed()
	reader := newFeed()

	runCtx, cancel := context.WithCancel(ctx)
	t.Cleanup(cancel)
	ready := make(chan struct{})
	go reader.run(runCtx, ready)
	<-ready

	signals, unsubscribe := reader.Subscribe("donations")
	defer unsubscribe()

	require.NoError(t, writer.Publish(ctx, "donations"))

	select {
	case <-signals:
	case <-time.After(5 * time.Second):
		t.Fatal("expected signal from the other instance")
	}
}
