package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	domainerrors "github.com/forcollegesake07/food-bridge/internal/domain/errors"
	"github.com/forcollegesake07/food-bridge/internal/domain/repository"
	"github.com/forcollegesake07/food-bridge/internal/domain/service"
	mockRepo "github.com/forcollegesake07/food-bridge/internal/mocks/repository"
	mockSvc "github.com/forcollegesake07/food-bridge/internal/mocks/service"
	"github.com/forcollegesake07/food-bridge/internal/usecase"
)

type fanoutServiceFixtures struct {
	service       *fanoutService
	profileRepo   *mockRepo.MockProfileRepository
	broadcastRepo *mockRepo.MockBroadcastRepository
	pushSvc       *mockSvc.MockNotificationService
	feed          *mockSvc.MockChangeFeed
}

func createTestFanoutService(t *testing.T) fanoutServiceFixtures {
	fx := fanoutServiceFixtures{
		profileRepo:   mockRepo.NewMockProfileRepository(t),
		broadcastRepo: mockRepo.NewMockBroadcastRepository(t),
		pushSvc:       mockSvc.NewMockNotificationService(t),
		feed:          mockSvc.NewMockChangeFeed(t),
	}
	fx.service = NewFanoutService(FanoutServiceParams{
		ProfileRepo:   fx.profileRepo,
		BroadcastRepo: fx.broadcastRepo,
		PushSvc:       fx.pushSvc,
		Feed:          fx.feed,
		Logger:        newDiscardLogger(),
	}).(*fanoutService)

	return fx
}

func makeTokens(n int) []string {
	tokens := make([]string, n)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("token-%04d", i)
	}

	return tokens
}

func batchOf(size int) any {
	return mock.MatchedBy(func(batch []string) bool { return len(batch) == size })
}

func TestFanoutService_Dispatch_Batches(t *testing.T) {
	fx := createTestFanoutService(t)
	ctx := context.Background()
	msg := &usecase.PushMessage{Title: "Hello", Body: "World"}

	fx.pushSvc.EXPECT().SendBatchNotification(ctx, batchOf(500), "Hello", "World", mock.Anything).
		Return(500, 0, nil, nil).Times(2)
	fx.pushSvc.EXPECT().SendBatchNotification(ctx, batchOf(200), "Hello", "World", mock.Anything).
		Return(200, 0, nil, nil).Once()

	attempted := fx.service.Dispatch(ctx, makeTokens(1200), msg)
	assert.Equal(t, 1200, attempted)
}

func TestFanoutService_Dispatch_FailedBatchDoesNotStopTheRest(t *testing.T) {
	fx := createTestFanoutService(t)
	ctx := context.Background()
	tokens := makeTokens(1200)

	first := mock.MatchedBy(func(batch []string) bool { return len(batch) == 500 && batch[0] == tokens[0] })
	second := mock.MatchedBy(func(batch []string) bool { return len(batch) == 500 && batch[0] == tokens[500] })

	fx.pushSvc.EXPECT().SendBatchNotification(ctx, first, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, nil, errors.New("quota exceeded")).Once()
	fx.pushSvc.EXPECT().SendBatchNotification(ctx, second, mock.Anything, mock.Anything, mock.Anything).
		Return(500, 0, nil, nil).Once()
	fx.pushSvc.EXPECT().SendBatchNotification(ctx, batchOf(200), mock.Anything, mock.Anything, mock.Anything).
		Return(200, 0, nil, nil).Once()

	assert.Equal(t, 1200, fx.service.Dispatch(ctx, tokens, &usecase.PushMessage{Title: "t"}))
}

func TestFanoutService_Dispatch_ClearsInvalidTokens(t *testing.T) {
	fx := createTestFanoutService(t)
	ctx := context.Background()
	tokens := []string{"a", "b", "c"}

	fx.pushSvc.EXPECT().SendBatchNotification(ctx, tokens, "t", "b", mock.Anything).
		Return(1, 2, []string{"b", "c"}, nil)
	fx.profileRepo.EXPECT().ClearNotificationTokens(ctx, []string{"b", "c"}).Return(2, nil)

	assert.Equal(t, 3, fx.service.Dispatch(ctx, tokens, &usecase.PushMessage{Title: "t", Body: "b"}))
}

func TestFanoutService_Dispatch_Empty(t *testing.T) {
	fx := createTestFanoutService(t)

	assert.Zero(t, fx.service.Dispatch(context.Background(), nil, &usecase.PushMessage{}))
}

func TestFanoutService_ResolveAudience(t *testing.T) {
	fx := createTestFanoutService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().FindByRole(ctx, entity.RoleOrphanage).Return([]*entity.Profile{
		{ID: "o1", NotificationToken: "t1"},
		{ID: "o2"},
		{ID: "o3", NotificationToken: "t1"},
		{ID: "o4", NotificationToken: "t2"},
	}, nil)

	tokens, err := fx.service.ResolveAudience(ctx, entity.RoleAudience(entity.RoleOrphanage))
	require.NoError(t, err)
	assert.Equal(t, []string{"t1", "t2"}, tokens)
}

func TestFanoutService_ResolveAudience_Specific(t *testing.T) {
	fx := createTestFanoutService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().FindByID(ctx, "u1").Return(&entity.Profile{ID: "u1", NotificationToken: "t9"}, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrProfileNotFound)

	tokens, err := fx.service.ResolveAudience(ctx, entity.SpecificAudience("u1"))
	require.NoError(t, err)
	assert.Equal(t, []string{"t9"}, tokens)

	tokens, err = fx.service.ResolveAudience(ctx, entity.SpecificAudience("ghost"))
	require.NoError(t, err)
	assert.Empty(t, tokens)
}

func TestFanoutService_ResolveAudience_Invalid(t *testing.T) {
	fx := createTestFanoutService(t)

	_, err := fx.service.ResolveAudience(context.Background(), entity.Audience{Kind: entity.AudienceRole})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = fx.service.ResolveAudience(context.Background(), entity.Audience{Kind: "everyone"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestFanoutService_HandleFanoutEvent(t *testing.T) {
	fx := createTestFanoutService(t)
	ctx := context.Background()
	event := &service.FanoutEvent{
		ID:       "evt-1",
		Type:     service.FanoutPickupReady,
		Audience: entity.RoleAudience(entity.RoleDriver),
		Title:    "Pickup ready",
		Body:     "Rice from Bistro",
		Data:     map[string]string{"donation_id": "d1"},
	}

	fx.profileRepo.EXPECT().FindByRole(ctx, entity.RoleDriver).
		Return([]*entity.Profile{{ID: "d1", NotificationToken: "driver-token"}}, nil)
	fx.pushSvc.EXPECT().SendBatchNotification(ctx, []string{"driver-token"}, "Pickup ready", "Rice from Bistro",
		map[string]string{"donation_id": "d1", "event_id": "evt-1"}).
		Return(1, 0, nil, nil)

	attempted, err := fx.service.HandleFanoutEvent(ctx, event)
	require.NoError(t, err)
	assert.Equal(t, 1, attempted)
	assert.NotContains(t, event.Data, "event_id")
}

func TestFanoutService_WatchBroadcasts(t *testing.T) {
	fx := createTestFanoutService(t)
	fx.service.pollInterval = time.Hour
	mark := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	fx.service.now = func() time.Time { return mark }

	b1 := &entity.Broadcast{ID: uuid.New(), Title: "one", Audience: entity.Audience{Kind: entity.AudienceAll}, CreatedAt: mark}
	b2 := &entity.Broadcast{ID: uuid.New(), Title: "two", Audience: entity.Audience{Kind: entity.AudienceAll}, CreatedAt: mark.Add(time.Second)}
	b3 := &entity.Broadcast{ID: uuid.New(), Title: "three", Audience: entity.Audience{Kind: entity.AudienceAll}, CreatedAt: mark.Add(2 * time.Second)}

	signals := make(chan struct{}, 1)
	released := make(chan struct{})
	fx.feed.EXPECT().Subscribe(entity.CollectionBroadcasts).
		Return((<-chan struct{})(signals), func() { close(released) })

	fx.broadcastRepo.EXPECT().FindCreatedSince(mock.Anything, mark).Return([]*entity.Broadcast{b1, b2}, nil).Once()
	fx.broadcastRepo.EXPECT().FindCreatedSince(mock.Anything, mark.Add(time.Second)).Return([]*entity.Broadcast{b2, b3}, nil).Once()
	fx.profileRepo.EXPECT().FindAll(mock.Anything).
		Return([]*entity.Profile{{ID: "u1", NotificationToken: "t1"}, {ID: "u2", NotificationToken: "t2"}}, nil)
	fx.pushSvc.EXPECT().SendBatchNotification(mock.Anything, []string{"t1", "t2"}, mock.Anything, mock.Anything, mock.Anything).
		Return(2, 0, nil, nil).Times(3)
	fx.broadcastRepo.EXPECT().UpdateAttempted(mock.Anything, b1.ID, 2).Return(nil).Once()
	fx.broadcastRepo.EXPECT().UpdateAttempted(mock.Anything, b2.ID, 2).Return(nil).Once()
	fx.broadcastRepo.EXPECT().UpdateAttempted(mock.Anything, b3.ID, 2).Return(nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events := make(chan *entity.Broadcast, 8)
	done := make(chan error, 1)
	go func() {
		done <- fx.service.WatchBroadcasts(ctx, func(b *entity.Broadcast) { events <- b })
	}()

	next := func() *entity.Broadcast {
		select {
		case b := <-events:
			return b
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for a broadcast")

			return nil
		}
	}

	signals <- struct{}{}
	assert.Equal(t, "one", next().Title)
	assert.Equal(t, "two", next().Title)

	signals <- struct{}{}
	got := next()
	assert.Equal(t, "three", got.Title)
	assert.Equal(t, 2, got.Attempted)

	cancel()
	require.NoError(t, <-done)
	<-released
}

func TestFanoutService_WatchBroadcasts_FeedClosed(t *testing.T) {
	fx := createTestFanoutService(t)
	fx.service.pollInterval = time.Hour

	signals := make(chan struct{})
	close(signals)
	fx.feed.EXPECT().Subscribe(entity.CollectionBroadcasts).Return((<-chan struct{})(signals), func() {})

	err := fx.service.WatchBroadcasts(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed")
}
