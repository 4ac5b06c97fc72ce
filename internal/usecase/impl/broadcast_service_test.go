package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	domainerrors "github.com/forcollegesake07/food-bridge/internal/domain/errors"
	mockRepo "github.com/forcollegesake07/food-bridge/internal/mocks/repository"
	mockSvc "github.com/forcollegesake07/food-bridge/internal/mocks/service"
	"github.com/forcollegesake07/food-bridge/internal/usecase"
)

func TestBroadcastService_CreateBroadcast(t *testing.T) {
	broadcastRepo := mockRepo.NewMockBroadcastRepository(t)
	feed := mockSvc.NewMockChangeFeed(t)
	srv := NewBroadcastService(BroadcastServiceParams{BroadcastRepo: broadcastRepo, Feed: feed, Logger: newDiscardLogger()})
	ctx := context.Background()
	admin := newSnapshot("admin-1", entity.RoleAdmin, nil)

	broadcastRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Broadcast")).Return(nil)
	feed.EXPECT().Publish(ctx, entity.CollectionBroadcasts).Return(nil)

	broadcast, err := srv.CreateBroadcast(ctx, admin, &usecase.CreateBroadcastInput{
		Title:          "Holiday hours",
		Message:        "Pickups close early on Friday",
		TargetAudience: entity.AudienceRole,
		TargetRole:     entity.RoleDriver,
		TargetUserID:   "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAudience(entity.RoleDriver), broadcast.Audience)
	assert.Equal(t, "admin-1", broadcast.CreatedBy)
	assert.Zero(t, broadcast.Attempted)
}

func TestBroadcastService_CreateBroadcast_Rejected(t *testing.T) {
	srv := NewBroadcastService(BroadcastServiceParams{
		BroadcastRepo: mockRepo.NewMockBroadcastRepository(t),
		Feed:          mockSvc.NewMockChangeFeed(t),
		Logger:        newDiscardLogger(),
	})
	ctx := context.Background()
	admin := newSnapshot("admin-1", entity.RoleAdmin, nil)

	tests := []struct {
		name  string
		input *usecase.CreateBroadcastInput
	}{
		{"role without role", &usecase.CreateBroadcastInput{Title: "t", Message: "m", TargetAudience: entity.AudienceRole}},
		{"specific without user", &usecase.CreateBroadcastInput{Title: "t", Message: "m", TargetAudience: entity.AudienceSpecific}},
		{"unknown audience", &usecase.CreateBroadcastInput{Title: "t", Message: "m", TargetAudience: "nobody"}},
		{"blank title", &usecase.CreateBroadcastInput{Title: " ", Message: "m", TargetAudience: entity.AudienceAll}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := srv.CreateBroadcast(ctx, admin, tt.input)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
		})
	}

	_, err := srv.CreateBroadcast(ctx, newSnapshot("d1", entity.RoleDriver, nil),
		&usecase.CreateBroadcastInput{Title: "t", Message: "m", TargetAudience: entity.AudienceAll})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestBroadcastService_ListBroadcasts_Paging(t *testing.T) {
	broadcastRepo := mockRepo.NewMockBroadcastRepository(t)
	srv := NewBroadcastService(BroadcastServiceParams{BroadcastRepo: broadcastRepo, Feed: mockSvc.NewMockChangeFeed(t), Logger: newDiscardLogger()})
	ctx := context.Background()

	broadcastRepo.EXPECT().List(ctx, 20, 0).Return([]*entity.Broadcast{}, nil).Once()
	broadcastRepo.EXPECT().List(ctx, 100, 40).Return([]*entity.Broadcast{}, nil).Once()

	_, err := srv.ListBroadcasts(ctx, 0, -5)
	require.NoError(t, err)
	_, err = srv.ListBroadcasts(ctx, 1000, 40)
	require.NoError(t, err)
}
