package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
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

type requestServiceFixtures struct {
	service     usecase.RequestUsecase
	requestRepo *mockRepo.MockRequestRepository
	feed        *mockSvc.MockChangeFeed
	publisher   *mockSvc.MockEventPublisher
}

func createTestRequestService(t *testing.T) requestServiceFixtures {
	fx := requestServiceFixtures{
		requestRepo: mockRepo.NewMockRequestRepository(t),
		feed:        mockSvc.NewMockChangeFeed(t),
		publisher:   mockSvc.NewMockEventPublisher(t),
	}
	fx.service = NewRequestService(RequestServiceParams{
		RequestRepo: fx.requestRepo,
		Feed:        fx.feed,
		Publisher:   fx.publisher,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func TestRequestService_CreateRequest_UsesProfileLocation(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	home := &entity.Location{Lat: 25.1, Lng: 121.6}
	snap := newSnapshot("o1", entity.RoleOrphanage, home)

	fx.requestRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Request")).Return(nil)
	fx.feed.EXPECT().Publish(ctx, entity.CollectionRequests).Return(nil)
	fx.publisher.EXPECT().PublishFanoutEvent(ctx, mock.MatchedBy(func(e *service.FanoutEvent) bool {
		return e.Type == service.FanoutRequestCreated &&
			e.Audience == entity.RoleAudience(entity.RoleRestaurant) &&
			e.Data["maps_link"] == "https://www.google.com/maps?q=25.1,121.6"
	})).Return(nil)

	request, err := fx.service.CreateRequest(ctx, snap, &usecase.CreateRequestInput{ItemNeeded: "Milk", Quantity: "20"})
	require.NoError(t, err)
	assert.Equal(t, entity.RequestPending, request.Status)
	assert.Equal(t, 20, request.Quantity)
	assert.Equal(t, "o1", request.OrphanageID)
	assert.Equal(t, home, request.Location)
}

func TestRequestService_CreateRequest_ExplicitLocation(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	snap := newSnapshot("o1", entity.RoleOrphanage, &entity.Location{Lat: 25.1, Lng: 121.6})
	pinned := &entity.Location{Lat: 24, Lng: 120}

	fx.requestRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.feed.EXPECT().Publish(ctx, entity.CollectionRequests).Return(nil)
	fx.publisher.EXPECT().PublishFanoutEvent(ctx, mock.Anything).Return(nil)

	request, err := fx.service.CreateRequest(ctx, snap, &usecase.CreateRequestInput{ItemNeeded: "Milk", Quantity: "1", Location: pinned})
	require.NoError(t, err)
	assert.Equal(t, pinned, request.Location)
}

func TestRequestService_CreateRequest_Rejected(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	snap := newSnapshot("o1", entity.RoleOrphanage, nil)

	_, err := fx.service.CreateRequest(ctx, snap, &usecase.CreateRequestInput{ItemNeeded: "Milk", Quantity: "0"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = fx.service.CreateRequest(ctx, snap, &usecase.CreateRequestInput{ItemNeeded: "", Quantity: "2"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = fx.service.CreateRequest(ctx, newSnapshot("r1", entity.RoleRestaurant, nil),
		&usecase.CreateRequestInput{ItemNeeded: "Milk", Quantity: "2"})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestRequestService_FulfillRequest(t *testing.T) {
	fx := createTestRequestService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.requestRepo.EXPECT().FindByID(ctx, id).
		Return(&entity.Request{ID: id, OrphanageID: "o1", Status: entity.RequestPending}, nil)
	fx.requestRepo.EXPECT().MarkFulfilled(ctx, id, mock.Anything).Return(nil)
	fx.feed.EXPECT().Publish(ctx, entity.CollectionRequests).Return(nil)

	require.NoError(t, fx.service.FulfillRequest(ctx, newSnapshot("o1", entity.RoleOrphanage, nil), id))
}

func TestRequestService_FulfillRequest_Errors(t *testing.T) {
	ctx := context.Background()
	snap := newSnapshot("o1", entity.RoleOrphanage, nil)

	t.Run("other orphanage", func(t *testing.T) {
		fx := createTestRequestService(t)
		id := uuid.New()
		fx.requestRepo.EXPECT().FindByID(ctx, id).
			Return(&entity.Request{ID: id, OrphanageID: "o2", Status: entity.RequestPending}, nil)

		assert.ErrorIs(t, fx.service.FulfillRequest(ctx, snap, id), domainerrors.ErrForbidden)
	})

	t.Run("already fulfilled", func(t *testing.T) {
		fx := createTestRequestService(t)
		id := uuid.New()
		fx.requestRepo.EXPECT().FindByID(ctx, id).
			Return(&entity.Request{ID: id, OrphanageID: "o1", Status: entity.RequestFulfilled}, nil)

		assert.ErrorIs(t, fx.service.FulfillRequest(ctx, snap, id), domainerrors.ErrInvalidTransition)
	})

	t.Run("fulfilled concurrently", func(t *testing.T) {
		fx := createTestRequestService(t)
		id := uuid.New()
		fx.requestRepo.EXPECT().FindByID(ctx, id).
			Return(&entity.Request{ID: id, OrphanageID: "o1", Status: entity.RequestPending}, nil)
		fx.requestRepo.EXPECT().MarkFulfilled(ctx, id, mock.Anything).Return(repository.ErrStatusConflict)

		assert.ErrorIs(t, fx.service.FulfillRequest(ctx, snap, id), domainerrors.ErrInvalidTransition)
	})

	t.Run("missing", func(t *testing.T) {
		fx := createTestRequestService(t)
		id := uuid.New()
		fx.requestRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrRequestNotFound)

		assert.ErrorIs(t, fx.service.FulfillRequest(ctx, snap, id), domainerrors.ErrRequestNotFound)
	})
}
