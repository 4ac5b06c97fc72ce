package impl

import (
	"context"
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
	"github.com/forcollegesake07/food-bridge/internal/domain/session"
	"github.com/forcollegesake07/food-bridge/internal/infra/changefeed"
	mockRepo "github.com/forcollegesake07/food-bridge/internal/mocks/repository"
	mockSvc "github.com/forcollegesake07/food-bridge/internal/mocks/service"
	"github.com/forcollegesake07/food-bridge/internal/usecase"
)

type donationServiceFixtures struct {
	service      *donationService
	donationRepo *mockRepo.MockDonationRepository
	feed         *mockSvc.MockChangeFeed
	publisher    *mockSvc.MockEventPublisher
	qrCode       *mockSvc.MockQRCodeService
}

func createTestDonationService(t *testing.T) donationServiceFixtures {
	donationRepo := mockRepo.NewMockDonationRepository(t)
	feed := mockSvc.NewMockChangeFeed(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	qrCode := mockSvc.NewMockQRCodeService(t)

	srv := NewDonationService(DonationServiceParams{
		DonationRepo: donationRepo,
		Feed:         feed,
		Publisher:    publisher,
		QRCode:       qrCode,
		Logger:       newDiscardLogger(),
	}).(*donationService)
	srv.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }

	return donationServiceFixtures{
		service:      srv,
		donationRepo: donationRepo,
		feed:         feed,
		publisher:    publisher,
		qrCode:       qrCode,
	}
}

func TestDonationService_CreateDonation_InvalidServings(t *testing.T) {
	for _, servings := range []string{"0", "abc", "2.5", "-1", ""} {
		t.Run(servings, func(t *testing.T) {
			fx := createTestDonationService(t)
			snap := newSnapshot("r1", entity.RoleRestaurant, nil)

			_, err := fx.service.CreateDonation(context.Background(), snap, &usecase.CreateDonationInput{
				FoodName: "Rice",
				Servings: servings,
			})
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
		})
	}
}

func TestDonationService_CreateDonation_Success(t *testing.T) {
	fx := createTestDonationService(t)
	ctx := context.Background()
	loc := &entity.Location{Lat: 25.03, Lng: 121.56}
	snap := newSnapshot("r1", entity.RoleRestaurant, loc)

	var stored *entity.Donation
	fx.donationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Donation")).
		Run(func(_ context.Context, d *entity.Donation) { stored = d }).
		Return(nil)
	fx.feed.EXPECT().Publish(ctx, entity.CollectionDonations).Return(nil)
	fx.publisher.EXPECT().PublishFanoutEvent(ctx, mock.MatchedBy(func(e *service.FanoutEvent) bool {
		return e.Type == service.FanoutDonationCreated &&
			e.Audience == entity.RoleAudience(entity.RoleOrphanage) &&
			e.Data["maps_link"] != "" &&
			e.ID != ""
	})).Return(nil)

	donation, err := fx.service.CreateDonation(ctx, snap, &usecase.CreateDonationInput{
		FoodName: "  <b>Rice</b> ",
		Servings: "3",
	})
	require.NoError(t, err)
	assert.Same(t, stored, donation)
	assert.Equal(t, entity.DonationAvailable, donation.Status)
	assert.Equal(t, 3, donation.Servings)
	assert.Equal(t, "Rice", donation.FoodName)
	assert.Equal(t, "r1", donation.RestaurantID)
	assert.Equal(t, "Profile r1", donation.RestaurantName)
	assert.Equal(t, "r1@example.com", donation.RestaurantContact.Email)
	assert.Equal(t, loc, donation.Location)
	assert.NotSame(t, loc, donation.Location)
	assert.Nil(t, donation.ClaimedBy)
	assert.Equal(t, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC), donation.CreatedAt)
}

func TestDonationService_CreateDonation_Fallbacks(t *testing.T) {
	fx := createTestDonationService(t)
	ctx := context.Background()
	snap := newSnapshot("r1", entity.RoleRestaurant, nil)
	snap.Profile.Name = ""
	snap.Profile.Email = ""
	snap.AuthUser.Email = "login@example.com"

	fx.donationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.feed.EXPECT().Publish(ctx, entity.CollectionDonations).Return(nil)
	fx.publisher.EXPECT().PublishFanoutEvent(ctx, mock.MatchedBy(func(e *service.FanoutEvent) bool {
		_, hasLink := e.Data["maps_link"]
		return !hasLink
	})).Return(nil)

	donation, err := fx.service.CreateDonation(ctx, snap, &usecase.CreateDonationInput{FoodName: "Bread", Servings: "4.0"})
	require.NoError(t, err)
	assert.Equal(t, "Unnamed Restaurant", donation.RestaurantName)
	assert.Equal(t, "login@example.com", donation.RestaurantContact.Email)
	assert.Equal(t, 4, donation.Servings)
	assert.Nil(t, donation.Location)
}

func TestDonationService_CreateDonation_PublishFailureIsTolerated(t *testing.T) {
	fx := createTestDonationService(t)
	ctx := context.Background()
	snap := newSnapshot("r1", entity.RoleRestaurant, nil)

	fx.donationRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.feed.EXPECT().Publish(ctx, entity.CollectionDonations).Return(errors.New("feed down"))
	fx.publisher.EXPECT().PublishFanoutEvent(ctx, mock.Anything).Return(errors.New("topic unavailable"))

	donation, err := fx.service.CreateDonation(ctx, snap, &usecase.CreateDonationInput{FoodName: "Soup", Servings: "10"})
	require.NoError(t, err)
	assert.Equal(t, 10, donation.Servings)
}

func TestDonationService_CreateDonation_Rejected(t *testing.T) {
	fx := createTestDonationService(t)
	ctx := context.Background()
	input := &usecase.CreateDonationInput{FoodName: "Soup", Servings: "1"}

	_, err := fx.service.CreateDonation(ctx, session.Snapshot{}, input)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)

	_, err = fx.service.CreateDonation(ctx, newSnapshot("o1", entity.RoleOrphanage, nil), input)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = fx.service.CreateDonation(ctx, newSnapshot("r1", entity.RoleRestaurant, nil),
		&usecase.CreateDonationInput{FoodName: "   ", Servings: "1"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestDonationService_CreateDonation_RepositoryError(t *testing.T) {
	fx := createTestDonationService(t)
	ctx := context.Background()

	fx.donationRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.New("insert failed"))

	_, err := fx.service.CreateDonation(ctx, newSnapshot("r1", entity.RoleRestaurant, nil),
		&usecase.CreateDonationInput{FoodName: "Soup", Servings: "1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create donation")
}

func TestDonationService_PickupQR(t *testing.T) {
	fx := createTestDonationService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.donationRepo.EXPECT().FindByID(ctx, id).Return(&entity.Donation{ID: id, RestaurantID: "r1"}, nil)
	fx.qrCode.EXPECT().GeneratePickupQR(id).Return([]byte("png"), nil)

	png, err := fx.service.PickupQR(ctx, newSnapshot("r1", entity.RoleRestaurant, nil), id)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}

func TestDonationService_PickupQR_OtherRestaurant(t *testing.T) {
	fx := createTestDonationService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.donationRepo.EXPECT().FindByID(ctx, id).Return(&entity.Donation{ID: id, RestaurantID: "r2"}, nil)

	_, err := fx.service.PickupQR(ctx, newSnapshot("r1", entity.RoleRestaurant, nil), id)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestDonationService_PickupQR_NotFound(t *testing.T) {
	fx := createTestDonationService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.donationRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrDonationNotFound)

	_, err := fx.service.PickupQR(ctx, newSnapshot("r1", entity.RoleRestaurant, nil), id)
	assert.ErrorIs(t, err, domainerrors.ErrDonationNotFound)
}

func TestDonationService_SubscribeMine_RequeriesOnChange(t *testing.T) {
	donationRepo := mockRepo.NewMockDonationRepository(t)
	feed := changefeed.NewMemoryFeed(newDiscardLogger(), nil)
	srv := NewDonationService(DonationServiceParams{
		DonationRepo: donationRepo,
		Feed:         feed,
		Logger:       newDiscardLogger(),
	})
	ctx := context.Background()

	first := []*entity.Donation{{ID: uuid.New(), RestaurantID: "r1"}}
	second := append([]*entity.Donation{{ID: uuid.New(), RestaurantID: "r1"}}, first...)
	donationRepo.EXPECT().FindByRestaurant(mock.Anything, "r1").Return(first, nil).Once()
	donationRepo.EXPECT().FindByRestaurant(mock.Anything, "r1").Return(second, nil)

	updates := make(chan []*entity.Donation, 4)
	sub, err := srv.SubscribeMine(ctx, "r1", func(d []*entity.Donation) { updates <- d })
	require.NoError(t, err)
	defer sub.Unsubscribe()

	select {
	case got := <-updates:
		assert.Len(t, got, 1)
	default:
		t.Fatal("initial snapshot must be delivered before SubscribeMine returns")
	}

	require.NoError(t, feed.Publish(ctx, entity.CollectionDonations))

	select {
	case got := <-updates:
		assert.Len(t, got, 2)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a re-query after the change signal")
	}
}

func TestDonationService_ListClaimed(t *testing.T) {
	fx := createTestDonationService(t)
	ctx := context.Background()
	claimed := []*entity.Donation{{ID: uuid.New(), Status: entity.DonationClaimed}}

	fx.donationRepo.EXPECT().FindByStatus(ctx, entity.DonationClaimed).Return(claimed, nil)

	got, err := fx.service.ListClaimed(ctx)
	require.NoError(t, err)
	assert.Equal(t, claimed, got)
}
