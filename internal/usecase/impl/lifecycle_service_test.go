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

	"github.com/forcollegesake07/food-bridge/config"
	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	domainerrors "github.com/forcollegesake07/food-bridge/internal/domain/errors"
	"github.com/forcollegesake07/food-bridge/internal/domain/repository"
	"github.com/forcollegesake07/food-bridge/internal/domain/service"
	mockRepo "github.com/forcollegesake07/food-bridge/internal/mocks/repository"
	mockSvc "github.com/forcollegesake07/food-bridge/internal/mocks/service"
	"github.com/forcollegesake07/food-bridge/internal/usecase"
)

type lifecycleServiceFixtures struct {
	service      *lifecycleService
	txManager    *mockRepo.MockTransactionManager
	factory      *mockRepo.MockRepositoryFactory
	donationRepo *mockRepo.MockDonationRepository
	requestRepo  *mockRepo.MockRequestRepository
	profileRepo  *mockRepo.MockProfileRepository
	feed         *mockSvc.MockChangeFeed
	publisher    *mockSvc.MockEventPublisher
	emailSender  *mockSvc.MockEmailSender
	pushSvc      *mockSvc.MockNotificationService
}

var lifecycleNow = time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC)

func createTestLifecycleService(t *testing.T) lifecycleServiceFixtures {
	fx := lifecycleServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		factory:      mockRepo.NewMockRepositoryFactory(t),
		donationRepo: mockRepo.NewMockDonationRepository(t),
		requestRepo:  mockRepo.NewMockRequestRepository(t),
		profileRepo:  mockRepo.NewMockProfileRepository(t),
		feed:         mockSvc.NewMockChangeFeed(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
		emailSender:  mockSvc.NewMockEmailSender(t),
		pushSvc:      mockSvc.NewMockNotificationService(t),
	}

	fx.service = NewLifecycleService(LifecycleServiceParams{
		TxManager:    fx.txManager,
		DonationRepo: fx.donationRepo,
		RequestRepo:  fx.requestRepo,
		ProfileRepo:  fx.profileRepo,
		Feed:         fx.feed,
		Publisher:    fx.publisher,
		EmailSender:  fx.emailSender,
		PushSvc:      fx.pushSvc,
		Config:       &config.Config{Email: &config.EmailConfig{ClaimTemplateID: 11, ConfirmTemplateID: 12}},
		Logger:       newDiscardLogger(),
	}).(*lifecycleService)
	fx.service.now = func() time.Time { return lifecycleNow }

	return fx
}

// runInTx makes the transaction manager run the callback against the factory mock.
func (fx lifecycleServiceFixtures) runInTx() {
	fx.txManager.EXPECT().Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
	fx.factory.EXPECT().NewDonationRepository().Return(fx.donationRepo).Maybe()
	fx.factory.EXPECT().NewRequestRepository().Return(fx.requestRepo).Maybe()
}

func availableDonation() *entity.Donation {
	return &entity.Donation{
		ID:             uuid.New(),
		RestaurantID:   "r1",
		RestaurantName: "Bistro",
		RestaurantContact: entity.ContactInfo{
			Email: "bistro@example.com",
			Phone: "02-1234",
		},
		FoodName: "Rice",
		Servings: 12,
		Status:   entity.DonationAvailable,
		Location: &entity.Location{Lat: 25.03, Lng: 121.56},
	}
}

func claimed(d *entity.Donation, by string) *entity.Donation {
	c := *d
	c.Status = entity.DonationClaimed
	c.ClaimedBy = &by

	return &c
}

func restaurantProfile() *entity.Profile {
	return &entity.Profile{
		ID:                "r1",
		Role:              entity.RoleRestaurant,
		Name:              "Bistro",
		Email:             "bistro@example.com",
		NotificationToken: "restaurant-token",
	}
}

func TestLifecycleService_Claim_Success(t *testing.T) {
	fx := createTestLifecycleService(t)
	ctx := context.Background()
	snap := newSnapshot("o1", entity.RoleOrphanage, &entity.Location{Lat: 25.05, Lng: 121.5})
	donation := availableDonation()
	after := claimed(donation, "o1")

	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)
	fx.donationRepo.EXPECT().TransitionStatus(ctx, donation.ID, mock.MatchedBy(func(tr entity.DonationTransition) bool {
		return tr.From == entity.DonationAvailable &&
			tr.To == entity.DonationClaimed &&
			tr.ClaimedBy != nil && *tr.ClaimedBy == "o1" &&
			tr.RequestID == nil &&
			tr.At.Equal(lifecycleNow)
	})).Return(after, nil)
	fx.feed.EXPECT().Publish(ctx, entity.CollectionDonations).Return(nil)
	fx.profileRepo.EXPECT().FindByID(ctx, "r1").Return(restaurantProfile(), nil)
	fx.profileRepo.EXPECT().FindByID(ctx, "o1").Return(snap.Profile, nil)
	fx.emailSender.EXPECT().SendTemplate(ctx, mock.MatchedBy(func(msg *service.EmailMessage) bool {
		return msg.TemplateID == 11 &&
			len(msg.To) == 2 &&
			msg.To[0].Email == "bistro@example.com" &&
			msg.To[1].Email == "o1@example.com" &&
			msg.Params["food_quantity"] == "12" &&
			msg.Params["restaurant_maps_link"] != nil
	})).Return(nil).Once()
	fx.pushSvc.EXPECT().
		SendSingleNotification(ctx, "restaurant-token", "Donation claimed", mock.Anything, mock.Anything).
		Return(errors.New("fcm unavailable")).Once()
	fx.publisher.EXPECT().PublishFanoutEvent(ctx, mock.MatchedBy(func(e *service.FanoutEvent) bool {
		return e.Type == service.FanoutPickupReady && e.Audience == entity.RoleAudience(entity.RoleDriver)
	})).Return(nil)

	result, err := fx.service.Claim(ctx, snap, donation.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.DonationClaimed, result.Donation.Status)
	assert.True(t, result.Donation.IsClaimedBy("o1"))
	assert.Empty(t, result.Warnings)
}

func TestLifecycleService_Claim_FromConfirmed(t *testing.T) {
	fx := createTestLifecycleService(t)
	ctx := context.Background()
	donation := availableDonation()
	donation.Status = entity.DonationConfirmed

	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)

	_, err := fx.service.Claim(ctx, newSnapshot("o1", entity.RoleOrphanage, nil), donation.ID, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestLifecycleService_Claim_ConcurrentConflict(t *testing.T) {
	fx := createTestLifecycleService(t)
	ctx := context.Background()
	donation := availableDonation()

	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)
	fx.donationRepo.EXPECT().TransitionStatus(ctx, donation.ID, mock.Anything).
		Return(nil, repository.ErrStatusConflict)

	_, err := fx.service.Claim(ctx, newSnapshot("o2", entity.RoleOrphanage, nil), donation.ID, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestLifecycleService_Claim_WrongRole(t *testing.T) {
	fx := createTestLifecycleService(t)

	_, err := fx.service.Claim(context.Background(), newSnapshot("r1", entity.RoleRestaurant, nil), uuid.New(), nil)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestLifecycleService_Claim_NotFound(t *testing.T) {
	fx := createTestLifecycleService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.donationRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrDonationNotFound)

	_, err := fx.service.Claim(ctx, newSnapshot("o1", entity.RoleOrphanage, nil), id, nil)
	assert.ErrorIs(t, err, domainerrors.ErrDonationNotFound)
}

func TestLifecycleService_Claim_LinkedRequestMustBeOwnPending(t *testing.T) {
	fx := createTestLifecycleService(t)
	ctx := context.Background()
	donation := availableDonation()
	requestID := uuid.New()

	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)
	fx.requestRepo.EXPECT().FindByID(ctx, requestID).
		Return(&entity.Request{ID: requestID, OrphanageID: "someone-else", Status: entity.RequestPending}, nil)

	_, err := fx.service.Claim(ctx, newSnapshot("o1", entity.RoleOrphanage, nil), donation.ID, &requestID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
}

func TestLifecycleService_Claim_IncompleteContact(t *testing.T) {
	fx := createTestLifecycleService(t)
	ctx := context.Background()
	snap := newSnapshot("o1", entity.RoleOrphanage, nil)
	donation := availableDonation()
	donation.RestaurantContact.Email = ""
	after := claimed(donation, "o1")

	restaurant := restaurantProfile()
	restaurant.Email = ""

	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)
	fx.donationRepo.EXPECT().TransitionStatus(ctx, donation.ID, mock.Anything).Return(after, nil)
	fx.feed.EXPECT().Publish(ctx, entity.CollectionDonations).Return(nil)
	fx.profileRepo.EXPECT().FindByID(ctx, "r1").Return(restaurant, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, "o1").Return(snap.Profile, nil)

	result, err := fx.service.Claim(ctx, snap, donation.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, entity.DonationClaimed, result.Donation.Status)
	assert.Equal(t, []string{domainerrors.ErrIncompleteContactInfo.Message()}, result.Warnings)
}

func TestLifecycleService_Claim_EmailFailureIsWarning(t *testing.T) {
	fx := createTestLifecycleService(t)
	ctx := context.Background()
	snap := newSnapshot("o1", entity.RoleOrphanage, nil)
	donation := availableDonation()
	after := claimed(donation, "o1")

	restaurant := restaurantProfile()
	restaurant.NotificationToken = ""

	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)
	fx.donationRepo.EXPECT().TransitionStatus(ctx, donation.ID, mock.Anything).Return(after, nil)
	fx.feed.EXPECT().Publish(ctx, entity.CollectionDonations).Return(nil)
	fx.profileRepo.EXPECT().FindByID(ctx, "r1").Return(restaurant, nil)
	fx.profileRepo.EXPECT().FindByID(ctx, "o1").Return(nil, repository.ErrProfileNotFound)
	fx.emailSender.EXPECT().SendTemplate(ctx, mock.Anything).Return(errors.New("smtp down"))
	fx.publisher.EXPECT().PublishFanoutEvent(ctx, mock.Anything).Return(nil)

	result, err := fx.service.Claim(ctx, snap, donation.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"Email failed"}, result.Warnings)
}

func TestLifecycleService_Confirm_NotClaimant(t *testing.T) {
	fx := createTestLifecycleService(t)
	ctx := context.Background()
	donation := claimed(availableDonation(), "o1")

	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)

	_, err := fx.service.Confirm(ctx, newSnapshot("o2", entity.RoleOrphanage, nil), donation.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotClaimant)
}

func TestLifecycleService_Confirm_FromAvailable(t *testing.T) {
	fx := createTestLifecycleService(t)
	ctx := context.Background()
	donation := availableDonation()

	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)

	_, err := fx.service.Confirm(ctx, newSnapshot("o1", entity.RoleOrphanage, nil), donation.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func TestLifecycleService_Confirm_FulfillsLinkedRequest(t *testing.T) {
	fx := createTestLifecycleService(t)
	ctx := context.Background()
	snap := newSnapshot("o1", entity.RoleOrphanage, nil)
	requestID := uuid.New()
	donation := claimed(availableDonation(), "o1")
	donation.RequestID = &requestID
	after := *donation
	after.Status = entity.DonationConfirmed

	fx.runInTx()
	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)
	fx.donationRepo.EXPECT().TransitionStatus(ctx, donation.ID, mock.MatchedBy(func(tr entity.DonationTransition) bool {
		return tr.From == entity.DonationClaimed && tr.To == entity.DonationConfirmed
	})).Return(&after, nil)
	fx.requestRepo.EXPECT().MarkFulfilled(ctx, requestID, lifecycleNow).Return(nil)
	fx.feed.EXPECT().Publish(ctx, entity.CollectionDonations).Return(nil)
	fx.feed.EXPECT().Publish(ctx, entity.CollectionRequests).Return(nil)
	fx.profileRepo.EXPECT().FindByID(ctx, "r1").Return(restaurantProfile(), nil)
	fx.profileRepo.EXPECT().FindByID(ctx, "o1").Return(snap.Profile, nil)
	fx.emailSender.EXPECT().SendTemplate(ctx, mock.MatchedBy(func(msg *service.EmailMessage) bool {
		return msg.TemplateID == 12
	})).Return(nil)
	fx.pushSvc.EXPECT().
		SendSingleNotification(ctx, "restaurant-token", "Donation received", mock.Anything, mock.Anything).
		Return(nil)

	result, err := fx.service.Confirm(ctx, snap, donation.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DonationConfirmed, result.Donation.Status)
	assert.Empty(t, result.Warnings)
}

func TestLifecycleService_Confirm_LinkedRequestAlreadyFulfilled(t *testing.T) {
	fx := createTestLifecycleService(t)
	ctx := context.Background()
	snap := newSnapshot("o1", entity.RoleOrphanage, nil)
	requestID := uuid.New()
	donation := claimed(availableDonation(), "o1")
	donation.RequestID = &requestID
	after := *donation
	after.Status = entity.DonationConfirmed

	fx.runInTx()
	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)
	fx.donationRepo.EXPECT().TransitionStatus(ctx, donation.ID, mock.Anything).Return(&after, nil)
	fx.requestRepo.EXPECT().MarkFulfilled(ctx, requestID, lifecycleNow).Return(repository.ErrStatusConflict)
	fx.feed.EXPECT().Publish(ctx, mock.Anything).Return(nil)
	fx.profileRepo.EXPECT().FindByID(ctx, "r1").Return(restaurantProfile(), nil)
	fx.profileRepo.EXPECT().FindByID(ctx, "o1").Return(snap.Profile, nil)
	fx.emailSender.EXPECT().SendTemplate(ctx, mock.Anything).Return(nil)
	fx.pushSvc.EXPECT().SendSingleNotification(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	result, err := fx.service.Confirm(ctx, snap, donation.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DonationConfirmed, result.Donation.Status)
}

func TestLifecycleService_Confirm_ConcurrentConflict(t *testing.T) {
	fx := createTestLifecycleService(t)
	ctx := context.Background()
	donation := claimed(availableDonation(), "o1")

	fx.runInTx()
	fx.donationRepo.EXPECT().FindByID(ctx, donation.ID).Return(donation, nil)
	fx.donationRepo.EXPECT().TransitionStatus(ctx, donation.ID, mock.Anything).Return(nil, repository.ErrStatusConflict)

	_, err := fx.service.Confirm(ctx, newSnapshot("o1", entity.RoleOrphanage, nil), donation.ID)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidTransition)
}

func noticeInput() *usecase.NoticeInput {
	return &usecase.NoticeInput{
		Restaurant: &usecase.NoticeParty{ID: "r1", Name: "Bistro", Email: "bistro@example.com"},
		Orphanage:  &usecase.NoticeParty{Name: "Sunrise Home", Email: "sunrise@example.com", Location: &entity.Location{Lat: 1, Lng: 2}},
		Food:       &usecase.NoticeFood{Name: "Rice", Quantity: "12"},
	}
}

func TestLifecycleService_SendClaimNotice(t *testing.T) {
	fx := createTestLifecycleService(t)
	ctx := context.Background()

	fx.emailSender.EXPECT().SendTemplate(ctx, mock.MatchedBy(func(msg *service.EmailMessage) bool {
		_, hasRestaurantLat := msg.Params["restaurant_lat"]
		return msg.TemplateID == 11 &&
			msg.Params["orphanage_lat"] == 1.0 &&
			msg.Params["orphanage_maps_link"] == "https://www.google.com/maps?q=1,2" &&
			!hasRestaurantLat
	})).Return(nil)
	fx.profileRepo.EXPECT().FindByID(ctx, "r1").Return(restaurantProfile(), nil)
	fx.pushSvc.EXPECT().
		SendSingleNotification(ctx, "restaurant-token", "Donation claimed", "Sunrise Home: Rice", map[string]string(nil)).
		Return(nil)

	require.NoError(t, fx.service.SendClaimNotice(ctx, noticeInput()))
}

func TestLifecycleService_SendConfirmationNotice_Errors(t *testing.T) {
	fx := createTestLifecycleService(t)
	ctx := context.Background()

	err := fx.service.SendConfirmationNotice(ctx, &usecase.NoticeInput{})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	missing := noticeInput()
	missing.Orphanage.Email = ""
	err = fx.service.SendConfirmationNotice(ctx, missing)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	assert.NotErrorIs(t, err, domainerrors.ErrIncompleteContactInfo)

	fx.emailSender.EXPECT().SendTemplate(ctx, mock.Anything).Return(errors.New("quota exceeded"))
	err = fx.service.SendConfirmationNotice(ctx, noticeInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDownstreamDeliveryFailure)
	assert.Contains(t, err.Error(), "quota exceeded")
}
