package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "github.com/forcollegesake07/food-bridge/internal/delivery/context"
	"github.com/forcollegesake07/food-bridge/internal/domain/constants"
	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	domainerrors "github.com/forcollegesake07/food-bridge/internal/domain/errors"
	"github.com/forcollegesake07/food-bridge/internal/domain/geo"
	"github.com/forcollegesake07/food-bridge/internal/domain/repository"
	"github.com/forcollegesake07/food-bridge/internal/domain/service"
	"github.com/forcollegesake07/food-bridge/internal/domain/session"
	"github.com/forcollegesake07/food-bridge/internal/infra/metrics"
	"github.com/forcollegesake07/food-bridge/internal/usecase"
	"github.com/forcollegesake07/food-bridge/internal/util"
)

type donationService struct {
	donationRepo repository.DonationRepository
	feed         service.ChangeFeed
	publisher    service.EventPublisher
	qrCode       service.QRCodeService
	metrics      *metrics.Metrics
	logger       *slog.Logger
	now          func() time.Time
}

// DonationServiceParams holds dependencies for DonationService, injected by Fx.
type DonationServiceParams struct {
	fx.In

	DonationRepo repository.DonationRepository
	Feed         service.ChangeFeed
	Publisher    service.EventPublisher
	QRCode       service.QRCodeService
	Metrics      *metrics.Metrics `optional:"true"`
	Logger       *slog.Logger
}

// NewDonationService creates a new donation service instance.
func NewDonationService(params DonationServiceParams) usecase.DonationUsecase {
	return &donationService{
		donationRepo: params.DonationRepo,
		feed:         params.Feed,
		publisher:    params.Publisher,
		qrCode:       params.QRCode,
		metrics:      params.Metrics,
		logger:       params.Logger,
		now:          time.Now,
	}
}

func (srv *donationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateDonation records a new Available donation on behalf of the calling restaurant.
func (srv *donationService) CreateDonation(ctx context.Context, snap session.Snapshot, input *usecase.CreateDonationInput) (*entity.Donation, error) {
	if err := requireRole(snap, entity.RoleRestaurant); err != nil {
		return nil, err
	}
	if input == nil {
		return nil, domainerrors.ErrInvalidInput
	}

	foodName := util.SanitizeText(input.FoodName)
	if foodName == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("food name is required")
	}
	servings, err := util.ParsePositiveInt(input.Servings)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("servings must be a positive whole number")
	}

	profile := snap.Profile
	email := profile.Email
	if email == "" {
		email = snap.AuthUser.Email
	}

	now := srv.now().UTC()
	donation := &entity.Donation{
		ID:             uuid.New(),
		RestaurantID:   profile.ID,
		RestaurantName: profile.DisplayName(constants.DefaultRestaurantName),
		RestaurantContact: entity.ContactInfo{
			Email:   email,
			Phone:   profile.Phone,
			Address: profile.Address,
		},
		FoodName:  foodName,
		Servings:  servings,
		Status:    entity.DonationAvailable,
		Location:  snap.Location.Clone(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := srv.donationRepo.Create(ctx, donation); err != nil {
		return nil, errors.Wrap(err, "failed to create donation")
	}

	srv.metrics.IncDonationCreated()
	srv.log(ctx).Info("Donation created",
		slog.String("donation_id", donation.ID.String()),
		slog.String("restaurant_id", donation.RestaurantID),
		slog.Int("servings", donation.Servings),
	)
	signal(ctx, srv.log(ctx), srv.feed, entity.CollectionDonations)

	srv.announce(ctx, donation)

	return donation, nil
}

// announce tells orphanages about a new donation. Failure never undoes the donation.
func (srv *donationService) announce(ctx context.Context, donation *entity.Donation) {
	event := &service.FanoutEvent{
		ID:        uuid.NewString(),
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      service.FanoutDonationCreated,
		Audience:  entity.RoleAudience(entity.RoleOrphanage),
		Title:     "New food donation",
		Body:      fmt.Sprintf("%s is offering %s (%d servings)", donation.RestaurantName, donation.FoodName, donation.Servings),
		Data: map[string]string{
			"type":        string(service.FanoutDonationCreated),
			"donation_id": donation.ID.String(),
		},
	}
	if donation.Location != nil {
		event.Data["maps_link"] = geo.MapsLink(donation.Location)
	}

	if err := srv.publisher.PublishFanoutEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish donation fan-out",
			slog.String("donation_id", donation.ID.String()),
			slog.Any("error", err),
		)
	}
}

// SubscribeMine implements usecase.DonationUsecase.
func (srv *donationService) SubscribeMine(ctx context.Context, restaurantID string, onChange func([]*entity.Donation)) (usecase.Subscription, error) {
	return startLiveQuery(ctx, srv.feed, entity.CollectionDonations,
		func(ctx context.Context) ([]*entity.Donation, error) {
			return srv.ListMine(ctx, restaurantID)
		},
		onChange, srv.log(ctx), srv.metrics,
	)
}

// ListMine returns the restaurant's donations, newest first.
func (srv *donationService) ListMine(ctx context.Context, restaurantID string) ([]*entity.Donation, error) {
	donations, err := srv.donationRepo.FindByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list donations")
	}

	return donations, nil
}

// PickupQR implements usecase.DonationUsecase.
func (srv *donationService) PickupQR(ctx context.Context, snap session.Snapshot, donationID uuid.UUID) ([]byte, error) {
	if err := requireRole(snap, entity.RoleRestaurant); err != nil {
		return nil, err
	}

	donation, err := srv.donationRepo.FindByID(ctx, donationID)
	if err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return nil, domainerrors.ErrDonationNotFound
		}

		return nil, errors.Wrap(err, "failed to load donation")
	}
	if donation.RestaurantID != snap.Profile.ID {
		return nil, domainerrors.ErrForbidden.WithDetails("donation belongs to another restaurant")
	}

	png, err := srv.qrCode.GeneratePickupQR(donation.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate pickup QR")
	}

	return png, nil
}

// ListClaimed implements usecase.DonationUsecase.
func (srv *donationService) ListClaimed(ctx context.Context) ([]*entity.Donation, error) {
	donations, err := srv.donationRepo.FindByStatus(ctx, entity.DonationClaimed)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list claimed donations")
	}

	return donations, nil
}
