package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"

	"github.com/forcollegesake07/food-bridge/config"
	deliverycontext "github.com/forcollegesake07/food-bridge/internal/delivery/context"
	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	domainerrors "github.com/forcollegesake07/food-bridge/internal/domain/errors"
	"github.com/forcollegesake07/food-bridge/internal/domain/geo"
	"github.com/forcollegesake07/food-bridge/internal/domain/repository"
	"github.com/forcollegesake07/food-bridge/internal/domain/service"
	"github.com/forcollegesake07/food-bridge/internal/domain/session"
	"github.com/forcollegesake07/food-bridge/internal/infra/metrics"
	"github.com/forcollegesake07/food-bridge/internal/usecase"
)

// Transition outcomes recorded in metrics.
const (
	outcomeOK          = "ok"
	outcomeInvalid     = "invalid"
	outcomeConflict    = "conflict"
	outcomeNotClaimant = "not_claimant"
	outcomeError       = "error"
)

const warningEmailFailed = "Email failed"

type lifecycleService struct {
	txManager     repository.TransactionManager
	donationRepo  repository.DonationRepository
	requestRepo   repository.RequestRepository
	profileRepo   repository.ProfileRepository
	feed          service.ChangeFeed
	publisher     service.EventPublisher
	emailSender   service.EmailSender
	pushSvc       service.NotificationService
	claimTemplate int64
	confirmTmpl   int64
	metrics       *metrics.Metrics
	logger        *slog.Logger
	now           func() time.Time
}

// LifecycleServiceParams holds dependencies for LifecycleService, injected by Fx.
type LifecycleServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	DonationRepo repository.DonationRepository
	RequestRepo  repository.RequestRepository
	ProfileRepo  repository.ProfileRepository
	Feed         service.ChangeFeed
	Publisher    service.EventPublisher
	EmailSender  service.EmailSender
	PushSvc      service.NotificationService
	Config       *config.Config
	Metrics      *metrics.Metrics `optional:"true"`
	Logger       *slog.Logger
}

// NewLifecycleService creates a new lifecycle coordinator.
func NewLifecycleService(params LifecycleServiceParams) usecase.LifecycleUsecase {
	srv := &lifecycleService{
		txManager:     params.TxManager,
		donationRepo:  params.DonationRepo,
		requestRepo:   params.RequestRepo,
		profileRepo:   params.ProfileRepo,
		feed:          params.Feed,
		publisher:     params.Publisher,
		emailSender:   params.EmailSender,
		pushSvc:       params.PushSvc,
		claimTemplate: 1,
		confirmTmpl:   2,
		metrics:       params.Metrics,
		logger:        params.Logger,
		now:           time.Now,
	}
	if params.Config != nil && params.Config.Email != nil {
		if params.Config.Email.ClaimTemplateID != 0 {
			srv.claimTemplate = params.Config.Email.ClaimTemplateID
		}
		if params.Config.Email.ConfirmTemplateID != 0 {
			srv.confirmTmpl = params.Config.Email.ConfirmTemplateID
		}
	}

	return srv
}

func (srv *lifecycleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// loadDonation fetches the donation and computes the status the event leads to.
func (srv *lifecycleService) loadDonation(ctx context.Context, donationID uuid.UUID, event entity.DonationEvent) (*entity.Donation, entity.DonationStatus, error) {
	donation, err := srv.donationRepo.FindByID(ctx, donationID)
	if err != nil {
		if errors.Is(err, repository.ErrDonationNotFound) {
			return nil, "", domainerrors.ErrDonationNotFound
		}

		return nil, "", errors.Wrap(err, "failed to load donation")
	}

	next, err := donation.Status.Next(event)
	if err != nil {
		srv.metrics.ObserveTransition(string(event), outcomeInvalid)

		return nil, "", errors.Wrapf(domainerrors.ErrInvalidTransition, "cannot %s a %s donation", event, donation.Status)
	}

	return donation, next, nil
}

// Claim implements usecase.LifecycleUsecase.
func (srv *lifecycleService) Claim(ctx context.Context, snap session.Snapshot, donationID uuid.UUID, requestID *uuid.UUID) (*usecase.TransitionResult, error) {
	if err := requireRole(snap, entity.RoleOrphanage); err != nil {
		return nil, err
	}

	donation, next, err := srv.loadDonation(ctx, donationID, entity.EventClaim)
	if err != nil {
		return nil, err
	}

	if requestID != nil {
		if err := srv.checkLinkedRequest(ctx, snap.Profile.ID, *requestID); err != nil {
			return nil, err
		}
	}

	claimant := snap.Profile.ID
	updated, err := srv.donationRepo.TransitionStatus(ctx, donation.ID, entity.DonationTransition{
		From:      donation.Status,
		To:        next,
		ClaimedBy: &claimant,
		RequestID: requestID,
		At:        srv.now().UTC(),
	})
	if err != nil {
		return nil, srv.transitionError(entity.EventClaim, err)
	}

	srv.metrics.ObserveTransition(string(entity.EventClaim), outcomeOK)
	srv.log(ctx).Info("Donation claimed",
		slog.String("donation_id", updated.ID.String()),
		slog.String("orphanage_id", claimant),
	)
	signal(ctx, srv.log(ctx), srv.feed, entity.CollectionDonations)

	result := &usecase.TransitionResult{Donation: updated}
	restaurant, orphanage := srv.loadParties(ctx, updated, snap)
	notice := buildNotice(updated, restaurant, orphanage)
	if srv.notify(ctx, result, notice, srv.claimTemplate, restaurant, "Donation claimed",
		fmt.Sprintf("%s claimed %s", notice.Orphanage.Name, updated.FoodName)) {
		srv.announcePickup(ctx, updated)
	}

	return result, nil
}

// Confirm implements usecase.LifecycleUsecase.
func (srv *lifecycleService) Confirm(ctx context.Context, snap session.Snapshot, donationID uuid.UUID) (*usecase.TransitionResult, error) {
	if err := requireRole(snap, entity.RoleOrphanage); err != nil {
		return nil, err
	}

	donation, next, err := srv.loadDonation(ctx, donationID, entity.EventConfirm)
	if err != nil {
		return nil, err
	}
	if !donation.IsClaimedBy(snap.Profile.ID) {
		srv.metrics.ObserveTransition(string(entity.EventConfirm), outcomeNotClaimant)

		return nil, domainerrors.ErrNotClaimant
	}

	at := srv.now().UTC()
	var updated *entity.Donation
	err = srv.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		var txErr error
		updated, txErr = factory.NewDonationRepository().TransitionStatus(ctx, donation.ID, entity.DonationTransition{
			From: donation.Status,
			To:   next,
			At:   at,
		})
		if txErr != nil {
			return txErr
		}
		if updated.RequestID == nil {
			return nil
		}

		txErr = factory.NewRequestRepository().MarkFulfilled(ctx, *updated.RequestID, at)
		if errors.Is(txErr, repository.ErrStatusConflict) || errors.Is(txErr, repository.ErrRequestNotFound) {
			// Already fulfilled by hand, or withdrawn; receipt still stands.
			srv.log(ctx).Info("Linked request not pending, leaving it as is",
				slog.String("request_id", updated.RequestID.String()),
			)

			return nil
		}

		return txErr
	})
	if err != nil {
		return nil, srv.transitionError(entity.EventConfirm, err)
	}

	srv.metrics.ObserveTransition(string(entity.EventConfirm), outcomeOK)
	srv.log(ctx).Info("Donation receipt confirmed", slog.String("donation_id", updated.ID.String()))
	signal(ctx, srv.log(ctx), srv.feed, entity.CollectionDonations)
	if updated.RequestID != nil {
		signal(ctx, srv.log(ctx), srv.feed, entity.CollectionRequests)
	}

	result := &usecase.TransitionResult{Donation: updated}
	restaurant, orphanage := srv.loadParties(ctx, updated, snap)
	notice := buildNotice(updated, restaurant, orphanage)
	srv.notify(ctx, result, notice, srv.confirmTmpl, restaurant, "Donation received",
		fmt.Sprintf("%s confirmed receipt of %s", notice.Orphanage.Name, updated.FoodName))

	return result, nil
}

func (srv *lifecycleService) checkLinkedRequest(ctx context.Context, orphanageID string, requestID uuid.UUID) error {
	request, err := srv.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return domainerrors.ErrRequestNotFound
		}

		return errors.Wrap(err, "failed to load linked request")
	}
	if request.OrphanageID != orphanageID || request.Status != entity.RequestPending {
		return domainerrors.ErrInvalidInput.WithDetails("linked request must be one of your pending requests")
	}

	return nil
}

func (srv *lifecycleService) transitionError(event entity.DonationEvent, err error) error {
	switch {
	case errors.Is(err, repository.ErrStatusConflict):
		srv.metrics.ObserveTransition(string(event), outcomeConflict)

		return errors.Wrap(domainerrors.ErrInvalidTransition, "donation changed concurrently")
	case errors.Is(err, repository.ErrDonationNotFound):
		srv.metrics.ObserveTransition(string(event), outcomeError)

		return domainerrors.ErrDonationNotFound
	default:
		srv.metrics.ObserveTransition(string(event), outcomeError)

		return errors.Wrapf(err, "failed to %s donation", event)
	}
}

// loadParties reads both current profiles concurrently. A missing profile leaves
// the party to be described from the donation or the session.
func (srv *lifecycleService) loadParties(ctx context.Context, donation *entity.Donation, snap session.Snapshot) (restaurant, orphanage *entity.Profile) {
	orphanageID := snap.Profile.ID
	if donation.ClaimedBy != nil {
		orphanageID = *donation.ClaimedBy
	}

	var g errgroup.Group
	g.Go(func() error {
		restaurant = srv.findProfile(ctx, donation.RestaurantID)

		return nil
	})
	g.Go(func() error {
		orphanage = srv.findProfile(ctx, orphanageID)

		return nil
	})
	_ = g.Wait()

	if orphanage == nil && orphanageID == snap.Profile.ID {
		orphanage = snap.Profile.Clone()
	}
	if orphanage != nil && orphanage.Email == "" && snap.AuthUser != nil && orphanage.ID == snap.AuthUser.UID {
		orphanage.Email = snap.AuthUser.Email
	}

	return restaurant, orphanage
}

func (srv *lifecycleService) findProfile(ctx context.Context, id string) *entity.Profile {
	profile, err := srv.profileRepo.FindByID(ctx, id)
	if err != nil {
		srv.log(ctx).Warn("Failed to load profile for notification",
			slog.String("profile_id", id),
			slog.Any("error", err),
		)

		return nil
	}

	return profile
}

// buildNotice describes the handover from the stored donation and current profiles.
func buildNotice(donation *entity.Donation, restaurant, orphanage *entity.Profile) *usecase.NoticeInput {
	r := &usecase.NoticeParty{
		ID:       donation.RestaurantID,
		Name:     donation.RestaurantName,
		Email:    donation.RestaurantContact.Email,
		Phone:    donation.RestaurantContact.Phone,
		Address:  donation.RestaurantContact.Address,
		Location: donation.Location,
	}
	if restaurant != nil && restaurant.Email != "" {
		r.Email = restaurant.Email
	}

	o := &usecase.NoticeParty{}
	if orphanage != nil {
		o = &usecase.NoticeParty{
			ID:       orphanage.ID,
			Name:     orphanage.Name,
			Email:    orphanage.Email,
			Phone:    orphanage.Phone,
			Address:  orphanage.Address,
			Location: orphanage.Location,
		}
	}

	return &usecase.NoticeInput{
		Restaurant: r,
		Orphanage:  o,
		Food: &usecase.NoticeFood{
			Name:     donation.FoodName,
			Quantity: strconv.Itoa(donation.Servings),
		},
	}
}

// notify emails both parties and pushes to the restaurant. Nothing is sent unless
// both parties have an email. It reports whether the notification step ran.
func (srv *lifecycleService) notify(
	ctx context.Context,
	result *usecase.TransitionResult,
	notice *usecase.NoticeInput,
	templateID int64,
	restaurant *entity.Profile,
	title, body string,
) bool {
	if notice.Restaurant.Email == "" || notice.Orphanage.Email == "" {
		srv.log(ctx).Warn("Skipping notification, contact info incomplete",
			slog.String("donation_id", result.Donation.ID.String()),
			slog.Bool("restaurant_email", notice.Restaurant.Email != ""),
			slog.Bool("orphanage_email", notice.Orphanage.Email != ""),
		)
		result.Warnings = append(result.Warnings, domainerrors.ErrIncompleteContactInfo.Message())

		return false
	}

	if err := srv.emailSender.SendTemplate(ctx, noticeEmail(notice, templateID)); err != nil {
		srv.log(ctx).Error("Notification email failed",
			slog.String("donation_id", result.Donation.ID.String()),
			slog.String("error_code", domainerrors.ErrDownstreamDeliveryFailure.ErrorCode()),
			slog.Any("error", err),
		)
		result.Warnings = append(result.Warnings, warningEmailFailed)
	}

	if restaurant.HasToken() {
		data := map[string]string{
			"donation_id": result.Donation.ID.String(),
			"status":      string(result.Donation.Status),
		}
		if link := geo.MapsLink(notice.Orphanage.Location); link != "" {
			data["maps_link"] = link
		}
		if err := srv.pushSvc.SendSingleNotification(ctx, restaurant.NotificationToken, title, body, data); err != nil {
			srv.log(ctx).Error("Restaurant push failed",
				slog.String("donation_id", result.Donation.ID.String()),
				slog.String("error_code", domainerrors.ErrDownstreamDeliveryFailure.ErrorCode()),
				slog.Any("error", err),
			)
		}
	}

	return true
}

// announcePickup lets drivers know a claimed donation waits for pickup.
func (srv *lifecycleService) announcePickup(ctx context.Context, donation *entity.Donation) {
	event := &service.FanoutEvent{
		ID:        uuid.NewString(),
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      service.FanoutPickupReady,
		Audience:  entity.RoleAudience(entity.RoleDriver),
		Title:     "Pickup ready",
		Body:      fmt.Sprintf("%s from %s is ready for pickup", donation.FoodName, donation.RestaurantName),
		Data: map[string]string{
			"type":        string(service.FanoutPickupReady),
			"donation_id": donation.ID.String(),
		},
	}
	if link := geo.MapsLink(donation.Location); link != "" {
		event.Data["maps_link"] = link
	}

	if err := srv.publisher.PublishFanoutEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish pickup fan-out",
			slog.String("donation_id", donation.ID.String()),
			slog.Any("error", err),
		)
	}
}

// SendClaimNotice implements usecase.LifecycleUsecase.
func (srv *lifecycleService) SendClaimNotice(ctx context.Context, input *usecase.NoticeInput) error {
	return srv.sendNotice(ctx, input, srv.claimTemplate, "Donation claimed")
}

// SendConfirmationNotice implements usecase.LifecycleUsecase.
func (srv *lifecycleService) SendConfirmationNotice(ctx context.Context, input *usecase.NoticeInput) error {
	return srv.sendNotice(ctx, input, srv.confirmTmpl, "Donation received")
}

func (srv *lifecycleService) sendNotice(ctx context.Context, input *usecase.NoticeInput, templateID int64, title string) error {
	if input == nil || input.Restaurant == nil || input.Orphanage == nil || input.Food == nil {
		return domainerrors.ErrInvalidInput
	}
	if input.Restaurant.Email == "" || input.Orphanage.Email == "" {
		return domainerrors.ErrInvalidInput.WithDetails("restaurant and orphanage emails are required")
	}

	if err := srv.emailSender.SendTemplate(ctx, noticeEmail(input, templateID)); err != nil {
		srv.log(ctx).Error("Notice email failed",
			slog.Int64("template_id", templateID),
			slog.Any("error", err),
		)

		return errors.Wrap(domainerrors.ErrDownstreamDeliveryFailure, err.Error())
	}

	if input.Restaurant.ID == "" {
		return nil
	}
	restaurant := srv.findProfile(ctx, input.Restaurant.ID)
	if !restaurant.HasToken() {
		return nil
	}
	body := fmt.Sprintf("%s: %s", input.Orphanage.Name, input.Food.Name)
	if err := srv.pushSvc.SendSingleNotification(ctx, restaurant.NotificationToken, title, body, nil); err != nil {
		srv.log(ctx).Warn("Notice push failed",
			slog.String("restaurant_id", input.Restaurant.ID),
			slog.Any("error", err),
		)
	}

	return nil
}

// noticeEmail builds the template message. Coordinates and maps links are only
// added when a location is present.
func noticeEmail(input *usecase.NoticeInput, templateID int64) *service.EmailMessage {
	params := map[string]any{
		"food_name":       input.Food.Name,
		"food_quantity":   input.Food.Quantity,
		"restaurant_name": input.Restaurant.Name,
		"orphanage_name":  input.Orphanage.Name,
	}
	addPartyParams(params, "restaurant", input.Restaurant)
	addPartyParams(params, "orphanage", input.Orphanage)

	return &service.EmailMessage{
		To: []service.EmailRecipient{
			{Email: input.Restaurant.Email, Name: input.Restaurant.Name},
			{Email: input.Orphanage.Email, Name: input.Orphanage.Name},
		},
		TemplateID: templateID,
		Params:     params,
	}
}

func addPartyParams(params map[string]any, prefix string, party *usecase.NoticeParty) {
	params[prefix+"_phone"] = party.Phone
	params[prefix+"_address"] = party.Address
	if party.Location == nil {
		return
	}
	params[prefix+"_lat"] = party.Location.Lat
	params[prefix+"_lng"] = party.Location.Lng
	params[prefix+"_maps_link"] = geo.MapsLink(party.Location)
}
