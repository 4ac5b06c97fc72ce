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

type requestService struct {
	requestRepo repository.RequestRepository
	feed        service.ChangeFeed
	publisher   service.EventPublisher
	metrics     *metrics.Metrics
	logger      *slog.Logger
	now         func() time.Time
}

// RequestServiceParams holds dependencies for RequestService, injected by Fx.
type RequestServiceParams struct {
	fx.In

	RequestRepo repository.RequestRepository
	Feed        service.ChangeFeed
	Publisher   service.EventPublisher
	Metrics     *metrics.Metrics `optional:"true"`
	Logger      *slog.Logger
}

// NewRequestService creates a new request service instance.
func NewRequestService(params RequestServiceParams) usecase.RequestUsecase {
	return &requestService{
		requestRepo: params.RequestRepo,
		feed:        params.Feed,
		publisher:   params.Publisher,
		metrics:     params.Metrics,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *requestService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRequest records a Pending request for the calling orphanage.
func (srv *requestService) CreateRequest(ctx context.Context, snap session.Snapshot, input *usecase.CreateRequestInput) (*entity.Request, error) {
	if err := requireRole(snap, entity.RoleOrphanage); err != nil {
		return nil, err
	}
	if input == nil {
		return nil, domainerrors.ErrInvalidInput
	}

	item := util.SanitizeText(input.ItemNeeded)
	if item == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("item needed is required")
	}
	quantity, err := util.ParsePositiveInt(input.Quantity)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("quantity must be a positive whole number")
	}

	location := input.Location.Clone()
	if location == nil {
		location = snap.Location.Clone()
	}
	if location != nil && !location.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("location is invalid")
	}

	request := &entity.Request{
		ID:             uuid.New(),
		OrphanageID:    snap.Profile.ID,
		OrphanageName:  snap.Profile.Name,
		OrphanagePhone: snap.Profile.Phone,
		ItemNeeded:     item,
		Quantity:       quantity,
		Location:       location,
		Status:         entity.RequestPending,
		CreatedAt:      srv.now().UTC(),
	}

	if err := srv.requestRepo.Create(ctx, request); err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	srv.metrics.IncRequestCreated()
	srv.log(ctx).Info("Request created",
		slog.String("request_id", request.ID.String()),
		slog.String("orphanage_id", request.OrphanageID),
	)
	signal(ctx, srv.log(ctx), srv.feed, entity.CollectionRequests)

	srv.announce(ctx, request)

	return request, nil
}

func (srv *requestService) announce(ctx context.Context, request *entity.Request) {
	event := &service.FanoutEvent{
		ID:        uuid.NewString(),
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Type:      service.FanoutRequestCreated,
		Audience:  entity.RoleAudience(entity.RoleRestaurant),
		Title:     "Food needed nearby",
		Body:      fmt.Sprintf("%s needs %s (%d)", request.OrphanageName, request.ItemNeeded, request.Quantity),
		Data: map[string]string{
			"type":       string(service.FanoutRequestCreated),
			"request_id": request.ID.String(),
		},
	}
	if request.Location != nil {
		event.Data["maps_link"] = geo.MapsLink(request.Location)
	}

	if err := srv.publisher.PublishFanoutEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish request fan-out",
			slog.String("request_id", request.ID.String()),
			slog.Any("error", err),
		)
	}
}

// ListMine returns the orphanage's requests, newest first.
func (srv *requestService) ListMine(ctx context.Context, orphanageID string) ([]*entity.Request, error) {
	requests, err := srv.requestRepo.FindByOrphanage(ctx, orphanageID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list requests")
	}

	return requests, nil
}

// FulfillRequest moves the caller's own Pending request to Fulfilled.
func (srv *requestService) FulfillRequest(ctx context.Context, snap session.Snapshot, requestID uuid.UUID) error {
	if err := requireRole(snap, entity.RoleOrphanage); err != nil {
		return err
	}

	request, err := srv.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrRequestNotFound) {
			return domainerrors.ErrRequestNotFound
		}

		return errors.Wrap(err, "failed to load request")
	}
	if request.OrphanageID != snap.Profile.ID {
		return domainerrors.ErrForbidden.WithDetails("request belongs to another orphanage")
	}
	if request.Status != entity.RequestPending {
		return domainerrors.ErrInvalidTransition
	}

	if err := srv.requestRepo.MarkFulfilled(ctx, requestID, srv.now().UTC()); err != nil {
		switch {
		case errors.Is(err, repository.ErrStatusConflict):
			return domainerrors.ErrInvalidTransition
		case errors.Is(err, repository.ErrRequestNotFound):
			return domainerrors.ErrRequestNotFound
		default:
			return errors.Wrap(err, "failed to fulfill request")
		}
	}

	signal(ctx, srv.log(ctx), srv.feed, entity.CollectionRequests)

	return nil
}
