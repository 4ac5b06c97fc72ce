package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "github.com/forcollegesake07/food-bridge/internal/delivery/context"
	"github.com/forcollegesake07/food-bridge/internal/domain/constants"
	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	"github.com/forcollegesake07/food-bridge/internal/domain/geo"
	"github.com/forcollegesake07/food-bridge/internal/domain/repository"
	"github.com/forcollegesake07/food-bridge/internal/domain/service"
	"github.com/forcollegesake07/food-bridge/internal/infra/metrics"
	"github.com/forcollegesake07/food-bridge/internal/usecase"
)

type matchService struct {
	requestRepo  repository.RequestRepository
	donationRepo repository.DonationRepository
	feed         service.ChangeFeed
	metrics      *metrics.Metrics
	logger       *slog.Logger
}

// MatchServiceParams holds dependencies for MatchService, injected by Fx.
type MatchServiceParams struct {
	fx.In

	RequestRepo  repository.RequestRepository
	DonationRepo repository.DonationRepository
	Feed         service.ChangeFeed
	Metrics      *metrics.Metrics `optional:"true"`
	Logger       *slog.Logger
}

// NewMatchService creates a new match service instance.
func NewMatchService(params MatchServiceParams) usecase.MatchUsecase {
	return &matchService{
		requestRepo:  params.RequestRepo,
		donationRepo: params.DonationRepo,
		feed:         params.Feed,
		metrics:      params.Metrics,
		logger:       params.Logger,
	}
}

func (srv *matchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func effectiveRadius(radiusKm float64) float64 {
	if radiusKm <= 0 {
		return constants.MatchRadiusKm
	}

	return radiusKm
}

// SubscribePending implements usecase.MatchUsecase.
func (srv *matchService) SubscribePending(
	ctx context.Context,
	viewer *entity.Location,
	onChange func(usecase.RequestMatches),
	radiusKm float64,
) (usecase.Subscription, error) {
	viewer = viewer.Clone()

	return startLiveQuery(ctx, srv.feed, entity.CollectionRequests,
		func(ctx context.Context) (usecase.RequestMatches, error) {
			return srv.PendingNearby(ctx, viewer, radiusKm)
		},
		onChange, srv.log(ctx), srv.metrics,
	)
}

// PendingNearby implements usecase.MatchUsecase.
func (srv *matchService) PendingNearby(ctx context.Context, viewer *entity.Location, radiusKm float64) (usecase.RequestMatches, error) {
	requests, err := srv.requestRepo.FindByStatus(ctx, entity.RequestPending)
	if err != nil {
		return usecase.RequestMatches{}, errors.Wrap(err, "failed to load pending requests")
	}

	return geo.FilterWithinRadius(viewer, requests, effectiveRadius(radiusKm)), nil
}

// SubscribeAvailable implements usecase.MatchUsecase.
func (srv *matchService) SubscribeAvailable(
	ctx context.Context,
	viewer *entity.Location,
	onChange func(usecase.DonationMatches),
	radiusKm float64,
) (usecase.Subscription, error) {
	viewer = viewer.Clone()

	return startLiveQuery(ctx, srv.feed, entity.CollectionDonations,
		func(ctx context.Context) (usecase.DonationMatches, error) {
			return srv.AvailableNearby(ctx, viewer, radiusKm)
		},
		onChange, srv.log(ctx), srv.metrics,
	)
}

// AvailableNearby implements usecase.MatchUsecase.
func (srv *matchService) AvailableNearby(ctx context.Context, viewer *entity.Location, radiusKm float64) (usecase.DonationMatches, error) {
	donations, err := srv.donationRepo.FindByStatus(ctx, entity.DonationAvailable)
	if err != nil {
		return usecase.DonationMatches{}, errors.Wrap(err, "failed to load available donations")
	}

	return geo.FilterWithinRadius(viewer, donations, effectiveRadius(radiusKm)), nil
}
