package usecase

import (
	"context"

	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	"github.com/forcollegesake07/food-bridge/internal/domain/geo"
)

type (
	RequestMatches  = geo.MatchResult[*entity.Request]
	DonationMatches = geo.MatchResult[*entity.Donation]
)

// MatchUsecase ranks open requests and donations by distance from a viewer.
// A radius of zero or less means the default match radius. The viewer location is
// fixed for the life of a subscription.
type MatchUsecase interface {
	SubscribePending(ctx context.Context, viewer *entity.Location, onChange func(RequestMatches), radiusKm float64) (Subscription, error)
	PendingNearby(ctx context.Context, viewer *entity.Location, radiusKm float64) (RequestMatches, error)

	SubscribeAvailable(ctx context.Context, viewer *entity.Location, onChange func(DonationMatches), radiusKm float64) (Subscription, error)
	AvailableNearby(ctx context.Context, viewer *entity.Location, radiusKm float64) (DonationMatches, error)
}
