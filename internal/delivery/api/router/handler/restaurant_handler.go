package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/forcollegesake07/food-bridge/internal/delivery/api/live"
	"github.com/forcollegesake07/food-bridge/internal/delivery/api/response"
	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	"github.com/forcollegesake07/food-bridge/internal/usecase"
)

// RestaurantHandlerParams holds dependencies for RestaurantHandler, injected by Fx.
type RestaurantHandlerParams struct {
	fx.In

	DonationUC usecase.DonationUsecase
	MatchUC    usecase.MatchUsecase
	Streamer   *live.Streamer
	Logger     *slog.Logger
}

// RestaurantHandler serves the restaurant dashboard.
type RestaurantHandler struct {
	donationUC usecase.DonationUsecase
	matchUC    usecase.MatchUsecase
	streamer   *live.Streamer
	logger     *slog.Logger
}

// NewRestaurantHandler is the constructor for RestaurantHandler
func NewRestaurantHandler(params RestaurantHandlerParams) *RestaurantHandler {
	return &RestaurantHandler{
		donationUC: params.DonationUC,
		matchUC:    params.MatchUC,
		streamer:   params.Streamer,
		logger:     params.Logger,
	}
}

// CreateDonationRequest carries the raw donation form values
type CreateDonationRequest struct {
	FoodName string    `json:"food_name" validate:"max=200"`
	Servings FormValue `json:"servings"`
}

// CreateDonation posts a new donation for the calling restaurant
func (h *RestaurantHandler) CreateDonation(c echo.Context) error {
	snap, err := requireSnapshot(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateDonationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	donation, err := h.donationUC.CreateDonation(c.Request().Context(), snap, &usecase.CreateDonationInput{
		FoodName: req.FoodName,
		Servings: string(req.Servings),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, donation)
}

// ListDonations returns the restaurant's donations, newest first
func (h *RestaurantHandler) ListDonations(c echo.Context) error {
	snap, err := requireSnapshot(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	donations, err := h.donationUC.ListMine(c.Request().Context(), snap.Profile.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, donations)
}

// LiveDonations streams the restaurant's donations over a websocket
func (h *RestaurantHandler) LiveDonations(c echo.Context) error {
	snap, err := requireSnapshot(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.streamer.Stream(c, func(ctx context.Context, publish func(any)) (usecase.Subscription, error) {
		return h.donationUC.SubscribeMine(ctx, snap.Profile.ID, func(donations []*entity.Donation) {
			publish(donations)
		})
	})
}

// PickupQR renders the pickup QR code of one of the restaurant's donations
func (h *RestaurantHandler) PickupQR(c echo.Context) error {
	snap, err := requireSnapshot(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	donationID, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.donationUC.PickupQR(c.Request().Context(), snap, donationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// NearbyRequests ranks pending orphanage requests around the restaurant
func (h *RestaurantHandler) NearbyRequests(c echo.Context) error {
	snap, err := requireSnapshot(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	matches, err := h.matchUC.PendingNearby(c.Request().Context(), snap.Location, 0)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, matches)
}

// LiveRequests streams nearby pending requests over a websocket
func (h *RestaurantHandler) LiveRequests(c echo.Context) error {
	snap, err := requireSnapshot(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.streamer.Stream(c, func(ctx context.Context, publish func(any)) (usecase.Subscription, error) {
		return h.matchUC.SubscribePending(ctx, snap.Location, func(matches usecase.RequestMatches) {
			publish(matches)
		}, 0)
	})
}
