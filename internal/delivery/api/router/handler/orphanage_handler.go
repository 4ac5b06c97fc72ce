package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/forcollegesake07/food-bridge/internal/delivery/api/live"
	"github.com/forcollegesake07/food-bridge/internal/delivery/api/response"
	domainerrors "github.com/forcollegesake07/food-bridge/internal/domain/errors"
	"github.com/forcollegesake07/food-bridge/internal/usecase"
)

// OrphanageHandlerParams holds dependencies for OrphanageHandler, injected by Fx.
type OrphanageHandlerParams struct {
	fx.In

	RequestUC   usecase.RequestUsecase
	MatchUC     usecase.MatchUsecase
	LifecycleUC usecase.LifecycleUsecase
	Streamer    *live.Streamer
	Logger      *slog.Logger
}

// OrphanageHandler serves the orphanage dashboard.
type OrphanageHandler struct {
	requestUC   usecase.RequestUsecase
	matchUC     usecase.MatchUsecase
	lifecycleUC usecase.LifecycleUsecase
	streamer    *live.Streamer
	logger      *slog.Logger
}

// NewOrphanageHandler is the constructor for OrphanageHandler
func NewOrphanageHandler(params OrphanageHandlerParams) *OrphanageHandler {
	return &OrphanageHandler{
		requestUC:   params.RequestUC,
		matchUC:     params.MatchUC,
		lifecycleUC: params.LifecycleUC,
		streamer:    params.Streamer,
		logger:      params.Logger,
	}
}

// CreateRequestRequest carries the raw request form values
type CreateRequestRequest struct {
	ItemNeeded string        `json:"item_needed" validate:"max=200"`
	Quantity   FormValue     `json:"quantity"`
	Location   *LocationBody `json:"location"`
}

// ClaimRequest optionally links one of the orphanage's pending requests
type ClaimRequest struct {
	RequestID string `json:"request_id" validate:"omitempty,uuid"`
}

// CreateRequest posts a need for the calling orphanage
func (h *OrphanageHandler) CreateRequest(c echo.Context) error {
	snap, err := requireSnapshot(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateRequestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	request, err := h.requestUC.CreateRequest(c.Request().Context(), snap, &usecase.CreateRequestInput{
		ItemNeeded: req.ItemNeeded,
		Quantity:   string(req.Quantity),
		Location:   req.Location.toEntity(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, request)
}

// ListRequests returns the orphanage's own requests
func (h *OrphanageHandler) ListRequests(c echo.Context) error {
	snap, err := requireSnapshot(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	requests, err := h.requestUC.ListMine(c.Request().Context(), snap.Profile.ID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests)
}

// FulfillRequest marks one of the orphanage's requests as fulfilled
func (h *OrphanageHandler) FulfillRequest(c echo.Context) error {
	snap, err := requireSnapshot(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	requestID, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.requestUC.FulfillRequest(c.Request().Context(), snap, requestID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Request fulfilled"})
}

// NearbyDonations ranks available donations around the orphanage
func (h *OrphanageHandler) NearbyDonations(c echo.Context) error {
	snap, err := requireSnapshot(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	matches, err := h.matchUC.AvailableNearby(c.Request().Context(), snap.Location, 0)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, matches)
}

// LiveDonations streams nearby available donations over a websocket
func (h *OrphanageHandler) LiveDonations(c echo.Context) error {
	snap, err := requireSnapshot(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return h.streamer.Stream(c, func(ctx context.Context, publish func(any)) (usecase.Subscription, error) {
		return h.matchUC.SubscribeAvailable(ctx, snap.Location, func(matches usecase.DonationMatches) {
			publish(matches)
		}, 0)
	})
}

// Claim reserves an available donation for the orphanage
func (h *OrphanageHandler) Claim(c echo.Context) error {
	snap, err := requireSnapshot(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	donationID, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ClaimRequest
	if c.Request().ContentLength != 0 {
		if err := bindAndValidate(c, &req); err != nil {
			return response.HandleAppError(c, err)
		}
	}

	var requestID *uuid.UUID
	if req.RequestID != "" {
		id, err := uuid.Parse(req.RequestID)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrInvalidInput.WithDetails("invalid request_id"))
		}
		requestID = &id
	}

	result, err := h.lifecycleUC.Claim(c.Request().Context(), snap, donationID, requestID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}

// Confirm records receipt of a donation the orphanage claimed
func (h *OrphanageHandler) Confirm(c echo.Context) error {
	snap, err := requireSnapshot(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	donationID, err := parseID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.lifecycleUC.Confirm(c.Request().Context(), snap, donationID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
