package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/forcollegesake07/food-bridge/internal/delivery/api/response"
	deliverycontext "github.com/forcollegesake07/food-bridge/internal/delivery/context"
	"github.com/forcollegesake07/food-bridge/internal/domain/constants"
	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	domainerrors "github.com/forcollegesake07/food-bridge/internal/domain/errors"
	"github.com/forcollegesake07/food-bridge/internal/usecase"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the caller's own profile.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		logger:    params.Logger,
	}
}

// RegisterProfileRequest represents the request body for creating a profile
type RegisterProfileRequest struct {
	Name     string        `json:"name" validate:"required,max=200"`
	Phone    string        `json:"phone" validate:"max=50"`
	Address  string        `json:"address" validate:"max=500"`
	Location *LocationBody `json:"location"`
	Role     entity.Role   `json:"role" validate:"omitempty,oneof=restaurant orphanage driver"`
}

// UpdateProfileRequest represents a merge update; absent fields are kept
type UpdateProfileRequest struct {
	Name     *string       `json:"name" validate:"omitempty,max=200"`
	Phone    *string       `json:"phone" validate:"omitempty,max=50"`
	Address  *string       `json:"address" validate:"omitempty,max=500"`
	Location *LocationBody `json:"location"`
}

// UpdateTokenRequest represents the request body for registering a push token
type UpdateTokenRequest struct {
	Token string `json:"token" validate:"max=4096"`
}

// Register creates the profile of the authenticated identity
func (h *ProfileHandler) Register(c echo.Context) error {
	authUser, ok := deliverycontext.GetAuthUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrNotAuthenticated.WithRedirect(constants.RouteLogin))
	}

	var req RegisterProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.profileUC.Register(c.Request().Context(), authUser, &usecase.RegisterProfileInput{
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		Location:      req.Location.toEntity(),
		RequestedRole: req.Role,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, profile)
}

// GetProfile returns the session snapshot resolved by the profile gate
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	snap, err := requireSnapshot(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snap)
}

// UpdateProfile merges contact details and location into the profile
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	snap, err := requireSnapshot(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	profile, err := h.profileUC.UpdateProfile(c.Request().Context(), snap, &usecase.UpdateProfileInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Address:  req.Address,
		Location: req.Location.toEntity(),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, profile)
}

// UpdateToken stores the push token of the caller's device; an empty token unregisters
func (h *ProfileHandler) UpdateToken(c echo.Context) error {
	snap, err := requireSnapshot(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.profileUC.UpdateNotificationToken(c.Request().Context(), snap, req.Token); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notification token updated"})
}
