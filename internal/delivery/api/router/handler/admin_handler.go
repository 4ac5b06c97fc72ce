package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/forcollegesake07/food-bridge/internal/delivery/api/response"
	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	domainerrors "github.com/forcollegesake07/food-bridge/internal/domain/errors"
	"github.com/forcollegesake07/food-bridge/internal/usecase"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	BroadcastUC usecase.BroadcastUsecase
	ProfileUC   usecase.ProfileUsecase
	Logger      *slog.Logger
}

// AdminHandler serves broadcast and profile administration.
type AdminHandler struct {
	broadcastUC usecase.BroadcastUsecase
	profileUC   usecase.ProfileUsecase
	logger      *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		broadcastUC: params.BroadcastUC,
		profileUC:   params.ProfileUC,
		logger:      params.Logger,
	}
}

// CreateBroadcastRequest represents the request body for a broadcast
type CreateBroadcastRequest struct {
	Title          string              `json:"title" validate:"required,max=200"`
	Message        string              `json:"message" validate:"required,max=2000"`
	TargetAudience entity.AudienceKind `json:"target_audience" validate:"required,oneof=all role specific"`
	TargetRole     entity.Role         `json:"target_role" validate:"omitempty,oneof=restaurant orphanage driver admin"`
	TargetUserID   string              `json:"target_user_id" validate:"max=128"`
}

// AssignRoleRequest represents the request body for assigning a role
type AssignRoleRequest struct {
	Role entity.Role `json:"role" validate:"required,oneof=restaurant orphanage driver admin"`
}

// SetDisabledRequest represents the request body for enabling or disabling a profile
type SetDisabledRequest struct {
	Disabled *bool `json:"disabled" validate:"required"`
}

// CreateBroadcast records a broadcast for the notifier to deliver
func (h *AdminHandler) CreateBroadcast(c echo.Context) error {
	snap, err := requireSnapshot(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateBroadcastRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	broadcast, err := h.broadcastUC.CreateBroadcast(c.Request().Context(), snap, &usecase.CreateBroadcastInput{
		Title:          req.Title,
		Message:        req.Message,
		TargetAudience: req.TargetAudience,
		TargetRole:     req.TargetRole,
		TargetUserID:   req.TargetUserID,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, broadcast)
}

// ListBroadcasts pages through broadcasts, newest first
func (h *AdminHandler) ListBroadcasts(c echo.Context) error {
	limit, err := queryInt(c, "limit")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	offset, err := queryInt(c, "offset")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	broadcasts, err := h.broadcastUC.ListBroadcasts(c.Request().Context(), limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, broadcasts)
}

// AssignRole sets the role of a profile
func (h *AdminHandler) AssignRole(c echo.Context) error {
	snap, err := requireSnapshot(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AssignRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.profileUC.AssignRole(c.Request().Context(), snap, c.Param("id"), req.Role); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Role assigned"})
}

// SetDisabled enables or disables a profile
func (h *AdminHandler) SetDisabled(c echo.Context) error {
	snap, err := requireSnapshot(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SetDisabledRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.profileUC.SetDisabled(c.Request().Context(), snap, c.Param("id"), *req.Disabled); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"disabled": *req.Disabled})
}

// queryInt reads an optional integer query parameter; absent means zero
func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domainerrors.ErrInvalidInput.WithDetails(name + " must be an integer")
	}

	return v, nil
}
