package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"github.com/forcollegesake07/food-bridge/internal/delivery/api/response"
	deliverycontext "github.com/forcollegesake07/food-bridge/internal/delivery/context"
	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	domainerrors "github.com/forcollegesake07/food-bridge/internal/domain/errors"
	"github.com/forcollegesake07/food-bridge/internal/domain/service"
)

// TestHandlerParams holds dependencies for TestHandler, injected by Fx.
type TestHandlerParams struct {
	fx.In

	Issuer service.TokenIssuer `optional:"true"`
}

// TestHandler serves development-only endpoints
type TestHandler struct {
	issuer service.TokenIssuer
}

// NewTestHandler creates a new TestHandler instance
func NewTestHandler(params TestHandlerParams) *TestHandler {
	return &TestHandler{issuer: params.Issuer}
}

// IssueTokenRequest represents the request body for a development token
type IssueTokenRequest struct {
	UID   string      `json:"uid" validate:"required,max=128"`
	Email string      `json:"email" validate:"omitempty,email"`
	Role  entity.Role `json:"role" validate:"omitempty,oneof=restaurant orphanage driver admin"`
}

// IssueToken mints a token from the development identity provider
func (h *TestHandler) IssueToken(c echo.Context) error {
	if h.issuer == nil {
		return response.HandleAppError(c, domainerrors.ErrNotFound.WithDetails("the configured identity provider cannot issue tokens"))
	}

	var req IssueTokenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	token, err := h.issuer.IssueToken(req.UID, req.Email, req.Role)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"token": token})
}

// WhoAmI echoes the verified identity; it requires the Authenticate middleware
func (h *TestHandler) WhoAmI(c echo.Context) error {
	user, ok := deliverycontext.GetAuthUser(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrNotAuthenticated)
	}

	return response.Success(c, http.StatusOK, user)
}
