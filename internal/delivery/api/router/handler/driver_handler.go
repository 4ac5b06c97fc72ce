package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/forcollegesake07/food-bridge/internal/delivery/api/response"
	"github.com/forcollegesake07/food-bridge/internal/usecase"
)

// DriverHandler lists donations waiting for pickup.
type DriverHandler struct {
	donationUC usecase.DonationUsecase
}

// NewDriverHandler is the constructor for DriverHandler
func NewDriverHandler(donationUC usecase.DonationUsecase) *DriverHandler {
	return &DriverHandler{donationUC: donationUC}
}

// ListPickups returns claimed donations
func (h *DriverHandler) ListPickups(c echo.Context) error {
	donations, err := h.donationUC.ListClaimed(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, donations)
}
