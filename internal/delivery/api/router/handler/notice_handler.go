package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	deliverycontext "github.com/forcollegesake07/food-bridge/internal/delivery/context"
	domainerrors "github.com/forcollegesake07/food-bridge/internal/domain/errors"
	"github.com/forcollegesake07/food-bridge/internal/errors"
	"github.com/forcollegesake07/food-bridge/internal/usecase"
)

// NoticeHandler serves the side-channel email notices. Its responses are the
// bare {success} / {error} shape web clients of the notice endpoints expect,
// not the API envelope.
type NoticeHandler struct {
	lifecycleUC usecase.LifecycleUsecase
	logger      *slog.Logger
}

// NewNoticeHandler is the constructor for NoticeHandler
func NewNoticeHandler(lifecycleUC usecase.LifecycleUsecase, logger *slog.Logger) *NoticeHandler {
	return &NoticeHandler{lifecycleUC: lifecycleUC, logger: logger}
}

// NoticePartyBody is one side of the handover
type NoticePartyBody struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Phone    string        `json:"phone"`
	Address  string        `json:"address"`
	Location *LocationBody `json:"location"`
}

// NoticeFoodBody describes what is handed over
type NoticeFoodBody struct {
	Name     string    `json:"name"`
	Quantity FormValue `json:"quantity"`
}

// NoticeRequest is the body of both notice endpoints
type NoticeRequest struct {
	Restaurant *NoticePartyBody `json:"restaurant"`
	Orphanage  *NoticePartyBody `json:"orphanage"`
	Food       *NoticeFoodBody  `json:"food"`
}

// ClaimFood emails both parties that a donation was claimed
func (h *NoticeHandler) ClaimFood(c echo.Context) error {
	return h.send(c, h.lifecycleUC.SendClaimNotice)
}

// ConfirmReceipt emails both parties that a donation was received
func (h *NoticeHandler) ConfirmReceipt(c echo.Context) error {
	return h.send(c, h.lifecycleUC.SendConfirmationNotice)
}

func (h *NoticeHandler) send(c echo.Context, deliver func(ctx context.Context, input *usecase.NoticeInput) error) error {
	var req NoticeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": domainerrors.ErrInvalidInput.Message()})
	}

	if err := deliver(c.Request().Context(), req.toInput()); err != nil {
		status := http.StatusInternalServerError
		message := domainerrors.ErrDownstreamDeliveryFailure.Message()
		if appErr, ok := errors.AsType[domainerrors.AppError](err); ok && appErr.HTTPCode() < http.StatusInternalServerError {
			status = appErr.HTTPCode()
			message = appErr.Message()
		}
		if status >= http.StatusInternalServerError {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
				Error("Notice delivery failed", slog.String("path", c.Path()), slog.Any("error", err))
		}

		return c.JSON(status, map[string]string{"error": message})
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (r *NoticeRequest) toInput() *usecase.NoticeInput {
	input := &usecase.NoticeInput{
		Restaurant: r.Restaurant.toParty(),
		Orphanage:  r.Orphanage.toParty(),
	}
	if r.Food != nil {
		input.Food = &usecase.NoticeFood{Name: r.Food.Name, Quantity: string(r.Food.Quantity)}
	}

	return input
}

func (p *NoticePartyBody) toParty() *usecase.NoticeParty {
	if p == nil {
		return nil
	}

	return &usecase.NoticeParty{
		ID:       p.ID,
		Name:     p.Name,
		Email:    p.Email,
		Phone:    p.Phone,
		Address:  p.Address,
		Location: p.Location.toEntity(),
	}
}
