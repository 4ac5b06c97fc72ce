package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/forcollegesake07/food-bridge/internal/delivery/api/response"
	deliverycontext "github.com/forcollegesake07/food-bridge/internal/delivery/context"
	"github.com/forcollegesake07/food-bridge/internal/domain/constants"
	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	domainerrors "github.com/forcollegesake07/food-bridge/internal/domain/errors"
	"github.com/forcollegesake07/food-bridge/internal/domain/session"
)

// HealthCheck reports liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// LocationBody is a coordinate in request bodies.
type LocationBody struct {
	Lat float64 `json:"lat" validate:"latitude"`
	Lng float64 `json:"lng" validate:"longitude"`
}

func (l *LocationBody) toEntity() *entity.Location {
	if l == nil {
		return nil
	}

	return &entity.Location{Lat: l.Lat, Lng: l.Lng}
}

// FormValue accepts a JSON string or number and keeps its text, so numeric
// parsing rules stay in the usecase.
type FormValue string

// UnmarshalJSON implements json.Unmarshaler.
func (v *FormValue) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = FormValue(s)

		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*v = FormValue(n.String())

	return nil
}

func requireSnapshot(c echo.Context) (session.Snapshot, error) {
	snap, ok := deliverycontext.GetSnapshot(c)
	if !ok {
		return session.Snapshot{}, domainerrors.ErrNotAuthenticated.WithRedirect(constants.RouteLogin)
	}

	return snap, nil
}

func parseID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidInput.WithDetails("invalid " + name)
	}

	return id, nil
}

// bindAndValidate binds the request body into req and runs struct validation.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrInvalidInput.WithDetails("malformed request body")
	}

	return c.Validate(req)
}
