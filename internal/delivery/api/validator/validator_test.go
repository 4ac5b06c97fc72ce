package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/forcollegesake07/food-bridge/internal/domain/errors"
	"github.com/forcollegesake07/food-bridge/internal/errors"
)

type sample struct {
	Name   string  `json:"name" validate:"required"`
	Role   string  `json:"role" validate:"omitempty,oneof=restaurant orphanage"`
	Lat    float64 `json:"lat" validate:"latitude"`
	Secret string  `json:"-" validate:"max=3"`
}

func TestValidate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{Name: "ok", Role: "restaurant", Lat: 25}))

	err := v.Validate(&sample{Role: "admin", Lat: 91})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)
	assert.Contains(t, appErr.Details(), "name is required")
	assert.Contains(t, appErr.Details(), "role must be one of: restaurant orphanage")
	assert.Contains(t, appErr.Details(), "lat must be a valid latitude")
}
