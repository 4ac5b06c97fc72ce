package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/forcollegesake07/food-bridge/internal/errors"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrInvalidInput.WithDetails("servings must be a positive integer")

	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.False(t, errors.Is(err, ErrValidationFailed))
	assert.Equal(t, "servings must be a positive integer", err.Details())
	assert.Empty(t, ErrInvalidInput.Details())
}

func TestBaseError_WithRedirect(t *testing.T) {
	err := ErrRoleMismatch.WithRedirect("/orphanages")

	assert.Equal(t, "/orphanages", err.Redirect())
	assert.Equal(t, http.StatusForbidden, err.HTTPCode())
	assert.Empty(t, ErrRoleMismatch.Redirect())
	assert.True(t, errors.Is(err, ErrRoleMismatch))
}

func TestBaseError_WrapMessage(t *testing.T) {
	wrapped := ErrDonationNotFound.WrapMessage("claim")

	assert.True(t, errors.Is(wrapped, ErrDonationNotFound))
	appErr, ok := errors.AsType[AppError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, "DONATION_NOT_FOUND", appErr.ErrorCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "insert donation")

	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Contains(t, err.Error(), "connection reset")
	assert.True(t, errors.Is(err, cause))
}
