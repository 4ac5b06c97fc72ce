package impl

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	domainerrors "github.com/forcollegesake07/food-bridge/internal/domain/errors"
	"github.com/forcollegesake07/food-bridge/internal/domain/session"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newSnapshot builds an authenticated snapshot for a profile with the given role.
func newSnapshot(id string, role entity.Role, loc *entity.Location) session.Snapshot {
	profile := &entity.Profile{
		ID:       id,
		Role:     role,
		Name:     "Profile " + id,
		Email:    id + "@example.com",
		Phone:    "0900-000-000",
		Address:  "1 Main Street",
		Location: loc,
	}

	return session.Snapshot{
		AuthUser: &entity.AuthUser{UID: id, Email: profile.Email, Role: role},
		Profile:  profile,
		Location: loc,
	}
}

func TestRequireRole(t *testing.T) {
	restaurant := newSnapshot("r1", entity.RoleRestaurant, nil)

	assert.NoError(t, requireRole(restaurant, entity.RoleRestaurant))
	assert.NoError(t, requireRole(restaurant, entity.RoleNone))

	err := requireRole(restaurant, entity.RoleOrphanage)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	err = requireRole(session.Snapshot{}, entity.RoleNone)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}
