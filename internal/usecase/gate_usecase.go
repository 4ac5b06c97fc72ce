package usecase

import (
	"context"

	"github.com/forcollegesake07/food-bridge/internal/domain/constants"
	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	domainerrors "github.com/forcollegesake07/food-bridge/internal/domain/errors"
	"github.com/forcollegesake07/food-bridge/internal/domain/session"
)

// GateState is the outcome of resolving an identity into a session.
type GateState string

const (
	GateUnauthenticated GateState = "unauthenticated"
	GateAuthenticating  GateState = "authenticating"
	GateDisabled        GateState = "disabled"
	GateRoleMismatch    GateState = "role_mismatch"
	GateReady           GateState = "ready"
)

// roleRoutes is where a user whose role does not fit the page belongs.
var roleRoutes = map[entity.Role]string{
	entity.RoleRestaurant: "/restaurant",
	entity.RoleOrphanage:  "/orphanages",
	entity.RoleAdmin:      "/admin",
}

// RouteForRole returns the landing route of a role, or the login route.
func RouteForRole(role entity.Role) string {
	if route, ok := roleRoutes[role]; ok {
		return route
	}

	return constants.RouteLogin
}

// GateResult describes where the gate left the caller.
type GateResult struct {
	State    GateState
	Redirect string
	Snapshot session.Snapshot
}

// Err maps a non-ready result to the error rendered to the caller.
func (r *GateResult) Err() error {
	switch r.State {
	case GateReady:
		return nil
	case GateDisabled:
		return domainerrors.ErrAccountDisabled.WithRedirect(r.Redirect)
	case GateRoleMismatch:
		return domainerrors.ErrRoleMismatch.WithRedirect(r.Redirect)
	default:
		return domainerrors.ErrNotAuthenticated.WithRedirect(r.Redirect)
	}
}

// ProfileGateUsecase resolves an authenticated identity into a role-checked profile.
type ProfileGateUsecase interface {
	// Resolve loads the caller's profile and checks it against expectedRole
	// (RoleNone accepts any role). On success the snapshot is published through
	// writer, which resolves the session's ready signal. An error is returned only
	// when the profile could not be loaded.
	Resolve(ctx context.Context, authUser *entity.AuthUser, expectedRole entity.Role, writer *session.Writer) (*GateResult, error)
}
