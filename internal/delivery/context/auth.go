package context

import (
	"github.com/labstack/echo/v4"

	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	"github.com/forcollegesake07/food-bridge/internal/domain/session"
)

const (
	// KeyAuthUser is the key for the verified identity of the caller.
	KeyAuthUser ContextKey = "auth_user"

	// KeySnapshot is the key for the session snapshot resolved by the profile gate.
	KeySnapshot ContextKey = "session_snapshot"
)

// SetAuthUser stores the verified identity in echo.Context.
func SetAuthUser(c echo.Context, user *entity.AuthUser) {
	c.Set(string(KeyAuthUser), user)
}

// GetAuthUser returns the verified identity, if the request was authenticated.
func GetAuthUser(c echo.Context) (*entity.AuthUser, bool) {
	user, ok := c.Get(string(KeyAuthUser)).(*entity.AuthUser)

	return user, ok && user != nil
}

// SetSnapshot stores the gate-resolved session snapshot in echo.Context.
func SetSnapshot(c echo.Context, snap session.Snapshot) {
	c.Set(string(KeySnapshot), snap)
}

// GetSnapshot returns the session snapshot, if the profile gate let the request through.
func GetSnapshot(c echo.Context) (session.Snapshot, bool) {
	snap, ok := c.Get(string(KeySnapshot)).(session.Snapshot)

	return snap, ok && snap.IsAuthenticated()
}
