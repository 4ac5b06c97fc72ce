// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	domainerrors "github.com/forcollegesake07/food-bridge/internal/domain/errors"
	"github.com/forcollegesake07/food-bridge/internal/domain/service"
	"github.com/forcollegesake07/food-bridge/internal/domain/session"
)

// requireRole checks that the snapshot belongs to an authenticated profile with role.
// RoleNone accepts any role.
func requireRole(snap session.Snapshot, role entity.Role) error {
	if !snap.IsAuthenticated() {
		return domainerrors.ErrNotAuthenticated
	}
	if role != entity.RoleNone && snap.Role() != role {
		return errors.Wrapf(domainerrors.ErrForbidden, "requires role %s", role)
	}

	return nil
}

// signal announces a collection change. Live queries are best-effort, so failures are only logged.
func signal(ctx context.Context, logger *slog.Logger, feed service.ChangeFeed, collection string) {
	if feed == nil {
		return
	}
	if err := feed.Publish(ctx, collection); err != nil {
		logger.WarnContext(ctx, "Failed to signal change",
			slog.String("collection", collection),
			slog.Any("error", err),
		)
	}
}
