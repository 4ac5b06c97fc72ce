package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
)

// BroadcastRepository defines the operations for broadcast persistence.
type BroadcastRepository interface {
	// Create persists a new broadcast.
	Create(ctx context.Context, broadcast *entity.Broadcast) error

	// FindCreatedSince returns broadcasts created at or after since, oldest first.
	FindCreatedSince(ctx context.Context, since time.Time) ([]*entity.Broadcast, error)

	// List returns broadcasts newest first.
	List(ctx context.Context, limit, offset int) ([]*entity.Broadcast, error)

	// UpdateAttempted records how many tokens a broadcast was sent to.
	UpdateAttempted(ctx context.Context, id uuid.UUID, attempted int) error
}
