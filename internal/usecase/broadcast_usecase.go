package usecase

import (
	"context"

	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	"github.com/forcollegesake07/food-bridge/internal/domain/session"
)

// BroadcastUsecase lets admins announce to an audience.
type BroadcastUsecase interface {
	CreateBroadcast(ctx context.Context, snap session.Snapshot, input *CreateBroadcastInput) (*entity.Broadcast, error)
	ListBroadcasts(ctx context.Context, limit, offset int) ([]*entity.Broadcast, error)
}

// CreateBroadcastInput defines a broadcast to create.
type CreateBroadcastInput struct {
	Title          string
	Message        string
	TargetAudience entity.AudienceKind
	TargetRole     entity.Role
	TargetUserID   string
}
