package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "github.com/forcollegesake07/food-bridge/internal/delivery/context"
	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	domainerrors "github.com/forcollegesake07/food-bridge/internal/domain/errors"
	"github.com/forcollegesake07/food-bridge/internal/domain/repository"
	"github.com/forcollegesake07/food-bridge/internal/domain/service"
	"github.com/forcollegesake07/food-bridge/internal/domain/session"
	"github.com/forcollegesake07/food-bridge/internal/usecase"
	"github.com/forcollegesake07/food-bridge/internal/util"
)

const (
	defaultBroadcastPageSize = 20
	maxBroadcastPageSize     = 100
)

type broadcastService struct {
	broadcastRepo repository.BroadcastRepository
	feed          service.ChangeFeed
	logger        *slog.Logger
	now           func() time.Time
}

// BroadcastServiceParams holds dependencies for BroadcastService, injected by Fx.
type BroadcastServiceParams struct {
	fx.In

	BroadcastRepo repository.BroadcastRepository
	Feed          service.ChangeFeed
	Logger        *slog.Logger
}

// NewBroadcastService creates a new broadcast service instance.
func NewBroadcastService(params BroadcastServiceParams) usecase.BroadcastUsecase {
	return &broadcastService{
		broadcastRepo: params.BroadcastRepo,
		feed:          params.Feed,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *broadcastService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateBroadcast stores a broadcast for the notifier to deliver.
func (srv *broadcastService) CreateBroadcast(ctx context.Context, snap session.Snapshot, input *usecase.CreateBroadcastInput) (*entity.Broadcast, error) {
	if err := requireRole(snap, entity.RoleAdmin); err != nil {
		return nil, err
	}
	if input == nil {
		return nil, domainerrors.ErrInvalidInput
	}

	title := util.SanitizeText(input.Title)
	message := util.SanitizeText(input.Message)
	if title == "" || message == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("title and message are required")
	}

	audience := entity.Audience{Kind: input.TargetAudience}
	switch input.TargetAudience {
	case entity.AudienceRole:
		audience.Role = input.TargetRole
	case entity.AudienceSpecific:
		audience.UserID = input.TargetUserID
	}
	if err := audience.Validate(); err != nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails("target audience is incomplete")
	}

	broadcast := &entity.Broadcast{
		ID:        uuid.New(),
		Title:     title,
		Message:   message,
		Audience:  audience,
		CreatedBy: snap.Profile.ID,
		CreatedAt: srv.now().UTC(),
	}
	if err := srv.broadcastRepo.Create(ctx, broadcast); err != nil {
		return nil, errors.Wrap(err, "failed to create broadcast")
	}

	srv.log(ctx).Info("Broadcast created",
		slog.String("broadcast_id", broadcast.ID.String()),
		slog.String("audience", string(audience.Kind)),
	)
	signal(ctx, srv.log(ctx), srv.feed, entity.CollectionBroadcasts)

	return broadcast, nil
}

// ListBroadcasts returns broadcasts newest first.
func (srv *broadcastService) ListBroadcasts(ctx context.Context, limit, offset int) ([]*entity.Broadcast, error) {
	if limit <= 0 {
		limit = defaultBroadcastPageSize
	}
	limit = min(limit, maxBroadcastPageSize)
	offset = max(offset, 0)

	broadcasts, err := srv.broadcastRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list broadcasts")
	}

	return broadcasts, nil
}
