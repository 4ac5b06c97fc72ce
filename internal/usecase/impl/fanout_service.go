package impl

import (
	"context"
	"log/slog"
	"maps"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "github.com/forcollegesake07/food-bridge/internal/delivery/context"
	"github.com/forcollegesake07/food-bridge/internal/domain/constants"
	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	domainerrors "github.com/forcollegesake07/food-bridge/internal/domain/errors"
	"github.com/forcollegesake07/food-bridge/internal/domain/repository"
	"github.com/forcollegesake07/food-bridge/internal/domain/service"
	"github.com/forcollegesake07/food-bridge/internal/infra/metrics"
	"github.com/forcollegesake07/food-bridge/internal/usecase"
)

// broadcastPollInterval re-checks for broadcasts in case a change signal was lost.
const broadcastPollInterval = time.Minute

type fanoutService struct {
	profileRepo   repository.ProfileRepository
	broadcastRepo repository.BroadcastRepository
	pushSvc       service.NotificationService
	feed          service.ChangeFeed
	batchSize     int
	pollInterval  time.Duration
	metrics       *metrics.Metrics
	logger        *slog.Logger
	now           func() time.Time
}

// FanoutServiceParams holds dependencies for FanoutService, injected by Fx.
type FanoutServiceParams struct {
	fx.In

	ProfileRepo   repository.ProfileRepository
	BroadcastRepo repository.BroadcastRepository
	PushSvc       service.NotificationService
	Feed          service.ChangeFeed
	Metrics       *metrics.Metrics `optional:"true"`
	Logger        *slog.Logger
}

// NewFanoutService creates the notification fan-out.
func NewFanoutService(params FanoutServiceParams) usecase.NotificationFanoutUsecase {
	return &fanoutService{
		profileRepo:   params.ProfileRepo,
		broadcastRepo: params.BroadcastRepo,
		pushSvc:       params.PushSvc,
		feed:          params.Feed,
		batchSize:     constants.MulticastBatchSize,
		pollInterval:  broadcastPollInterval,
		metrics:       params.Metrics,
		logger:        params.Logger,
		now:           time.Now,
	}
}

// AsFanoutEventHandler exposes the fan-out to publishers that deliver in-process.
func AsFanoutEventHandler(fanout usecase.NotificationFanoutUsecase) service.FanoutEventHandler {
	return fanout
}

func (srv *fanoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ResolveAudience implements usecase.NotificationFanoutUsecase.
func (srv *fanoutService) ResolveAudience(ctx context.Context, audience entity.Audience) ([]string, error) {
	if err := audience.Validate(); err != nil {
		return nil, domainerrors.ErrInvalidInput.WithDetails(err.Error())
	}

	var profiles []*entity.Profile
	switch audience.Kind {
	case entity.AudienceSpecific:
		profile, err := srv.profileRepo.FindByID(ctx, audience.UserID)
		if errors.Is(err, repository.ErrProfileNotFound) {
			srv.log(ctx).Info("[Fanout] Target profile not found", slog.String("profile_id", audience.UserID))

			return []string{}, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to load target profile")
		}
		profiles = []*entity.Profile{profile}
	case entity.AudienceRole:
		found, err := srv.profileRepo.FindByRole(ctx, audience.Role)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load profiles by role")
		}
		profiles = found
	case entity.AudienceAll:
		found, err := srv.profileRepo.FindAll(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load profiles")
		}
		profiles = found
	}

	tokens := make([]string, 0, len(profiles))
	seen := make(map[string]struct{}, len(profiles))
	for _, profile := range profiles {
		if !profile.HasToken() {
			continue
		}
		if _, dup := seen[profile.NotificationToken]; dup {
			continue
		}
		seen[profile.NotificationToken] = struct{}{}
		tokens = append(tokens, profile.NotificationToken)
	}

	return tokens, nil
}

// Dispatch implements usecase.NotificationFanoutUsecase. Batches are sent in order;
// a failed batch is logged and the rest still go out.
func (srv *fanoutService) Dispatch(ctx context.Context, tokens []string, message *usecase.PushMessage) int {
	if len(tokens) == 0 || message == nil {
		return 0
	}

	var (
		attempted     int
		totalSent     int
		totalFailed   int
		invalidTokens []string
	)

	for i := 0; i < len(tokens); i += srv.batchSize {
		end := min(i+srv.batchSize, len(tokens))
		batch := tokens[i:end]
		attempted += len(batch)

		successCount, failureCount, batchInvalid, err := srv.pushSvc.SendBatchNotification(ctx, batch, message.Title, message.Body, message.Data)
		if err != nil {
			srv.log(ctx).Error("[Fanout] Batch send failed, continuing",
				slog.Int("batch_start", i),
				slog.Int("batch_size", len(batch)),
				slog.Any("error", err),
			)
			totalFailed += len(batch)

			continue
		}

		totalSent += successCount
		totalFailed += failureCount
		invalidTokens = append(invalidTokens, batchInvalid...)
	}

	srv.metrics.ObservePush(totalSent, totalFailed, len(invalidTokens))

	if len(invalidTokens) > 0 {
		cleared, err := srv.profileRepo.ClearNotificationTokens(ctx, invalidTokens)
		if err != nil {
			srv.log(ctx).Warn("[Fanout] Failed to clear invalid tokens",
				slog.Int("invalid_count", len(invalidTokens)),
				slog.Any("error", err),
			)
		} else {
			srv.log(ctx).Info("[Fanout] Cleared invalid tokens", slog.Int64("cleared", cleared))
		}
	}

	srv.log(ctx).Info("[Fanout] Dispatch completed",
		slog.Int("attempted", attempted),
		slog.Int("sent", totalSent),
		slog.Int("failed", totalFailed),
	)

	return attempted
}

// Notify implements usecase.NotificationFanoutUsecase.
func (srv *fanoutService) Notify(ctx context.Context, audience entity.Audience, message *usecase.PushMessage) (int, error) {
	tokens, err := srv.ResolveAudience(ctx, audience)
	if err != nil {
		return 0, err
	}

	return srv.Dispatch(ctx, tokens, message), nil
}

// HandleFanoutEvent implements usecase.NotificationFanoutUsecase.
func (srv *fanoutService) HandleFanoutEvent(ctx context.Context, event *service.FanoutEvent) (int, error) {
	if event == nil {
		return 0, domainerrors.ErrInvalidInput
	}

	data := make(map[string]string, len(event.Data)+1)
	maps.Copy(data, event.Data)
	data["event_id"] = event.ID

	return srv.Notify(ctx, event.Audience, &usecase.PushMessage{
		Title: event.Title,
		Body:  event.Body,
		Data:  data,
	})
}

// WatchBroadcasts implements usecase.NotificationFanoutUsecase. Only broadcasts created
// at or after the subscribe time are delivered; ids already handled at the current
// high-water mark are skipped.
func (srv *fanoutService) WatchBroadcasts(ctx context.Context, onEvent func(*entity.Broadcast)) error {
	signals, release := srv.feed.Subscribe(entity.CollectionBroadcasts)
	defer release()

	w := &broadcastWatch{
		mark: srv.now().UTC(),
		seen: make(map[uuid.UUID]struct{}),
	}
	srv.log(ctx).Info("[BroadcastWatcher] Watching broadcasts", slog.Time("since", w.mark))

	ticker := time.NewTicker(srv.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			srv.log(ctx).Info("[BroadcastWatcher] Stopped")

			return nil
		case _, ok := <-signals:
			if !ok {
				return errors.New("broadcast change feed closed")
			}
		case <-ticker.C:
		}

		if err := srv.processBroadcasts(ctx, w, onEvent); err != nil {
			srv.log(ctx).Error("[BroadcastWatcher] Failed to process broadcasts", slog.Any("error", err))
		}
	}
}

// broadcastWatch is the watcher's position.
type broadcastWatch struct {
	mark time.Time
	seen map[uuid.UUID]struct{}
}

func (w *broadcastWatch) advance(b *entity.Broadcast) {
	if b.CreatedAt.After(w.mark) {
		w.mark = b.CreatedAt
		clear(w.seen)
	}
	w.seen[b.ID] = struct{}{}
}

func (srv *fanoutService) processBroadcasts(ctx context.Context, w *broadcastWatch, onEvent func(*entity.Broadcast)) error {
	broadcasts, err := srv.broadcastRepo.FindCreatedSince(ctx, w.mark)
	if err != nil {
		return errors.Wrap(err, "failed to load broadcasts")
	}

	for _, b := range broadcasts {
		if ctx.Err() != nil {
			return nil
		}
		if _, done := w.seen[b.ID]; done {
			continue
		}

		attempted, err := srv.Notify(ctx, b.Audience, &usecase.PushMessage{
			Title: b.Title,
			Body:  b.Message,
			Data:  map[string]string{"broadcast_id": b.ID.String()},
		})
		if err != nil {
			srv.log(ctx).Warn("[BroadcastWatcher] Broadcast not delivered",
				slog.String("broadcast_id", b.ID.String()),
				slog.Any("error", err),
			)
		}

		b.Attempted = attempted
		if err := srv.broadcastRepo.UpdateAttempted(ctx, b.ID, attempted); err != nil {
			srv.log(ctx).Warn("[BroadcastWatcher] Failed to record attempted count",
				slog.String("broadcast_id", b.ID.String()),
				slog.Any("error", err),
			)
		}

		w.advance(b)
		if onEvent != nil {
			onEvent(b)
		}
	}

	return nil
}
