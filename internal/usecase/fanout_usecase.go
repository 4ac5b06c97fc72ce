package usecase

import (
	"context"

	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	"github.com/forcollegesake07/food-bridge/internal/domain/service"
)

// PushMessage is the content of a push notification.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// NotificationFanoutUsecase resolves audiences and delivers push notifications.
type NotificationFanoutUsecase interface {
	// ResolveAudience returns the distinct push tokens of the audience.
	ResolveAudience(ctx context.Context, audience entity.Audience) ([]string, error)

	// Dispatch multicasts in batches and returns the number of tokens attempted.
	Dispatch(ctx context.Context, tokens []string, message *PushMessage) int

	// Notify resolves the audience and dispatches to it.
	Notify(ctx context.Context, audience entity.Audience, message *PushMessage) (int, error)

	// HandleFanoutEvent delivers a published fan-out event.
	HandleFanoutEvent(ctx context.Context, event *service.FanoutEvent) (int, error)

	// WatchBroadcasts delivers broadcasts created after the call, until ctx is done.
	// onEvent, when set, observes every processed broadcast.
	WatchBroadcasts(ctx context.Context, onEvent func(*entity.Broadcast)) error
}
