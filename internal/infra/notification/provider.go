// Package notification implements push delivery through Firebase Cloud Messaging.
package notification

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/forcollegesake07/food-bridge/internal/domain/service"
	"github.com/forcollegesake07/food-bridge/internal/errors"
	"github.com/forcollegesake07/food-bridge/internal/infra/firebase"
)

// Params holds dependencies for the notification service
type Params struct {
	fx.In

	Ctx      context.Context
	Logger   *slog.Logger
	Firebase *firebase.AppProvider
}

// NewNotificationService returns an FCM sender, or a logging sender when Firebase is not configured
func NewNotificationService(params Params) (service.NotificationService, error) {
	if !params.Firebase.Configured() {
		params.Logger.Warn("Firebase credentials not configured, push notifications will only be logged")

		return newLogService(params.Logger), nil
	}

	app, err := params.Firebase.App(params.Ctx)
	if err != nil {
		return nil, err
	}

	client, err := app.Messaging(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseService(client), nil
}
