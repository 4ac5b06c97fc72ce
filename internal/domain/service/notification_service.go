package service

import "context"

// NotificationService delivers FCM pushes to the registration tokens stored on profiles.
// Donation, pickup and broadcast alerts all go through it.
type NotificationService interface {
	// SendBatchNotification multicasts one alert to at most one FCM batch of tokens.
	// invalidTokens lists the tokens FCM reported as unregistered, so the caller can
	// clear them from their profiles. A per-token failure is counted, not returned.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// SendSingleNotification pushes to one profile, e.g. telling a restaurant its donation was claimed.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
