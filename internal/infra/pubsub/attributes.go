package pubsub

import "github.com/forcollegesake07/food-bridge/internal/domain/service"

// eventAttributes are the message attributes used for filtering and tracing.
func eventAttributes(event *service.FanoutEvent) map[string]string {
	attributes := map[string]string{
		"event_id":      event.ID,
		"type":          string(event.Type),
		"audience_kind": string(event.Audience.Kind),
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
