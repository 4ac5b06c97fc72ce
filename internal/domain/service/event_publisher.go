// Package service defines interfaces for the external collaborators the domain relies on.
package service

import (
	"context"

	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
)

// FanoutEventType names what happened.
type FanoutEventType string

const (
	FanoutDonationCreated FanoutEventType = "donation_created"
	FanoutPickupReady     FanoutEventType = "pickup_ready"
	FanoutRequestCreated  FanoutEventType = "request_created"
)

// FanoutEvent is a push notification to be delivered to an audience by the notifier.
type FanoutEvent struct {
	ID        string            `json:"id"`
	RequestID string            `json:"request_id,omitempty"` // For distributed tracing
	Type      FanoutEventType   `json:"type"`
	Audience  entity.Audience   `json:"audience"`
	Title     string            `json:"title"`
	Body      string            `json:"body"`
	Data      map[string]string `json:"data,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishFanoutEvent publishes a fan-out event for async delivery
	PublishFanoutEvent(ctx context.Context, event *FanoutEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

// FanoutEventHandler delivers a fan-out event. The notification worker implements it.
type FanoutEventHandler interface {
	HandleFanoutEvent(ctx context.Context, event *FanoutEvent) (attempted int, err error)
}
