package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidStatusTransition is returned when an event is not allowed from the current status.
var ErrInvalidStatusTransition = errors.New("invalid donation status transition")

// DonationStatus is the lifecycle state of a donation.
type DonationStatus string

const (
	DonationAvailable DonationStatus = "Available"
	DonationClaimed   DonationStatus = "Claimed"
	DonationConfirmed DonationStatus = "Confirmed"
)

// DonationEvent is an action that moves a donation through its lifecycle.
type DonationEvent string

const (
	EventClaim   DonationEvent = "claim"
	EventConfirm DonationEvent = "confirm"
)

// donationTransitions is the complete transition table; anything missing is invalid.
var donationTransitions = map[DonationStatus]map[DonationEvent]DonationStatus{
	DonationAvailable: {EventClaim: DonationClaimed},
	DonationClaimed:   {EventConfirm: DonationConfirmed},
}

// Next returns the status reached by applying event, or ErrInvalidStatusTransition.
func (s DonationStatus) Next(event DonationEvent) (DonationStatus, error) {
	next, ok := donationTransitions[s][event]
	if !ok {
		return s, ErrInvalidStatusTransition
	}

	return next, nil
}

// rank orders statuses so regressions can be detected.
func (s DonationStatus) rank() int {
	switch s {
	case DonationAvailable:
		return 1
	case DonationClaimed:
		return 2
	case DonationConfirmed:
		return 3
	default:
		return 0
	}
}

// Precedes reports whether s comes strictly before other in the lifecycle.
func (s DonationStatus) Precedes(other DonationStatus) bool {
	return s.rank() > 0 && s.rank() < other.rank()
}

// IsValid checks if the status is a known value.
func (s DonationStatus) IsValid() bool {
	return s.rank() > 0
}

// ContactInfo is the contact block copied onto donations.
type ContactInfo struct {
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// Donation is a restaurant-posted offer of surplus food.
type Donation struct {
	ID                uuid.UUID      `json:"id"`                 // The Global Unique Identifier (GUID) for the donation.
	RestaurantID      string         `json:"restaurant_id"`      // Owning restaurant profile, immutable.
	RestaurantName    string         `json:"restaurant_name"`    // Restaurant name at creation time.
	RestaurantContact ContactInfo    `json:"restaurant_contact"` // Restaurant contact block at creation time.
	FoodName          string         `json:"food_name"`          // What is offered.
	Servings          int            `json:"servings"`           // Number of servings, always positive.
	Status            DonationStatus `json:"status"`             // Lifecycle state, never regresses.
	Location          *Location      `json:"location"`           // Pickup location, nil when the restaurant has none.
	ClaimedBy         *string        `json:"claimed_by"`         // Orphanage that claimed the donation.
	RequestID         *uuid.UUID     `json:"request_id"`         // Request the claim satisfies, if any.
	ClaimedAt         *time.Time     `json:"claimed_at"`         // When the donation was claimed.
	ConfirmedAt       *time.Time     `json:"confirmed_at"`       // When receipt was confirmed.
	CreatedAt         time.Time      `json:"created_at"`         // Server-assigned creation timestamp.
	UpdatedAt         time.Time      `json:"updated_at"`         // Timestamp of the last modification.
}

// GetLocation implements geo.Located.
func (d *Donation) GetLocation() *Location {
	return d.Location
}

// IsClaimedBy reports whether the donation was claimed by the given profile.
func (d *Donation) IsClaimedBy(profileID string) bool {
	return d.ClaimedBy != nil && *d.ClaimedBy == profileID
}

// DonationTransition carries the fields written together with a status change.
type DonationTransition struct {
	From      DonationStatus
	To        DonationStatus
	ClaimedBy *string
	RequestID *uuid.UUID
	At        time.Time
}
