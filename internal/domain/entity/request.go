package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the lifecycle state of a request.
type RequestStatus string

const (
	RequestPending   RequestStatus = "Pending"
	RequestFulfilled RequestStatus = "Fulfilled"
)

// Request is an orphanage-posted need for food.
type Request struct {
	ID             uuid.UUID     `json:"id"`              // The Global Unique Identifier (GUID) for the request.
	OrphanageID    string        `json:"orphanage_id"`    // Owning orphanage profile.
	OrphanageName  string        `json:"orphanage_name"`  // Orphanage name at creation time.
	OrphanagePhone string        `json:"orphanage_phone"` // Orphanage phone at creation time.
	ItemNeeded     string        `json:"item_needed"`     // What is needed.
	Quantity       int           `json:"quantity"`        // How much is needed, always positive.
	Location       *Location     `json:"location"`        // Where it is needed.
	Status         RequestStatus `json:"status"`          // Only Pending requests are matched.
	CreatedAt      time.Time     `json:"created_at"`      // Server-assigned creation timestamp.
	FulfilledAt    *time.Time    `json:"fulfilled_at"`    // When the request was fulfilled.
}

// GetLocation implements geo.Located.
func (r *Request) GetLocation() *Location {
	return r.Location
}
