package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidAudience is returned by Audience.Validate.
var ErrInvalidAudience = errors.New("invalid notification audience")

// AudienceKind selects how a notification target is resolved.
type AudienceKind string

const (
	AudienceSpecific AudienceKind = "specific"
	AudienceRole     AudienceKind = "role"
	AudienceAll      AudienceKind = "all"
)

// Audience describes who should receive a notification.
type Audience struct {
	Kind   AudienceKind `json:"kind"`
	Role   Role         `json:"role,omitempty"`
	UserID string       `json:"user_id,omitempty"`
}

// Validate checks that the audience carries what its kind needs.
func (a Audience) Validate() error {
	switch a.Kind {
	case AudienceSpecific:
		if a.UserID == "" {
			return ErrInvalidAudience
		}
	case AudienceRole:
		if !a.Role.IsValid() {
			return ErrInvalidAudience
		}
	case AudienceAll:
	default:
		return ErrInvalidAudience
	}

	return nil
}

// SpecificAudience targets a single profile.
func SpecificAudience(userID string) Audience {
	return Audience{Kind: AudienceSpecific, UserID: userID}
}

// RoleAudience targets every profile with the role.
func RoleAudience(role Role) Audience {
	return Audience{Kind: AudienceRole, Role: role}
}

// Broadcast is an append-only notification event fanned out by the notifier.
type Broadcast struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the broadcast.
	Title     string    `json:"title"`      // Push title.
	Message   string    `json:"message"`    // Push body.
	Audience  Audience  `json:"audience"`   // Who receives it.
	CreatedBy string    `json:"created_by"` // Admin profile that created it.
	Attempted int       `json:"attempted"`  // Tokens attempted by the watcher that processed it.
	CreatedAt time.Time `json:"created_at"` // Server-assigned creation timestamp.
}

// Collection names signalled on the change feed.
const (
	CollectionProfiles   = "profiles"
	CollectionDonations  = "donations"
	CollectionRequests   = "requests"
	CollectionBroadcasts = "broadcasts"
)
