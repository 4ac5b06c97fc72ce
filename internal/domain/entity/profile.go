package entity

import "time"

// AuthUser is the identity yielded by the identity provider for an authenticated caller.
type AuthUser struct {
	UID           string `json:"uid"`            // Stable identifier issued by the identity provider.
	Email         string `json:"email"`          // Email on the identity record.
	EmailVerified bool   `json:"email_verified"` // Whether the provider verified the email.
	Role          Role   `json:"role"`           // Custom role claim, may be empty.
}

// Profile is the per-user document that the rest of the system reads.
type Profile struct {
	ID                string    `json:"id"`                 // Equal to AuthUser.UID.
	Role              Role      `json:"role"`               // Assigned once by an admin.
	RequestedRole     Role      `json:"requested_role"`     // Role asked for at registration.
	Name              string    `json:"name"`               // Display name of the restaurant, orphanage or person.
	Email             string    `json:"email"`              // Contact email used for transactional mail.
	Phone             string    `json:"phone"`              // Contact phone.
	Address           string    `json:"address"`            // Free-form postal address.
	Location          *Location `json:"location"`           // Pinned location, nil when never set.
	IsDisabled        bool      `json:"is_disabled"`        // Disabled accounts cannot pass the profile gate.
	NotificationToken string    `json:"-"`                  // FCM registration token, empty when not registered.
	CreatedAt         time.Time `json:"created_at"`         // Timestamp of when this profile was created.
	UpdatedAt         time.Time `json:"updated_at"`         // Timestamp of the last modification.
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	c := *p
	c.Location = p.Location.Clone()

	return &c
}

// HasToken reports whether the profile registered for push notifications.
func (p *Profile) HasToken() bool {
	return p != nil && p.NotificationToken != ""
}

// DisplayName returns the name, or the fallback when the name is blank.
func (p *Profile) DisplayName(fallback string) string {
	if p == nil || p.Name == "" {
		return fallback
	}

	return p.Name
}

// ProfileUpdate is a merge update: nil fields are left untouched.
type ProfileUpdate struct {
	Name     *string
	Phone    *string
	Address  *string
	Location *Location
}

// IsEmpty reports whether the update would change nothing.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Name == nil && u.Phone == nil && u.Address == nil && u.Location == nil
}
