// Package entity contains the core business objects of the project.
package entity

// Role represents the part a profile plays in the system.
type Role string

const (
	// RoleNone marks a profile whose role has not been assigned yet.
	RoleNone Role = ""
	// RoleRestaurant posts surplus food.
	RoleRestaurant Role = "restaurant"
	// RoleOrphanage claims donations and posts requests.
	RoleOrphanage Role = "orphanage"
	// RoleDriver picks up claimed donations.
	RoleDriver Role = "driver"
	// RoleAdmin manages profiles and broadcasts.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is an assignable value.
func (r Role) IsValid() bool {
	switch r {
	case RoleRestaurant, RoleOrphanage, RoleDriver, RoleAdmin:
		return true
	default:
		return false
	}
}

// IsSelfService reports whether a user may request this role at registration.
func (r Role) IsSelfService() bool {
	return r == RoleRestaurant || r == RoleOrphanage || r == RoleDriver
}
