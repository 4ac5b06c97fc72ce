// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when no profile exists for the given id.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrProfileAlreadyExists is returned when a profile with the same id already exists.
	ErrProfileAlreadyExists = errors.New("profile already exists")
	// ErrRoleAlreadyAssigned is returned when the profile already carries a role.
	ErrRoleAlreadyAssigned = errors.New("role already assigned")
)

// ProfileRepository defines the operations for profile persistence.
type ProfileRepository interface {
	// FindByID retrieves a profile by the identity provider's user id.
	FindByID(ctx context.Context, id string) (*entity.Profile, error)

	// Create persists a new profile.
	Create(ctx context.Context, profile *entity.Profile) error

	// UpdateContact merges the non-nil fields of update into the profile and returns the result.
	UpdateContact(ctx context.Context, id string, update entity.ProfileUpdate) (*entity.Profile, error)

	// UpdateNotificationToken stores the push registration token of a profile.
	UpdateNotificationToken(ctx context.Context, id, token string) error

	// ClearNotificationTokens removes the given tokens from every profile holding them.
	ClearNotificationTokens(ctx context.Context, tokens []string) (int64, error)

	// AssignRole sets the role only while the profile has none.
	AssignRole(ctx context.Context, id string, role entity.Role) error

	// SetDisabled enables or disables a profile.
	SetDisabled(ctx context.Context, id string, disabled bool) error

	// FindByRole returns every profile with the role.
	FindByRole(ctx context.Context, role entity.Role) ([]*entity.Profile, error)

	// FindAll returns every profile.
	FindAll(ctx context.Context) ([]*entity.Profile, error)
}
