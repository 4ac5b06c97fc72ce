package usecase

import (
	"context"

	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	"github.com/forcollegesake07/food-bridge/internal/domain/session"
)

// ProfileUsecase defines profile registration and maintenance.
type ProfileUsecase interface {
	Register(ctx context.Context, authUser *entity.AuthUser, input *RegisterProfileInput) (*entity.Profile, error)
	UpdateProfile(ctx context.Context, snap session.Snapshot, input *UpdateProfileInput) (*entity.Profile, error)
	UpdateNotificationToken(ctx context.Context, snap session.Snapshot, token string) error

	// Admin only
	AssignRole(ctx context.Context, snap session.Snapshot, profileID string, role entity.Role) error
	SetDisabled(ctx context.Context, snap session.Snapshot, profileID string, disabled bool) error
}

// --- Input DTOs ---

// RegisterProfileInput defines the data required to create a profile.
type RegisterProfileInput struct {
	Name          string
	Phone         string
	Address       string
	Location      *entity.Location
	RequestedRole entity.Role
}

// UpdateProfileInput is a merge update; nil fields are left untouched.
type UpdateProfileInput struct {
	Name     *string
	Phone    *string
	Address  *string
	Location *entity.Location
}
