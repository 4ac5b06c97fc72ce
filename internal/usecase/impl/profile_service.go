package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "github.com/forcollegesake07/food-bridge/internal/delivery/context"
	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	domainerrors "github.com/forcollegesake07/food-bridge/internal/domain/errors"
	"github.com/forcollegesake07/food-bridge/internal/domain/repository"
	"github.com/forcollegesake07/food-bridge/internal/domain/service"
	"github.com/forcollegesake07/food-bridge/internal/domain/session"
	"github.com/forcollegesake07/food-bridge/internal/usecase"
	"github.com/forcollegesake07/food-bridge/internal/util"
)

type profileService struct {
	profileRepo repository.ProfileRepository
	identity    service.IdentityProvider
	feed        service.ChangeFeed
	logger      *slog.Logger
	now         func() time.Time
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Identity    service.IdentityProvider
	Feed        service.ChangeFeed
	Logger      *slog.Logger
}

// NewProfileService creates a new profile service instance.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: params.ProfileRepo,
		identity:    params.Identity,
		feed:        params.Feed,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the caller's profile. The role stays unassigned unless the
// identity already carries a role claim.
func (srv *profileService) Register(ctx context.Context, authUser *entity.AuthUser, input *usecase.RegisterProfileInput) (*entity.Profile, error) {
	if authUser == nil || authUser.UID == "" {
		return nil, domainerrors.ErrNotAuthenticated
	}
	if input == nil {
		return nil, domainerrors.ErrInvalidInput
	}

	name := util.SanitizeText(input.Name)
	if name == "" {
		return nil, domainerrors.ErrInvalidInput.WithDetails("name is required")
	}
	if input.RequestedRole != entity.RoleNone && !input.RequestedRole.IsSelfService() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("requested role is not available")
	}
	if input.Location != nil && !input.Location.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("location is invalid")
	}

	now := srv.now().UTC()
	profile := &entity.Profile{
		ID:            authUser.UID,
		RequestedRole: input.RequestedRole,
		Name:          name,
		Email:         authUser.Email,
		Phone:         util.SanitizeText(input.Phone),
		Address:       util.SanitizeText(input.Address),
		Location:      input.Location.Clone(),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if authUser.Role.IsValid() {
		profile.Role = authUser.Role
	}

	if err := srv.profileRepo.Create(ctx, profile); err != nil {
		if errors.Is(err, repository.ErrProfileAlreadyExists) {
			return nil, domainerrors.ErrProfileAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create profile")
	}

	srv.log(ctx).Info("Profile registered",
		slog.String("profile_id", profile.ID),
		slog.String("requested_role", profile.RequestedRole.String()),
	)
	signal(ctx, srv.log(ctx), srv.feed, entity.CollectionProfiles)

	return profile, nil
}

// UpdateProfile merges contact fields and location into the caller's own profile.
func (srv *profileService) UpdateProfile(ctx context.Context, snap session.Snapshot, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	if err := requireRole(snap, entity.RoleNone); err != nil {
		return nil, err
	}
	if input == nil {
		return nil, domainerrors.ErrInvalidInput
	}

	update := entity.ProfileUpdate{Location: input.Location.Clone()}
	for _, field := range []struct {
		name  string
		value *string
		dst   **string
	}{
		{"name", input.Name, &update.Name},
		{"phone", input.Phone, &update.Phone},
		{"address", input.Address, &update.Address},
	} {
		if field.value == nil {
			continue
		}
		cleaned := util.SanitizeText(*field.value)
		if cleaned == "" {
			return nil, domainerrors.ErrInvalidInput.WithDetails(field.name + " must not be blank")
		}
		*field.dst = &cleaned
	}
	if update.IsEmpty() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("nothing to update")
	}
	if update.Location != nil && !update.Location.IsValid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("location is invalid")
	}

	profile, err := srv.profileRepo.UpdateContact(ctx, snap.Profile.ID, update)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to update profile")
	}

	signal(ctx, srv.log(ctx), srv.feed, entity.CollectionProfiles)

	return profile, nil
}

// UpdateNotificationToken registers the caller's push token.
func (srv *profileService) UpdateNotificationToken(ctx context.Context, snap session.Snapshot, token string) error {
	if err := requireRole(snap, entity.RoleNone); err != nil {
		return err
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return domainerrors.ErrInvalidInput.WithDetails("token is required")
	}

	if err := srv.profileRepo.UpdateNotificationToken(ctx, snap.Profile.ID, token); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to update notification token")
	}

	return nil
}

// AssignRole sets the role of a profile once and mirrors it into the identity claims.
func (srv *profileService) AssignRole(ctx context.Context, snap session.Snapshot, profileID string, role entity.Role) error {
	if err := requireRole(snap, entity.RoleAdmin); err != nil {
		return err
	}
	if !role.IsValid() {
		return domainerrors.ErrInvalidInput.WithDetails("unknown role")
	}

	if err := srv.profileRepo.AssignRole(ctx, profileID, role); err != nil {
		switch {
		case errors.Is(err, repository.ErrProfileNotFound):
			return domainerrors.ErrProfileNotFound
		case errors.Is(err, repository.ErrRoleAlreadyAssigned):
			return domainerrors.ErrRoleAlreadyAssigned
		default:
			return errors.Wrap(err, "failed to assign role")
		}
	}

	// The profile is authoritative; a stale claim only affects token contents.
	if err := srv.identity.AssignRole(ctx, profileID, role); err != nil {
		srv.log(ctx).Warn("Failed to set role claim",
			slog.String("profile_id", profileID),
			slog.Any("error", err),
		)
	}

	srv.log(ctx).Info("Role assigned",
		slog.String("profile_id", profileID),
		slog.String("role", role.String()),
		slog.String("admin_id", snap.Profile.ID),
	)
	signal(ctx, srv.log(ctx), srv.feed, entity.CollectionProfiles)

	return nil
}

// SetDisabled enables or disables a profile. Disabling revokes its sessions.
func (srv *profileService) SetDisabled(ctx context.Context, snap session.Snapshot, profileID string, disabled bool) error {
	if err := requireRole(snap, entity.RoleAdmin); err != nil {
		return err
	}
	if disabled && profileID == snap.Profile.ID {
		return domainerrors.ErrForbidden.WithDetails("admins cannot disable themselves")
	}

	if err := srv.profileRepo.SetDisabled(ctx, profileID, disabled); err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrProfileNotFound
		}

		return errors.Wrap(err, "failed to update disabled flag")
	}

	if disabled {
		if err := srv.identity.SignOut(ctx, profileID); err != nil {
			srv.log(ctx).Warn("Failed to revoke sessions of disabled profile",
				slog.String("profile_id", profileID),
				slog.Any("error", err),
			)
		}
	}

	srv.log(ctx).Info("Profile disabled flag updated",
		slog.String("profile_id", profileID),
		slog.Bool("disabled", disabled),
	)
	signal(ctx, srv.log(ctx), srv.feed, entity.CollectionProfiles)

	return nil
}
