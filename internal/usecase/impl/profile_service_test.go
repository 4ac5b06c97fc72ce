package impl

import (
	"context"
	"math"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	domainerrors "github.com/forcollegesake07/food-bridge/internal/domain/errors"
	"github.com/forcollegesake07/food-bridge/internal/domain/repository"
	"github.com/forcollegesake07/food-bridge/internal/domain/session"
	mockRepo "github.com/forcollegesake07/food-bridge/internal/mocks/repository"
	mockSvc "github.com/forcollegesake07/food-bridge/internal/mocks/service"
	"github.com/forcollegesake07/food-bridge/internal/usecase"
)

type profileServiceFixtures struct {
	service     usecase.ProfileUsecase
	profileRepo *mockRepo.MockProfileRepository
	identity    *mockSvc.MockIdentityProvider
	feed        *mockSvc.MockChangeFeed
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	fx := profileServiceFixtures{
		profileRepo: mockRepo.NewMockProfileRepository(t),
		identity:    mockSvc.NewMockIdentityProvider(t),
		feed:        mockSvc.NewMockChangeFeed(t),
	}
	fx.service = NewProfileService(ProfileServiceParams{
		ProfileRepo: fx.profileRepo,
		Identity:    fx.identity,
		Feed:        fx.feed,
		Logger:      newDiscardLogger(),
	})

	return fx
}

func strPtr(s string) *string { return &s }

func TestProfileService_Register(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	user := &entity.AuthUser{UID: "u1", Email: "u1@example.com"}

	fx.profileRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Profile")).Return(nil)
	fx.feed.EXPECT().Publish(ctx, entity.CollectionProfiles).Return(nil)

	profile, err := fx.service.Register(ctx, user, &usecase.RegisterProfileInput{
		Name:          " Sunrise <i>Home</i> ",
		Phone:         "0912",
		RequestedRole: entity.RoleOrphanage,
		Location:      &entity.Location{Lat: 25, Lng: 121},
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", profile.ID)
	assert.Equal(t, "Sunrise Home", profile.Name)
	assert.Equal(t, "u1@example.com", profile.Email)
	assert.Equal(t, entity.RoleNone, profile.Role)
	assert.Equal(t, entity.RoleOrphanage, profile.RequestedRole)
	assert.False(t, profile.IsDisabled)
}

func TestProfileService_Register_AdoptsRoleClaim(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	user := &entity.AuthUser{UID: "admin-1", Role: entity.RoleAdmin}

	fx.profileRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	fx.feed.EXPECT().Publish(ctx, entity.CollectionProfiles).Return(nil)

	profile, err := fx.service.Register(ctx, user, &usecase.RegisterProfileInput{Name: "Ops"})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, profile.Role)
}

func TestProfileService_Register_Rejected(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name  string
		user  *entity.AuthUser
		input *usecase.RegisterProfileInput
		want  error
	}{
		{"no identity", nil, &usecase.RegisterProfileInput{Name: "x"}, domainerrors.ErrNotAuthenticated},
		{"blank name", &entity.AuthUser{UID: "u1"}, &usecase.RegisterProfileInput{Name: "<b></b>"}, domainerrors.ErrInvalidInput},
		{"admin requested", &entity.AuthUser{UID: "u1"}, &usecase.RegisterProfileInput{Name: "x", RequestedRole: entity.RoleAdmin}, domainerrors.ErrInvalidInput},
		{"bad location", &entity.AuthUser{UID: "u1"}, &usecase.RegisterProfileInput{Name: "x", Location: &entity.Location{Lat: nan, Lng: 1}}, domainerrors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)

			_, err := fx.service.Register(context.Background(), tt.user, tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestProfileService_Register_Duplicate(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrProfileAlreadyExists)

	_, err := fx.service.Register(ctx, &entity.AuthUser{UID: "u1"}, &usecase.RegisterProfileInput{Name: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrProfileAlreadyExists)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	snap := newSnapshot("r1", entity.RoleRestaurant, nil)
	loc := &entity.Location{Lat: 1, Lng: 2}

	fx.profileRepo.EXPECT().UpdateContact(ctx, "r1", mock.MatchedBy(func(u entity.ProfileUpdate) bool {
		return u.Name != nil && *u.Name == "Bistro" && u.Phone == nil && u.Address == nil &&
			u.Location != nil && *u.Location == *loc
	})).Return(&entity.Profile{ID: "r1", Name: "Bistro", Location: loc}, nil)
	fx.feed.EXPECT().Publish(ctx, entity.CollectionProfiles).Return(nil)

	profile, err := fx.service.UpdateProfile(ctx, snap, &usecase.UpdateProfileInput{Name: strPtr(" Bistro "), Location: loc})
	require.NoError(t, err)
	assert.Equal(t, "Bistro", profile.Name)
}

func TestProfileService_UpdateProfile_Rejected(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	snap := newSnapshot("r1", entity.RoleRestaurant, nil)

	_, err := fx.service.UpdateProfile(ctx, snap, &usecase.UpdateProfileInput{})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = fx.service.UpdateProfile(ctx, snap, &usecase.UpdateProfileInput{Phone: strPtr("   ")})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	_, err = fx.service.UpdateProfile(ctx, session.Snapshot{}, &usecase.UpdateProfileInput{Phone: strPtr("1")})
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)
}

func TestProfileService_UpdateNotificationToken(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	snap := newSnapshot("r1", entity.RoleRestaurant, nil)

	fx.profileRepo.EXPECT().UpdateNotificationToken(ctx, "r1", "fcm-token").Return(nil)

	require.NoError(t, fx.service.UpdateNotificationToken(ctx, snap, " fcm-token "))
	assert.ErrorIs(t, fx.service.UpdateNotificationToken(ctx, snap, ""), domainerrors.ErrInvalidInput)
}

func TestProfileService_AssignRole(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	admin := newSnapshot("admin-1", entity.RoleAdmin, nil)

	fx.profileRepo.EXPECT().AssignRole(ctx, "u1", entity.RoleDriver).Return(nil)
	fx.identity.EXPECT().AssignRole(ctx, "u1", entity.RoleDriver).Return(errors.New("claims unavailable"))
	fx.feed.EXPECT().Publish(ctx, entity.CollectionProfiles).Return(nil)

	require.NoError(t, fx.service.AssignRole(ctx, admin, "u1", entity.RoleDriver))
}

func TestProfileService_AssignRole_Errors(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	admin := newSnapshot("admin-1", entity.RoleAdmin, nil)

	err := fx.service.AssignRole(ctx, newSnapshot("r1", entity.RoleRestaurant, nil), "u1", entity.RoleDriver)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	err = fx.service.AssignRole(ctx, admin, "u1", entity.Role("chef"))
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)

	fx.profileRepo.EXPECT().AssignRole(ctx, "u1", entity.RoleDriver).Return(repository.ErrRoleAlreadyAssigned)
	err = fx.service.AssignRole(ctx, admin, "u1", entity.RoleDriver)
	assert.ErrorIs(t, err, domainerrors.ErrRoleAlreadyAssigned)

	fx.profileRepo.EXPECT().AssignRole(ctx, "ghost", entity.RoleDriver).Return(repository.ErrProfileNotFound)
	err = fx.service.AssignRole(ctx, admin, "ghost", entity.RoleDriver)
	assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
}

func TestProfileService_SetDisabled(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	admin := newSnapshot("admin-1", entity.RoleAdmin, nil)

	fx.profileRepo.EXPECT().SetDisabled(ctx, "u1", true).Return(nil)
	fx.identity.EXPECT().SignOut(ctx, "u1").Return(nil).Once()
	fx.profileRepo.EXPECT().SetDisabled(ctx, "u1", false).Return(nil)
	fx.feed.EXPECT().Publish(ctx, entity.CollectionProfiles).Return(nil).Times(2)

	require.NoError(t, fx.service.SetDisabled(ctx, admin, "u1", true))
	require.NoError(t, fx.service.SetDisabled(ctx, admin, "u1", false))
}

func TestProfileService_SetDisabled_Self(t *testing.T) {
	fx := createTestProfileService(t)
	admin := newSnapshot("admin-1", entity.RoleAdmin, nil)

	err := fx.service.SetDisabled(context.Background(), admin, "admin-1", true)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidInput)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
}
