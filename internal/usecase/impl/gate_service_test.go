package impl

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	domainerrors "github.com/forcollegesake07/food-bridge/internal/domain/errors"
	"github.com/forcollegesake07/food-bridge/internal/domain/repository"
	"github.com/forcollegesake07/food-bridge/internal/domain/session"
	mockRepo "github.com/forcollegesake07/food-bridge/internal/mocks/repository"
	mockSvc "github.com/forcollegesake07/food-bridge/internal/mocks/service"
	"github.com/forcollegesake07/food-bridge/internal/usecase"
)

type gateServiceFixtures struct {
	service     usecase.ProfileGateUsecase
	profileRepo *mockRepo.MockProfileRepository
	identity    *mockSvc.MockIdentityProvider
}

func createTestGateService(t *testing.T) gateServiceFixtures {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	identity := mockSvc.NewMockIdentityProvider(t)

	return gateServiceFixtures{
		service: NewGateService(GateServiceParams{
			ProfileRepo: profileRepo,
			Identity:    identity,
			Logger:      newDiscardLogger(),
		}),
		profileRepo: profileRepo,
		identity:    identity,
	}
}

func TestGateService_Resolve_NoIdentity(t *testing.T) {
	fx := createTestGateService(t)

	result, err := fx.service.Resolve(context.Background(), nil, entity.RoleRestaurant, nil)
	require.NoError(t, err)
	assert.Equal(t, usecase.GateUnauthenticated, result.State)
	assert.Equal(t, "/login", result.Redirect)
	assert.ErrorIs(t, result.Err(), domainerrors.ErrNotAuthenticated)
}

func TestGateService_Resolve_MissingProfileSignsOut(t *testing.T) {
	fx := createTestGateService(t)
	ctx := context.Background()
	user := &entity.AuthUser{UID: "u1"}

	fx.profileRepo.EXPECT().FindByID(ctx, "u1").Return(nil, repository.ErrProfileNotFound)
	fx.identity.EXPECT().SignOut(ctx, "u1").Return(nil)

	result, err := fx.service.Resolve(ctx, user, entity.RoleNone, nil)
	require.NoError(t, err)
	assert.Equal(t, usecase.GateUnauthenticated, result.State)
	assert.Equal(t, "/login", result.Redirect)
}

func TestGateService_Resolve_DisabledSignsOut(t *testing.T) {
	fx := createTestGateService(t)
	ctx := context.Background()
	user := &entity.AuthUser{UID: "u1"}

	fx.profileRepo.EXPECT().FindByID(ctx, "u1").
		Return(&entity.Profile{ID: "u1", Role: entity.RoleRestaurant, IsDisabled: true}, nil)
	fx.identity.EXPECT().SignOut(ctx, "u1").Return(errors.New("revocation failed"))

	result, err := fx.service.Resolve(ctx, user, entity.RoleRestaurant, nil)
	require.NoError(t, err)
	assert.Equal(t, usecase.GateDisabled, result.State)
	assert.Equal(t, "/login", result.Redirect)

	gateErr := result.Err()
	assert.ErrorIs(t, gateErr, domainerrors.ErrAccountDisabled)

	var redirector domainerrors.Redirector
	require.True(t, errors.As(gateErr, &redirector))
	assert.Equal(t, "/login", redirector.Redirect())
}

func TestGateService_Resolve_RoleMismatch(t *testing.T) {
	tests := []struct {
		name     string
		actual   entity.Role
		expected entity.Role
		redirect string
	}{
		{"orphanage on restaurant page", entity.RoleOrphanage, entity.RoleRestaurant, "/orphanages"},
		{"restaurant on orphanage page", entity.RoleRestaurant, entity.RoleOrphanage, "/restaurant"},
		{"admin on driver page", entity.RoleAdmin, entity.RoleDriver, "/admin"},
		{"driver on admin page", entity.RoleDriver, entity.RoleAdmin, "/login"},
		{"unassigned on restaurant page", entity.RoleNone, entity.RoleRestaurant, "/login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestGateService(t)
			ctx := context.Background()

			fx.profileRepo.EXPECT().FindByID(ctx, "u1").
				Return(&entity.Profile{ID: "u1", Role: tt.actual}, nil)

			result, err := fx.service.Resolve(ctx, &entity.AuthUser{UID: "u1"}, tt.expected, nil)
			require.NoError(t, err)
			assert.Equal(t, usecase.GateRoleMismatch, result.State)
			assert.Equal(t, tt.redirect, result.Redirect)
			assert.ErrorIs(t, result.Err(), domainerrors.ErrRoleMismatch)
		})
	}
}

func TestGateService_Resolve_ReadyPublishesSnapshot(t *testing.T) {
	fx := createTestGateService(t)
	ctx := context.Background()
	loc := &entity.Location{Lat: 25.03, Lng: 121.56}
	user := &entity.AuthUser{UID: "u1", Email: "r@example.com"}

	fx.profileRepo.EXPECT().FindByID(ctx, "u1").
		Return(&entity.Profile{ID: "u1", Role: entity.RoleRestaurant, Name: "Bistro", Location: loc}, nil)

	sess, writer := session.New()
	result, err := fx.service.Resolve(ctx, user, entity.RoleRestaurant, writer)
	require.NoError(t, err)
	assert.Equal(t, usecase.GateReady, result.State)
	assert.NoError(t, result.Err())

	select {
	case <-sess.Ready():
	default:
		t.Fatal("session should be ready after the gate resolved")
	}

	snap := sess.Snapshot()
	assert.Equal(t, "Bistro", snap.Profile.Name)
	assert.Equal(t, entity.RoleRestaurant, snap.Role())
	assert.Equal(t, loc, snap.Location)
}

func TestGateService_Resolve_LoadError(t *testing.T) {
	fx := createTestGateService(t)
	ctx := context.Background()

	fx.profileRepo.EXPECT().FindByID(ctx, "u1").Return(nil, errors.New("database down"))

	result, err := fx.service.Resolve(ctx, &entity.AuthUser{UID: "u1"}, entity.RoleNone, nil)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Contains(t, err.Error(), "failed to load profile")
}
