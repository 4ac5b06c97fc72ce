package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "github.com/forcollegesake07/food-bridge/internal/delivery/context"
	"github.com/forcollegesake07/food-bridge/internal/domain/constants"
	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	"github.com/forcollegesake07/food-bridge/internal/domain/repository"
	"github.com/forcollegesake07/food-bridge/internal/domain/service"
	"github.com/forcollegesake07/food-bridge/internal/domain/session"
	"github.com/forcollegesake07/food-bridge/internal/usecase"
)

type gateService struct {
	profileRepo repository.ProfileRepository
	identity    service.IdentityProvider
	logger      *slog.Logger
}

// GateServiceParams holds dependencies for the profile gate, injected by Fx.
type GateServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	Identity    service.IdentityProvider
	Logger      *slog.Logger
}

// NewGateService creates the profile gate.
func NewGateService(params GateServiceParams) usecase.ProfileGateUsecase {
	return &gateService{
		profileRepo: params.ProfileRepo,
		identity:    params.Identity,
		logger:      params.Logger,
	}
}

func (srv *gateService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve implements usecase.ProfileGateUsecase.
func (srv *gateService) Resolve(
	ctx context.Context,
	authUser *entity.AuthUser,
	expectedRole entity.Role,
	writer *session.Writer,
) (*usecase.GateResult, error) {
	if authUser == nil || authUser.UID == "" {
		return &usecase.GateResult{State: usecase.GateUnauthenticated, Redirect: constants.RouteLogin}, nil
	}

	srv.log(ctx).Debug("[Gate] Authenticating", slog.String("uid", authUser.UID), slog.String("state", string(usecase.GateAuthenticating)))

	profile, err := srv.profileRepo.FindByID(ctx, authUser.UID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		srv.log(ctx).Info("[Gate] No profile for identity, signing out", slog.String("uid", authUser.UID))
		srv.signOut(ctx, authUser.UID)

		return &usecase.GateResult{State: usecase.GateUnauthenticated, Redirect: constants.RouteLogin}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load profile")
	}

	if profile.IsDisabled {
		srv.log(ctx).Info("[Gate] Disabled account, signing out", slog.String("uid", authUser.UID))
		srv.signOut(ctx, authUser.UID)

		return &usecase.GateResult{State: usecase.GateDisabled, Redirect: constants.RouteLogin}, nil
	}

	if expectedRole != entity.RoleNone && profile.Role != expectedRole {
		return &usecase.GateResult{State: usecase.GateRoleMismatch, Redirect: usecase.RouteForRole(profile.Role)}, nil
	}

	snap := session.Snapshot{
		AuthUser: authUser,
		Profile:  profile,
		Location: profile.Location,
	}
	if writer != nil {
		writer.Publish(snap)
	}

	return &usecase.GateResult{State: usecase.GateReady, Snapshot: snap}, nil
}

// signOut is best-effort: the caller is rejected either way.
func (srv *gateService) signOut(ctx context.Context, uid string) {
	if srv.identity == nil {
		return
	}
	if err := srv.identity.SignOut(ctx, uid); err != nil {
		srv.log(ctx).Warn("[Gate] Sign out failed", slog.String("uid", uid), slog.Any("error", err))
	}
}
