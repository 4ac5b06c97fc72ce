package identity

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/forcollegesake07/food-bridge/config"
	"github.com/forcollegesake07/food-bridge/internal/domain/constants"
	"github.com/forcollegesake07/food-bridge/internal/domain/service"
	"github.com/forcollegesake07/food-bridge/internal/errors"
	"github.com/forcollegesake07/food-bridge/internal/infra/firebase"
)

// Params holds dependencies for the identity provider
type Params struct {
	fx.In

	Ctx      context.Context
	Config   *config.Config
	Logger   *slog.Logger
	Firebase *firebase.AppProvider
}

// Result exposes the provider and, for development tokens, the issuer
type Result struct {
	fx.Out

	Provider service.IdentityProvider
	Issuer   service.TokenIssuer
}

// NewIdentityProvider selects the identity provider from config
func NewIdentityProvider(params Params) (Result, error) {
	switch params.Config.Auth.Provider {
	case constants.AuthProviderJWT:
		if params.Config.Env.Env == constants.EnvProduction {
			return Result{}, errors.New("jwt identity provider is not allowed in production")
		}

		p, err := NewJWTProvider(params.Config.Auth)
		if err != nil {
			return Result{}, err
		}
		params.Logger.Warn("Using development JWT identity provider")

		return Result{Provider: p, Issuer: p}, nil

	case constants.AuthProviderFirebase, "":
		app, err := params.Firebase.App(params.Ctx)
		if err != nil {
			return Result{}, err
		}

		client, err := app.Auth(params.Ctx)
		if err != nil {
			return Result{}, errors.Wrap(err, "failed to get auth client")
		}

		return Result{Provider: newFirebaseProvider(client)}, nil

	default:
		return Result{}, errors.Errorf("unknown identity provider: %s", params.Config.Auth.Provider)
	}
}
