package middleware

import (
	"log/slog"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/forcollegesake07/food-bridge/internal/delivery/api/response"
	deliverycontext "github.com/forcollegesake07/food-bridge/internal/delivery/context"
	"github.com/forcollegesake07/food-bridge/internal/domain/constants"
	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	domainerrors "github.com/forcollegesake07/food-bridge/internal/domain/errors"
	"github.com/forcollegesake07/food-bridge/internal/domain/service"
	"github.com/forcollegesake07/food-bridge/internal/domain/session"
	"github.com/forcollegesake07/food-bridge/internal/errors"
	"github.com/forcollegesake07/food-bridge/internal/usecase"
)

// tokenQueryParam carries the identity token on websocket upgrades, where browsers cannot set headers.
const tokenQueryParam = "token"

// AuthMiddleware verifies identity tokens and runs the profile gate.
type AuthMiddleware struct {
	identity service.IdentityProvider
	gate     usecase.ProfileGateUsecase
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identity service.IdentityProvider, gate usecase.ProfileGateUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{identity: identity, gate: gate, logger: logger}
}

// Authenticate verifies the bearer token and stores the identity on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		rawToken, ok := bearerToken(c)
		if !ok {
			return response.AppError(c, domainerrors.ErrNotAuthenticated.WithRedirect(constants.RouteLogin))
		}

		user, err := m.identity.VerifyToken(c.Request().Context(), rawToken)
		if err != nil {
			if !errors.Is(err, service.ErrInvalidToken) {
				deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
					Warn("Token verification failed", slog.Any("error", err))
			}

			return response.AppError(c, domainerrors.ErrNotAuthenticated.WithRedirect(constants.RouteLogin))
		}

		deliverycontext.SetAuthUser(c, user)

		return next(c)
	}
}

// RequireProfile runs the profile gate for role (RoleNone accepts any role) and
// stores the resulting snapshot. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireProfile(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, _ := deliverycontext.GetAuthUser(c)

			sess, writer := session.New()
			result, err := m.gate.Resolve(c.Request().Context(), user, role, writer)
			if err != nil {
				return response.HandleAppError(c, err)
			}
			if gateErr := result.Err(); gateErr != nil {
				return response.HandleAppError(c, gateErr)
			}

			deliverycontext.SetSnapshot(c, sess.Snapshot())

			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, found := strings.CutPrefix(header, "Bearer "); found && token != "" {
		return token, true
	}
	if c.IsWebSocket() {
		if token := c.QueryParam(tokenQueryParam); token != "" {
			return token, true
		}
	}

	return "", false
}
