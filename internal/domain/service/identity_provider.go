package service

import (
	"context"
	"errors"

	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
)

// ErrInvalidToken is returned when a bearer token cannot be verified.
var ErrInvalidToken = errors.New("invalid identity token")

// IdentityProvider is the external authentication system.
type IdentityProvider interface {
	// VerifyToken checks a bearer token and returns the identity it belongs to.
	VerifyToken(ctx context.Context, rawToken string) (*entity.AuthUser, error)

	// SignOut revokes every session of the user.
	SignOut(ctx context.Context, uid string) error

	// AssignRole sets the role claim on the identity record.
	AssignRole(ctx context.Context, uid string, role entity.Role) error
}

// TokenIssuer mints identity tokens. Only the development identity provider implements it.
type TokenIssuer interface {
	IssueToken(uid, email string, role entity.Role) (string, error)
}
