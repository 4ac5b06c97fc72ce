package identity

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/auth"

	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	"github.com/forcollegesake07/food-bridge/internal/domain/service"
)

const roleClaim = "role"

// authClient is the part of *auth.Client the provider uses.
type authClient interface {
	VerifyIDTokenAndCheckRevoked(ctx context.Context, idToken string) (*auth.Token, error)
	RevokeRefreshTokens(ctx context.Context, uid string) error
	SetCustomUserClaims(ctx context.Context, uid string, customClaims map[string]interface{}) error
}

type firebaseProvider struct {
	client authClient
}

func newFirebaseProvider(client authClient) service.IdentityProvider {
	return &firebaseProvider{client: client}
}

// VerifyToken verifies a Firebase ID token, rejecting revoked sessions.
func (p *firebaseProvider) VerifyToken(ctx context.Context, rawToken string) (*entity.AuthUser, error) {
	token, err := p.client.VerifyIDTokenAndCheckRevoked(ctx, rawToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrInvalidToken, err)
	}

	user := &entity.AuthUser{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		user.Email = email
	}
	if verified, ok := token.Claims["email_verified"].(bool); ok {
		user.EmailVerified = verified
	}
	if role, ok := token.Claims[roleClaim].(string); ok {
		user.Role = entity.Role(role)
	}

	return user, nil
}

// SignOut revokes the user's refresh tokens.
func (p *firebaseProvider) SignOut(ctx context.Context, uid string) error {
	if err := p.client.RevokeRefreshTokens(ctx, uid); err != nil {
		return fmt.Errorf("failed to revoke refresh tokens: %w", err)
	}

	return nil
}

// AssignRole sets the role custom claim.
func (p *firebaseProvider) AssignRole(ctx context.Context, uid string, role entity.Role) error {
	if err := p.client.SetCustomUserClaims(ctx, uid, map[string]interface{}{roleClaim: role.String()}); err != nil {
		return fmt.Errorf("failed to set role claim: %w", err)
	}

	return nil
}
