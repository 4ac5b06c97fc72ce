// Package identity adapts external identity systems to service.IdentityProvider.
package identity

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/forcollegesake07/food-bridge/config"
	"github.com/forcollegesake07/food-bridge/internal/domain/entity"
	"github.com/forcollegesake07/food-bridge/internal/domain/service"
)

const (
	defaultIssuer   = "foodbridge-dev"
	defaultTokenTTL = time.Hour
)

// devClaims are the claims carried by development tokens.
type devClaims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// jwtProvider is an HS256 identity provider for development and tests.
type jwtProvider struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time

	mu        sync.RWMutex
	revokedAt map[string]time.Time
	roles     map[string]entity.Role
}

// NewJWTProvider is the constructor for jwtProvider.
func NewJWTProvider(cfg *config.AuthConfig) (*jwtProvider, error) {
	if cfg == nil || cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	issuer := cfg.Issuer
	if issuer == "" {
		issuer = defaultIssuer
	}
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &jwtProvider{
		secret:    []byte(cfg.JWTSecret),
		issuer:    issuer,
		ttl:       ttl,
		now:       time.Now,
		revokedAt: make(map[string]time.Time),
		roles:     make(map[string]entity.Role),
	}, nil
}

var (
	_ service.IdentityProvider = (*jwtProvider)(nil)
	_ service.TokenIssuer      = (*jwtProvider)(nil)
)

// IssueToken signs a development token for the user.
func (p *jwtProvider) IssueToken(uid, email string, role entity.Role) (string, error) {
	if uid == "" {
		return "", errors.New("uid is required")
	}

	now := p.now()
	claims := devClaims{
		Email: email,
		Role:  role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			Issuer:    p.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken validates the signature, issuer, expiry and revocation of a token.
func (p *jwtProvider) VerifyToken(_ context.Context, rawToken string) (*entity.AuthUser, error) {
	claims := &devClaims{}
	_, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return p.secret, nil
	},
		jwt.WithIssuer(p.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(p.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", service.ErrInvalidToken, err)
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", service.ErrInvalidToken)
	}

	p.mu.RLock()
	revokedAt, revoked := p.revokedAt[claims.Subject]
	role, hasRole := p.roles[claims.Subject]
	p.mu.RUnlock()

	if revoked && claims.IssuedAt != nil && !claims.IssuedAt.After(revokedAt) {
		return nil, fmt.Errorf("%w: token revoked", service.ErrInvalidToken)
	}
	if !hasRole {
		role = entity.Role(claims.Role)
	}

	return &entity.AuthUser{
		UID:           claims.Subject,
		Email:         claims.Email,
		EmailVerified: claims.Email != "",
		Role:          role,
	}, nil
}

// SignOut rejects every token issued to the user up to now.
func (p *jwtProvider) SignOut(_ context.Context, uid string) error {
	p.mu.Lock()
	p.revokedAt[uid] = p.now()
	p.mu.Unlock()

	return nil
}

// AssignRole overrides the role claim of future verifications.
func (p *jwtProvider) AssignRole(_ context.Context, uid string, role entity.Role) error {
	p.mu.Lock()
	p.roles[uid] = role
	p.mu.Unlock()

	return nil
}
