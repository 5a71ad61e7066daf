// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bakehouse/backend/internal/domain/entity"
)

// TokenClaims holds the validated identity carried by an access token.
type TokenClaims struct {
	UserID    uuid.UUID
	Username  string
	Role      entity.UserRole
	ExpiresAt time.Time
}

// TokenService defines the interface for issuing and validating access tokens.
type TokenService interface {
	// GenerateAccessToken issues a signed token for the given user.
	GenerateAccessToken(ctx context.Context, user *entity.User) (string, error)

	// ValidateAccessToken verifies a token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
