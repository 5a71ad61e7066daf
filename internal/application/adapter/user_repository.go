// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/bakehouse/backend/internal/domain/entity"
)

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create persists a new user.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByUsername retrieves a user by username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindAll retrieves all users.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// ExistsByUsername checks whether a username is taken.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail checks whether an email is taken.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Update replaces a user's mutable fields.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user.
	Delete(ctx context.Context, id uuid.UUID) error
}
