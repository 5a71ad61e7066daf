// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/bakehouse/backend/internal/application/adapter"
	"github.com/bakehouse/backend/internal/domain/entity"
	domainerror "github.com/bakehouse/backend/internal/domain/error"
)

// ListUsersUseCase lists staff accounts.
type ListUsersUseCase struct {
	userRepo adapter.UserRepository
}

// NewListUsersUseCase creates a new ListUsersUseCase instance.
func NewListUsersUseCase(userRepo adapter.UserRepository) *ListUsersUseCase {
	return &ListUsersUseCase{userRepo: userRepo}
}

// Execute returns all staff accounts.
func (uc *ListUsersUseCase) Execute(ctx context.Context) ([]*entity.User, error) {
	users, err := uc.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// UpdateUserInput carries the mutable user fields; nil pointers leave the
// stored value untouched. Password, when set, is re-hashed.
type UpdateUserInput struct {
	ID       uuid.UUID
	Email    *string
	Phone    *string
	Role     *entity.UserRole
	Status   *entity.UserStatus
	Password *string
}

// UpdateUserUseCase handles staff account updates.
type UpdateUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewUpdateUserUseCase creates a new UpdateUserUseCase instance.
func NewUpdateUserUseCase(userRepo adapter.UserRepository, passwordService adapter.PasswordService) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute applies the provided fields to the stored user.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, input UpdateUserInput) (*entity.User, error) {
	user, err := uc.userRepo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Status != nil {
		user.Status = *input.Status
	}
	if input.Password != nil {
		hash, err := uc.passwordService.Hash(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// DeleteUserUseCase handles staff account deletion.
type DeleteUserUseCase struct {
	userRepo adapter.UserRepository
}

// NewDeleteUserUseCase creates a new DeleteUserUseCase instance.
func NewDeleteUserUseCase(userRepo adapter.UserRepository) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: userRepo}
}

// Execute removes the staff account.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if err := uc.userRepo.Delete(ctx, id); err != nil {
		var authErr *domainerror.AuthError
		if errors.As(err, &authErr) {
			return err
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
