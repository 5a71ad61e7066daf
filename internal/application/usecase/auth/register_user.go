// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/bakehouse/backend/internal/application/adapter"
	"github.com/bakehouse/backend/internal/domain/entity"
	domainerror "github.com/bakehouse/backend/internal/domain/error"
)

// RegisterUserInput represents the input for staff registration.
type RegisterUserInput struct {
	Username string
	Email    string
	Phone    string
	Password string
	Role     entity.UserRole
}

// RegisterUserOutput represents the output of staff registration.
type RegisterUserOutput struct {
	User *entity.User
}

// RegisterUserUseCase handles staff account registration.
type RegisterUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(userRepo adapter.UserRepository, passwordService adapter.PasswordService) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
	}
}

// Execute registers a new staff account with a hashed password.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	taken, err := uc.userRepo.ExistsByUsername(ctx, input.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUsernameExists,
			"username already exists",
			domainerror.ErrUsernameExists,
		)
	}

	taken, err = uc.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeEmailExists,
			"email already exists",
			domainerror.ErrEmailExists,
		)
	}

	hash, err := uc.passwordService.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(input.Username, input.Email, input.Phone, hash, input.Role)
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &RegisterUserOutput{User: user}, nil
}
