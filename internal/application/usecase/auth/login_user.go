// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/bakehouse/backend/internal/application/adapter"
	"github.com/bakehouse/backend/internal/domain/entity"
	domainerror "github.com/bakehouse/backend/internal/domain/error"
)

// LoginUserInput represents the input for staff login.
type LoginUserInput struct {
	Username string
	Password string
}

// LoginUserOutput represents the output of a successful login.
type LoginUserOutput struct {
	User        *entity.User
	AccessToken string
}

// LoginUserUseCase handles staff login.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute verifies credentials and issues an access token. Unknown users and
// wrong passwords yield the same error so usernames cannot be probed.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	user, err := uc.userRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		var authErr *domainerror.AuthError
		if errors.As(err, &authErr) {
			return nil, invalidCredentials()
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if !uc.passwordService.Verify(input.Password, user.PasswordHash) {
		return nil, invalidCredentials()
	}

	if !user.CanLogin() {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeAccountDisabled,
			"account is disabled",
			domainerror.ErrAccountDisabled,
		)
	}

	token, err := uc.tokenService.GenerateAccessToken(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &LoginUserOutput{
		User:        user,
		AccessToken: token,
	}, nil
}

func invalidCredentials() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid username or password",
		domainerror.ErrInvalidCredentials,
	)
}
