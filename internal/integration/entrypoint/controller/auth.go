// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/bakehouse/backend/internal/application/usecase/auth"
	"github.com/bakehouse/backend/internal/domain/entity"
	domainerror "github.com/bakehouse/backend/internal/domain/error"
	"github.com/bakehouse/backend/internal/integration/entrypoint/dto"
)

// AuthController handles authentication and staff management endpoints.
type AuthController struct {
	registerUserUseCase *auth.RegisterUserUseCase
	loginUserUseCase    *auth.LoginUserUseCase
	listUsersUseCase    *auth.ListUsersUseCase
	updateUserUseCase   *auth.UpdateUserUseCase
	deleteUserUseCase   *auth.DeleteUserUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	registerUserUseCase *auth.RegisterUserUseCase,
	loginUserUseCase *auth.LoginUserUseCase,
	listUsersUseCase *auth.ListUsersUseCase,
	updateUserUseCase *auth.UpdateUserUseCase,
	deleteUserUseCase *auth.DeleteUserUseCase,
) *AuthController {
	return &AuthController{
		registerUserUseCase: registerUserUseCase,
		loginUserUseCase:    loginUserUseCase,
		listUsersUseCase:    listUsersUseCase,
		updateUserUseCase:   updateUserUseCase,
		deleteUserUseCase:   deleteUserUseCase,
	}
}

// Register handles POST /auth/register requests.
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.registerUserUseCase.Execute(ctx.Request.Context(), auth.RegisterUserInput{
		Username: req.Username,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		Role:     entity.UserRole(req.Role),
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToUserResponse(output.User))
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.loginUserUseCase.Execute(ctx.Request.Context(), auth.LoginUserInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Token: output.AccessToken,
		User:  dto.ToUserResponse(output.User),
	})
}

// ListUsers handles GET /users requests.
func (c *AuthController) ListUsers(ctx *gin.Context) {
	users, err := c.listUsersUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUsersResponse(users))
}

// UpdateUser handles PUT /users/:id requests.
func (c *AuthController) UpdateUser(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid id parameter",
		})
		return
	}

	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := auth.UpdateUserInput{
		ID:       id,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
	}
	if req.Role != nil {
		role := entity.UserRole(*req.Role)
		input.Role = &role
	}
	if req.Status != nil {
		status := entity.UserStatus(*req.Status)
		input.Status = &status
	}

	user, err := c.updateUserUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteUser handles DELETE /users/:id requests.
func (c *AuthController) DeleteUser(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid id parameter",
		})
		return
	}

	if err := c.deleteUserUseCase.Execute(ctx.Request.Context(), id); err != nil {
		c.handleAuthError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted"})
}

// handleAuthError maps auth errors to HTTP responses.
func (c *AuthController) handleAuthError(ctx *gin.Context, err error) {
	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(c.statusCodeForAuthError(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForAuthError maps auth error codes to HTTP status codes.
func (c *AuthController) statusCodeForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeUserNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUsernameExists, domainerror.ErrCodeEmailExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidCredentials, domainerror.ErrCodeAccountDisabled:
		return http.StatusUnauthorized
	case domainerror.ErrCodeMissingToken, domainerror.ErrCodeInvalidToken:
		return http.StatusUnauthorized
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
