// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserRole represents a staff member's role.
type UserRole string

const (
	UserRoleAdmin UserRole = "admin"
	UserRoleStaff UserRole = "staff"
)

// UserStatus represents whether an account may log in.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusDisabled UserStatus = "disabled"
)

// User represents a back-office staff account.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	Phone        string
	PasswordHash string
	Role         UserRole
	Status       UserStatus
	CreatedAt    time.Time
}

// NewUser creates a new User entity with the staff role by default.
func NewUser(username, email, phone, passwordHash string, role UserRole) *User {
	if role == "" {
		role = UserRoleStaff
	}

	return &User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		Phone:        phone,
		PasswordHash: passwordHash,
		Role:         role,
		Status:       UserStatusActive,
		CreatedAt:    time.Now().UTC(),
	}
}

// CanLogin reports whether the account is allowed to authenticate.
func (u *User) CanLogin() bool {
	return u.Status == UserStatusActive
}
