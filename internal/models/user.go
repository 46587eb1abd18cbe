package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a platform account
type User struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Email           string    `json:"email" db:"email"`
	PasswordHash    string    `json:"-" db:"password_hash"`
	Role            string    `json:"role" db:"role"`
	IsActive        bool      `json:"is_active" db:"is_active"`
	ActivationToken string    `json:"-" db:"activation_token"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// UserRole represents available user roles
type UserRole string

const (
	RoleFounder   UserRole = "founder"
	RoleInvestor  UserRole = "investor"
	RoleIncubator UserRole = "incubator"
	RoleAdmin     UserRole = "admin"
)

// IsFounder returns true if the user owns startup profiles
func (u *User) IsFounder() bool {
	return u.Role == string(RoleFounder)
}

// IsInvestor returns true if the user owns an investor profile
func (u *User) IsInvestor() bool {
	return u.Role == string(RoleInvestor)
}

// IsIncubator returns true if the user owns an incubator profile
func (u *User) IsIncubator() bool {
	return u.Role == string(RoleIncubator)
}

// IsAdmin returns true if user has admin role
func (u *User) IsAdmin() bool {
	return u.Role == string(RoleAdmin)
}

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// RegisterRequest represents an account creation request
type RegisterRequest struct {
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Role     UserRole `json:"role" binding:"required"`
}

// ActivateRequest activates an imported account with a fresh password
type ActivateRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginResponse represents a login response
type LoginResponse struct {
	Token        string    `json:"token"`
	RefreshToken string    `json:"refresh_token"`
	User         User      `json:"user"`
	ExpiresAt    time.Time `json:"expires_at"`
}
