// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"shopauth/internal/domain/entity"
	"shopauth/internal/domain/service"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required"`
	DisplayName string `json:"display_name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// Profile is the sanitized view of a user returned to callers.
// It never carries the password hash; Addresses is always non-nil.
type Profile struct {
	ID          uuid.UUID         `json:"uid"`
	Email       string            `json:"email"`
	DisplayName string            `json:"display_name,omitempty"`
	PhoneNumber string            `json:"phone_number,omitempty"`
	PhotoURL    string            `json:"photo_url,omitempty"`
	Addresses   []*entity.Address `json:"addresses"`
}

// AuthOutput returns the sanitized profile and the issued token.
type AuthOutput struct {
	User  *Profile `json:"user"`
	Token string   `json:"token"`
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new account and issues a token for it. Registering
	// an email that already exists fails with the duplicate-user error and
	// leaves existing records untouched.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and issues a token. Unknown email and wrong
	// password fail with the same error.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// VerifyToken validates a token and returns its claims.
	VerifyToken(token string) (*service.Claims, error)

	// GetUserByID returns the sanitized profile for a uid, or (nil, nil)
	// when no such user exists. Absence is not an error.
	GetUserByID(ctx context.Context, userID uuid.UUID) (*Profile, error)
}
