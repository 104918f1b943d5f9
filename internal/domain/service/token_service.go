package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the identity payload embedded in a token at issuance time.
// Claims are immutable once issued: a later profile change does not alter
// claims inside outstanding tokens; callers re-authenticate to see updates.
type Claims struct {
	UserID      uuid.UUID `json:"uid"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying self-contained
// identity tokens. This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken signs a new token for the user with a fixed validity
	// window from the current time.
	GenerateToken(userID uuid.UUID, email, displayName string) (string, error)

	// ValidateToken verifies a token's signature and expiry and returns its
	// claims. All failure causes collapse into the domain's invalid-token
	// error.
	ValidateToken(tokenString string) (*Claims, error)

	// GetTokenDuration returns the fixed validity window for issued tokens.
	GetTokenDuration() time.Duration
}
