// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"shopauth/config"
	domainerrors "shopauth/internal/domain/errors"
	"shopauth/internal/domain/service"
)

// tokenTTL is the fixed validity window for issued tokens.
const tokenTTL = 7 * 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Secret key for signing identity tokens.
	ttl    time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
// The signing secret is injected from configuration; an empty secret is a
// fatal condition and aborts startup instead of falling back to a default.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Token == "" {
		return nil, errors.New("token signing secret must be provided")
	}

	return &jwtService{
		secret: cfg.SecretKey.Token,
		ttl:    tokenTTL,
	}, nil
}

// GenerateToken creates a new signed identity token for the given user.
// Claims are fixed at issuance; later profile changes do not affect
// tokens already in circulation.
func (s *jwtService) GenerateToken(userID uuid.UUID, email, displayName string) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		UserID:      userID,
		Email:       email,
		DisplayName: displayName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks the validity of a token string and returns its claims.
// Malformed structure, signature mismatch and expiry all collapse into the
// single ErrInvalidToken so callers learn nothing about why a token was
// rejected.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil || !token.Valid {
		return nil, domainerrors.ErrInvalidToken
	}

	return claims, nil
}

// GetTokenDuration returns the fixed validity window for issued tokens.
func (s *jwtService) GetTokenDuration() time.Duration {
	return s.ttl
}
