package auth

import (
	"strings"
	"testing"
	"time"

	"shopauth/config"
	domainerrors "shopauth/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Token = secret

	return cfg
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig(""))
	assert.Error(t, err)
	assert.Nil(t, svc)

	svc, err = NewJWTService(newTestTokenConfig("test-secret"))
	require.NoError(t, err)
	require.NotNil(t, svc)
	assert.Equal(t, 7*24*time.Hour, svc.GetTokenDuration())
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc, err := NewJWTService(newTestTokenConfig("test-secret"))
	require.NoError(t, err)

	userID := uuid.New()
	token, err := svc.GenerateToken(userID, "a@test.com", "Tester")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "a@test.com", claims.Email)
	assert.Equal(t, "Tester", claims.DisplayName)

	// The expiry sits a full validity window past issuance.
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)
	assert.Equal(t, svc.GetTokenDuration(), claims.ExpiresAt.Sub(claims.IssuedAt.Time))
	assert.WithinDuration(t, time.Now().Add(svc.GetTokenDuration()), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTService_ValidateToken_Expired(t *testing.T) {
	// A negative TTL issues tokens that are already expired.
	svc := &jwtService{secret: "test-secret", ttl: -time.Hour}

	token, err := svc.GenerateToken(uuid.New(), "a@test.com", "")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_ValidateToken_WrongSecret(t *testing.T) {
	issuer := &jwtService{secret: "issuer-secret", ttl: tokenTTL}
	verifier := &jwtService{secret: "other-secret", ttl: tokenTTL}

	token, err := issuer.GenerateToken(uuid.New(), "a@test.com", "")
	require.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_ValidateToken_Tampered(t *testing.T) {
	svc := &jwtService{secret: "test-secret", ttl: tokenTTL}

	token, err := svc.GenerateToken(uuid.New(), "a@test.com", "")
	require.NoError(t, err)

	// Flip the payload segment; the signature no longer matches.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + ".eyJ1aWQiOiJmb3JnZWQifQ." + parts[2]

	claims, err := svc.ValidateToken(tampered)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestJWTService_ValidateToken_Malformed(t *testing.T) {
	svc := &jwtService{secret: "test-secret", ttl: tokenTTL}

	for _, token := range []string{"", "garbage", "a.b", "a.b.c.d", "....."} {
		claims, err := svc.ValidateToken(token)
		assert.Nil(t, claims, "token %q", token)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken, "token %q", token)
	}
}
