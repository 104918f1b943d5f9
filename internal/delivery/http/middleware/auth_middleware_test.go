package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	domainerrors "shopauth/internal/domain/errors"
	"shopauth/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTokenService accepts exactly one token and rejects everything else.
type stubTokenService struct {
	validToken string
	claims     *service.Claims
}

func (s *stubTokenService) GenerateToken(userID uuid.UUID, email, displayName string) (string, error) {
	return s.validToken, nil
}

func (s *stubTokenService) ValidateToken(tokenString string) (*service.Claims, error) {
	if tokenString != s.validToken {
		return nil, domainerrors.ErrInvalidToken
	}

	return s.claims, nil
}

func (s *stubTokenService) GetTokenDuration() time.Duration {
	return 7 * 24 * time.Hour
}

func newAuthTestContext(t *testing.T, authorization string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate_ValidToken(t *testing.T) {
	userID := uuid.New()
	mw := NewAuthMiddleware(&stubTokenService{
		validToken: "good-token",
		claims:     &service.Claims{UserID: userID, Email: "a@test.com"},
	})

	c, _ := newAuthTestContext(t, "Bearer good-token")

	var nextCalled bool
	handler := mw.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, handler(c))
	assert.True(t, nextCalled)
	assert.Equal(t, userID, c.Get("userID"))

	claims, ok := c.Get("claims").(*service.Claims)
	require.True(t, ok)
	assert.Equal(t, "a@test.com", claims.Email)
}

func TestAuthMiddleware_Authenticate_Rejections(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
	}{
		{"missing header", ""},
		{"not a bearer token", "Basic dXNlcjpwdw=="},
		{"unknown token", "Bearer forged-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mw := NewAuthMiddleware(&stubTokenService{validToken: "good-token"})
			c, rec := newAuthTestContext(t, tt.authorization)

			var nextCalled bool
			handler := mw.Authenticate(func(c echo.Context) error {
				nextCalled = true

				return c.NoContent(http.StatusOK)
			})

			// Every rejection is the same 401; the response never explains
			// which check failed beyond the broad category.
			require.NoError(t, handler(c))
			assert.False(t, nextCalled)
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Nil(t, c.Get("userID"))
		})
	}
}
