package auth

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"shopauth/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("pw123456")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "pw123456", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	assert.True(t, hasher.Check("pw123456", hash))
	assert.False(t, hasher.Check("pw1234567", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	first, err := hasher.Hash("pw123456")
	require.NoError(t, err)
	second, err := hasher.Hash("pw123456")
	require.NoError(t, err)

	// Each call draws a fresh random salt, so the digests differ even for
	// identical inputs. Both still verify.
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("pw123456", first))
	assert.True(t, hasher.Check("pw123456", second))
}

func TestBcryptHasher_CheckRejectsGarbageHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	assert.False(t, hasher.Check("pw123456", "not-a-bcrypt-hash"))
	assert.False(t, hasher.Check("pw123456", ""))
}

func TestNewBcryptHasher_CostFromConfig(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *config.Config
		wantCost int
	}{
		{
			name:     "nil auth config falls back to default",
			cfg:      &config.Config{},
			wantCost: bcrypt.DefaultCost,
		},
		{
			name:     "cost within range is used",
			cfg:      &config.Config{Auth: &config.AuthConfig{BcryptCost: 6}},
			wantCost: 6,
		},
		{
			name:     "cost above max falls back to default",
			cfg:      &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}},
			wantCost: bcrypt.DefaultCost,
		},
		{
			name:     "zero cost falls back to default",
			cfg:      &config.Config{Auth: &config.AuthConfig{BcryptCost: 0}},
			wantCost: bcrypt.DefaultCost,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher := NewBcryptHasher(tt.cfg)

			concrete, ok := hasher.(*bcryptHasher)
			require.True(t, ok)
			assert.Equal(t, tt.wantCost, concrete.cost)
		})
	}
}
