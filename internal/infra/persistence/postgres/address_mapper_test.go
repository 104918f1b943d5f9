package postgres

import (
	"testing"

	"shopauth/internal/domain/entity"
	"shopauth/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToAddressDomain_NormalizesIsDefault(t *testing.T) {
	tests := []struct {
		name   string
		stored int16
		want   bool
	}{
		{"zero maps to false", 0, false},
		{"one maps to true", 1, true},
		{"any non-zero maps to true", 7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := toAddressDomain(&model.AddressModel{
				ID:        uuid.New(),
				UserID:    uuid.New(),
				IsDefault: tt.stored,
			})
			require.NotNil(t, addr)
			assert.Equal(t, tt.want, addr.IsDefault)
		})
	}
}

func TestFromAddressDomain_StoresIsDefaultAsSmallint(t *testing.T) {
	addrM := fromAddressDomain(&entity.Address{IsDefault: true})
	require.NotNil(t, addrM)
	assert.Equal(t, int16(1), addrM.IsDefault)

	addrM = fromAddressDomain(&entity.Address{IsDefault: false})
	require.NotNil(t, addrM)
	assert.Equal(t, int16(0), addrM.IsDefault)
}

func TestAddressMappers_NilSafe(t *testing.T) {
	assert.Nil(t, toAddressDomain(nil))
	assert.Nil(t, fromAddressDomain(nil))
	assert.Nil(t, toUserDomain(nil))
	assert.Nil(t, fromUserDomain(nil))
}
