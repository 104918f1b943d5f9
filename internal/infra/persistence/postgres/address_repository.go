// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"shopauth/internal/domain/entity"
	"shopauth/internal/domain/repository"
	"shopauth/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// FindAddressesByUserID retrieves all addresses for a user, default first,
// then oldest first. Users without addresses get an empty slice, not nil.
func (repo *addressRepository) FindAddressesByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("is_default DESC, created_at ASC").
		Find(&addressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by user id")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
// The stored 0/1 is_default column is normalized to a genuine boolean here,
// so the core never sees the integer representation.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:         data.ID,
		UserID:     data.UserID,
		Label:      data.Label,
		Recipient:  data.Recipient,
		Street:     data.Street,
		City:       data.City,
		PostalCode: data.PostalCode,
		IsDefault:  data.IsDefault != 0,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	isDefault := int16(0)
	if data.IsDefault {
		isDefault = 1
	}

	return &model.AddressModel{
		ID:         data.ID,
		UserID:     data.UserID,
		Label:      data.Label,
		Recipient:  data.Recipient,
		Street:     data.Street,
		City:       data.City,
		PostalCode: data.PostalCode,
		IsDefault:  isDefault,
	}
}
