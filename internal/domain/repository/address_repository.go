// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"shopauth/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressRepository defines the interface for address-related database operations.
type AddressRepository interface {
	// FindAddressesByUserID retrieves all addresses for a user, default
	// address first, then by creation time. Returns an empty slice when the
	// user has no addresses.
	FindAddressesByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)
}
