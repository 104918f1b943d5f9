// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a shipping address belonging to exactly one User.
// IsDefault is always a genuine boolean here; the persistence layer may store
// it as a 0/1 integer and is responsible for normalizing it at its boundary.
type Address struct {
	ID         uuid.UUID // The unique identifier for the address.
	UserID     uuid.UUID // The ID of the user that owns this address.
	Label      string    // A user-defined label, e.g., "Home", "Office".
	Recipient  string    // The name of the person receiving deliveries here.
	Street     string    // The full, human-readable street address.
	City       string    // City name.
	PostalCode string    // Postal or ZIP code.
	IsDefault  bool      // Indicates if this is the user's default shipping address.
	CreatedAt  time.Time // Timestamp of when this address was created.
	UpdatedAt  time.Time // Timestamp of the last modification.
}
