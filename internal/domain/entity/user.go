// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record of the system. The ID is assigned at
// registration and never changes; Email is unique across all users.
type User struct {
	ID           uuid.UUID // The immutable unique identifier assigned at creation.
	Email        string    // The user's login identifier; exactly one User per email.
	PasswordHash string    // The bcrypt digest of the user's password. Never exposed outside the core.
	DisplayName  string    // Optional display name shown to other users.
	PhoneNumber  string    // Optional contact phone number.
	PhotoURL     string    // Optional avatar URL.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
