package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via
// gen_random_uuid(), so the uid is random and collision-resistant by
// construction. The unique index on email backs the one-user-per-email
// invariant; the repository translates violations into the domain error.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	DisplayName  string    `gorm:"type:varchar(100)"`
	PhoneNumber  string    `gorm:"type:varchar(32)"`
	PhotoURL     string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Addresses []*AddressModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
