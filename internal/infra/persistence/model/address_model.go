package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
// The schema stores is_default as a smallint 0/1; the mapper in the postgres
// package normalizes it to a bool so the domain only ever sees genuine
// booleans.
type AddressModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;index:idx_addresses_on_user"`
	Label      string    `gorm:"type:varchar(100)"`
	Recipient  string    `gorm:"type:varchar(100)"`
	Street     string    `gorm:"type:text;not null"`
	City       string    `gorm:"type:varchar(100)"`
	PostalCode string    `gorm:"type:varchar(20)"`
	IsDefault  int16     `gorm:"column:is_default;not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
