package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
// Ownership is polymorphic over owner_type + owner_id; the partial unique
// index keeps at most one default row per owner scope even under
// concurrent writers the application-level demotion might miss.
type AddressModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID      uuid.UUID `gorm:"type:uuid;not null;index:idx_addresses_on_owner;uniqueIndex:uidx_addresses_default_per_owner,where:is_default"`
	OwnerType    string    `gorm:"type:varchar(20);not null;index:idx_addresses_on_owner;uniqueIndex:uidx_addresses_default_per_owner,where:is_default;check:owner_type IN ('account','store')"`
	Label        string    `gorm:"type:varchar(100);not null"`
	ZipCode      string    `gorm:"type:char(8);not null;check:zip_code ~ '^[0-9]{8}$'"`
	Street       string    `gorm:"type:varchar(255);not null"`
	Number       string    `gorm:"type:varchar(20);not null"`
	Neighborhood string    `gorm:"type:varchar(100)"`
	Complement   string    `gorm:"type:varchar(255)"`
	Reference    string    `gorm:"type:varchar(255)"`
	City         string    `gorm:"type:varchar(100)"`
	State        string    `gorm:"type:char(2);check:state ~ '^[A-Z]{2}$'"`
	Latitude     *float64  `gorm:"type:decimal(8,6)"`
	Longitude    *float64  `gorm:"type:decimal(9,6)"`
	IsDefault    bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
