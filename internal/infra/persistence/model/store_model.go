package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// StoreModel mirrors the 'stores' table. Monetary columns are
// decimal(10,2); Config is free-form storefront configuration kept as JSONB.
type StoreModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OwnerID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name          string          `gorm:"type:varchar(100);not null"`
	CNPJ          string          `gorm:"column:cnpj;type:char(14);not null;unique;check:cnpj ~ '^[0-9]{14}$'"`
	MinOrderValue decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	DeliveryFee   decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Config        datatypes.JSON  `gorm:"type:jsonb"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Owner        *AccountModel        `gorm:"foreignKey:OwnerID"`
	OpeningHours []*OpeningHoursModel `gorm:"foreignKey:StoreID"`
	Sections     []*SectionModel      `gorm:"foreignKey:StoreID"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}

// OpeningHoursModel mirrors the 'opening_hours' table. Weekday is ISO:
// 1 (Monday) through 7 (Sunday); hours are "HH:MM" strings.
type OpeningHoursModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	StoreID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Weekday  int       `gorm:"not null;check:weekday BETWEEN 1 AND 7"`
	FromHour string    `gorm:"type:char(5);not null"`
	ToHour   string    `gorm:"type:char(5);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OpeningHoursModel) TableName() string {
	return "opening_hours"
}
