package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel mirrors the 'products' table. SectionID is the primary
// section; extra placements live in product_sections.
type ProductModel struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	StoreID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	SectionID          uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name               string          `gorm:"type:varchar(100);not null"`
	Description        string          `gorm:"type:text"`
	Price              decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	DiscountPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0;check:discount_percentage BETWEEN 0 AND 100"`
	Position           int             `gorm:"not null;default:0"`
	IsActive           bool            `gorm:"not null;default:true"`
	CreatedAt          time.Time
	UpdatedAt          time.Time

	SectionLinks []*ProductSectionModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductSectionModel mirrors the 'product_sections' through table.
// A product appears at most once per extra section.
type ProductSectionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	SectionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uidx_product_sections"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uidx_product_sections"`
	Position  int       `gorm:"not null;default:0"`
}

// TableName explicitly sets the table name for GORM.
func (ProductSectionModel) TableName() string {
	return "product_sections"
}
