package model

import (
	"time"

	"github.com/google/uuid"
)

// SectionModel mirrors the 'sections' table.
type SectionModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	StoreID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Title           string    `gorm:"type:varchar(100);not null"`
	Type            string    `gorm:"type:varchar(20);not null;default:'list';check:type IN ('grid','list','slider')"`
	Position        int       `gorm:"not null;default:0"`
	MinProducts     int       `gorm:"not null;default:0"`
	MaxProducts     int       `gorm:"not null;default:0"`
	IsActive        bool      `gorm:"not null;default:true"`
	IsRequired      bool      `gorm:"not null;default:false"`
	IsHighlighted   bool      `gorm:"not null;default:false"`
	Form            string    `gorm:"type:varchar(30);not null;default:'not_applicable';check:form IN ('not_applicable','radio','increment_decrement','textbox')"`
	TextboxHelpText string    `gorm:"type:varchar(255)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Products     []*ProductModel        `gorm:"foreignKey:SectionID"`
	ProductLinks []*ProductSectionModel `gorm:"foreignKey:SectionID"`
}

// TableName explicitly sets the table name for GORM.
func (SectionModel) TableName() string {
	return "sections"
}
