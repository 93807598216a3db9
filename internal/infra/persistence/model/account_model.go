package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v4().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	Email     string    `gorm:"type:varchar(255);unique;not null"`
	Name      string    `gorm:"type:varchar(100);not null"`
	IsStaff   bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Account *AccountModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// AccountModel mirrors the 'accounts' table. Each user has at most one
// account; CPF and phone are fixed-length digit strings, unique per account.
type AccountModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;unique"`
	Type      string    `gorm:"type:varchar(20);not null;default:'client';check:type IN ('client','admin')"`
	CPF       string    `gorm:"column:cpf;type:char(11);not null;unique;check:cpf ~ '^[0-9]{11}$'"`
	Phone     string    `gorm:"type:char(13);not null;unique;check:phone ~ '^[0-9]{13}$'"`
	CreatedAt time.Time
	UpdatedAt time.Time

	User *UserModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
