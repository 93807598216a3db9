package entity

import (
	"fmt"
	"time"

	"quitanda/internal/errors"

	"github.com/google/uuid"
)

// AccountType distinguishes the two roles an account can hold.
type AccountType string

const (
	// AccountTypeClient is a regular customer account.
	AccountTypeClient AccountType = "client"
	// AccountTypeAdmin is a store-operating account. Admin accounts must
	// be backed by a staff user.
	AccountTypeAdmin AccountType = "admin"
)

// String returns the string representation of the AccountType.
func (t AccountType) String() string {
	return string(t)
}

// IsValid checks if the AccountType is a valid value.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeClient, AccountTypeAdmin:
		return true
	default:
		return false
	}
}

// User is the system identity behind an account. Staff users may operate
// the administrative surface; this flag is asserted whenever an admin
// account is saved.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	IsStaff   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Account wraps a User with marketplace-specific identity: its role,
// CPF and contact phone. Addresses are loaded on demand.
type Account struct {
	ID        uuid.UUID
	User      *User
	UserID    uuid.UUID
	Type      AccountType
	CPF       string // 11 digits, unique
	Phone     string // 13 digits, unique
	Addresses []*Address
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the fixed-length digit fields and the role.
func (a *Account) Validate() error {
	if !a.Type.IsValid() {
		return errors.Errorf("invalid account type: %s", a.Type)
	}
	if !isDigits(a.CPF, 11) {
		return errors.New("cpf must be exactly 11 digits")
	}
	if !isDigits(a.Phone, 13) {
		return errors.New("phone must be exactly 13 digits")
	}

	return nil
}

// FormatCPF renders the CPF as ###.###.###-##.
func (a *Account) FormatCPF() string {
	if !isDigits(a.CPF, 11) {
		return a.CPF
	}

	return fmt.Sprintf("%s.%s.%s-%s", a.CPF[0:3], a.CPF[3:6], a.CPF[6:9], a.CPF[9:11])
}

// isDigits reports whether s is exactly n ASCII digits.
func isDigits(s string, n int) bool {
	if len(s) != n {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
