package entity

import (
	"fmt"
	"time"

	"quitanda/internal/errors"

	"github.com/google/uuid"
)

// Address is a deliverable physical location. Every address belongs to
// exactly one owner (account or store), carried as a tagged union so the
// both-set and both-null states cannot be represented.
type Address struct {
	ID           uuid.UUID
	Owner        AddressOwner
	Label        string // user-defined, e.g. "Home", "Office"
	ZipCode      string // CEP, exactly 8 digits
	Street       string
	Number       string
	Neighborhood string
	Complement   string
	Reference    string
	City         string
	State        string // UF, exactly 2 uppercase letters
	Latitude     *float64
	Longitude    *float64
	IsDefault    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate checks owner presence and the fixed-format fields.
func (a *Address) Validate() error {
	if a.Owner.IsZero() {
		return errors.New("address must belong to an account or a store")
	}
	if !isDigits(a.ZipCode, 8) {
		return errors.New("zip code must be exactly 8 digits")
	}
	if a.Street == "" || a.Number == "" {
		return errors.New("street and number are required")
	}
	if !isUF(a.State) {
		return errors.New("state must be exactly 2 uppercase letters")
	}

	return nil
}

// FormatZipCode renders the CEP as #####-###.
func (a *Address) FormatZipCode() string {
	if !isDigits(a.ZipCode, 8) {
		return a.ZipCode
	}

	return fmt.Sprintf("%s-%s", a.ZipCode[0:5], a.ZipCode[5:8])
}

// isUF reports whether s is a two-letter uppercase state code.
func isUF(s string) bool {
	if len(s) != 2 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}

	return true
}
