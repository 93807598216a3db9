package entity

import (
	"fmt"
	"time"

	"quitanda/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store is a seller on the marketplace, owned by exactly one admin
// account. MinOrderValue and DeliveryFee feed directly into order
// assembly: the fee is snapshotted onto each order, the minimum is
// enforced against the order subtotal.
type Store struct {
	ID            uuid.UUID
	Owner         *Account
	OwnerID       uuid.UUID
	Name          string
	CNPJ          string // 14 digits, unique
	MinOrderValue decimal.Decimal
	DeliveryFee   decimal.Decimal
	Config        map[string]any
	OpeningHours  []*OpeningHours
	Addresses     []*Address
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Validate checks the CNPJ format and the monetary fields.
func (s *Store) Validate() error {
	if s.Name == "" {
		return errors.New("store name is required")
	}
	if !isDigits(s.CNPJ, 14) {
		return errors.New("cnpj must be exactly 14 digits")
	}
	if s.MinOrderValue.IsNegative() || s.DeliveryFee.IsNegative() {
		return errors.New("minimum order value and delivery fee must not be negative")
	}

	return nil
}

// FormatCNPJ renders the CNPJ as ##.###.###/####-##.
func (s *Store) FormatCNPJ() string {
	if !isDigits(s.CNPJ, 14) {
		return s.CNPJ
	}

	return fmt.Sprintf("%s.%s.%s/%s-%s", s.CNPJ[0:2], s.CNPJ[2:5], s.CNPJ[5:8], s.CNPJ[8:12], s.CNPJ[12:14])
}

// OpeningHours is one weekday window in which the store accepts orders.
// Weekday follows ISO numbering: 1 (Monday) through 7 (Sunday).
type OpeningHours struct {
	ID       uuid.UUID
	StoreID  uuid.UUID
	Weekday  int
	FromHour string // "HH:MM"
	ToHour   string // "HH:MM"
}

// Validate checks the weekday range and the hour window format.
func (h *OpeningHours) Validate() error {
	if h.Weekday < 1 || h.Weekday > 7 {
		return errors.New("weekday must be between 1 and 7")
	}
	if !isClockTime(h.FromHour) || !isClockTime(h.ToHour) {
		return errors.New("hours must be in HH:MM format")
	}

	return nil
}

func isClockTime(s string) bool {
	if len(s) != 5 || s[2] != ':' {
		return false
	}
	hh := (int(s[0]-'0') * 10) + int(s[1]-'0')
	mm := (int(s[3]-'0') * 10) + int(s[4]-'0')
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return hh >= 0 && hh <= 23 && mm >= 0 && mm <= 59
}

// IsOpenAt reports whether any opening-hours window covers the given
// ISO weekday and "HH:MM" clock time.
func (s *Store) IsOpenAt(weekday int, clock string) bool {
	for _, h := range s.OpeningHours {
		if h.Weekday == weekday && h.FromHour <= clock && clock < h.ToHour {
			return true
		}
	}

	return false
}
