package usecase

import (
	"context"

	"quitanda/internal/domain/entity"

	"github.com/google/uuid"
)

// SaveAddressInput carries a new or updated address. Exactly one of
// AccountID and StoreID must be set; the handler maps them onto the
// owner tag before the service runs.
type SaveAddressInput struct {
	ID           *uuid.UUID `json:"uuid"`
	AccountID    *uuid.UUID `json:"account_uuid"`
	StoreID      *uuid.UUID `json:"store_uuid"`
	Label        string     `json:"label"`
	ZipCode      string     `json:"zip_code" validate:"required,len=8,numeric"`
	Street       string     `json:"street" validate:"required"`
	Number       string     `json:"number" validate:"required"`
	Neighborhood string     `json:"neighborhood"`
	Complement   string     `json:"complement"`
	Reference    string     `json:"reference"`
	City         string     `json:"city"`
	State        string     `json:"state" validate:"omitempty,len=2"`
	Latitude     *float64   `json:"latitude"`
	Longitude    *float64   `json:"longitude"`
	IsDefault    bool       `json:"is_default"`
}

// AddressUsecase defines the interface for address management use cases
type AddressUsecase interface {
	// SaveAddress creates or updates an address. When the address is
	// default, every other default in the same owner scope is demoted in
	// the same transaction, so the scope never holds two defaults.
	SaveAddress(ctx context.Context, owner entity.AddressOwner, input *SaveAddressInput) (*entity.Address, error)

	// ListAddresses retrieves an owner's addresses, default first.
	ListAddresses(ctx context.Context, owner entity.AddressOwner) ([]*entity.Address, error)

	// GetAddress retrieves one address by ID.
	GetAddress(ctx context.Context, addressID uuid.UUID) (*entity.Address, error)

	// DeleteAddress removes an address by ID.
	DeleteAddress(ctx context.Context, addressID uuid.UUID) error
}
