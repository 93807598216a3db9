package repository

import (
	"context"

	"quitanda/internal/domain/entity"
	"quitanda/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for address persistence.
var (
	// ErrAddressNotFound is returned when an address is not found.
	ErrAddressNotFound = errors.New("address not found")
	// ErrDefaultAddressConflict is returned when two default addresses for
	// the same owner survive the row locks and hit the partial unique index.
	ErrDefaultAddressConflict = errors.New("owner already has a default address")
)

// AddressRepository defines the interface for address-related database
// operations. Addresses attach to one owner (account or store) through a
// polymorphic association.
type AddressRepository interface {
	// CreateAddress persists a new address for an owner.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address by its unique ID.
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindAddressesByOwner retrieves all addresses in one owner scope,
	// default first, then oldest first.
	FindAddressesByOwner(ctx context.Context, owner entity.AddressOwner) ([]*entity.Address, error)

	// FindDefaultAddressByOwner retrieves the default address for an owner.
	// Returns ErrAddressNotFound if no default address exists.
	FindDefaultAddressByOwner(ctx context.Context, owner entity.AddressOwner) (*entity.Address, error)

	// DemoteOtherDefaults locks the owner's address rows and clears
	// is_default on every address in the scope except the excluded one.
	// Must run inside a transaction together with the subsequent save.
	DemoteOtherDefaults(ctx context.Context, owner entity.AddressOwner, exclude uuid.UUID) error

	// UpdateAddress updates an existing address record.
	UpdateAddress(ctx context.Context, address *entity.Address) error

	// DeleteAddress removes an address by its ID.
	DeleteAddress(ctx context.Context, id uuid.UUID) error
}
