package impl

import (
	"context"

	"quitanda/internal/domain/entity"
	domainerrors "quitanda/internal/domain/errors"
	"quitanda/internal/domain/repository"
	"quitanda/internal/errors"
	"quitanda/internal/usecase"

	"github.com/google/uuid"
)

type addressService struct {
	txManager   repository.TransactionManager
	addressRepo repository.AddressRepository
}

// NewAddressService creates a new address service instance
func NewAddressService(
	txManager repository.TransactionManager,
	addressRepo repository.AddressRepository,
) usecase.AddressUsecase {
	return &addressService{
		txManager:   txManager,
		addressRepo: addressRepo,
	}
}

// SaveAddress creates or updates an address. When the address is marked
// default, the owner scope's current defaults are demoted under row
// locks inside the same transaction, so at no point can two defaults be
// observed in one scope.
func (s *addressService) SaveAddress(ctx context.Context, owner entity.AddressOwner, input *usecase.SaveAddressInput) (*entity.Address, error) {
	if owner.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("address must belong to exactly one account or store")
	}

	address := &entity.Address{
		Owner:        owner,
		Label:        input.Label,
		ZipCode:      input.ZipCode,
		Street:       input.Street,
		Number:       input.Number,
		Neighborhood: input.Neighborhood,
		Complement:   input.Complement,
		Reference:    input.Reference,
		City:         input.City,
		State:        input.State,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		IsDefault:    input.IsDefault,
	}
	if input.ID != nil {
		address.ID = *input.ID
	}
	if err := address.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		repo := repos.AddressRepo()

		if address.IsDefault {
			if err := repo.DemoteOtherDefaults(ctx, owner, address.ID); err != nil {
				return err
			}
		}

		if input.ID == nil {
			return repo.CreateAddress(ctx, address)
		}

		existing, err := repo.FindAddressByID(ctx, *input.ID)
		if err != nil {
			if errors.Is(err, repository.ErrAddressNotFound) {
				return domainerrors.ErrAddressNotFound
			}

			return err
		}
		if existing.Owner != owner {
			return domainerrors.ErrAddressNotFound
		}

		return repo.UpdateAddress(ctx, address)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDefaultAddressConflict) {
			return nil, domainerrors.ErrDefaultAddressConflict
		}

		return nil, err
	}

	return address, nil
}

// ListAddresses retrieves an owner's addresses, default first.
func (s *addressService) ListAddresses(ctx context.Context, owner entity.AddressOwner) ([]*entity.Address, error) {
	if owner.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("owner is required")
	}

	return s.addressRepo.FindAddressesByOwner(ctx, owner)
}

// GetAddress retrieves one address by ID.
func (s *addressService) GetAddress(ctx context.Context, addressID uuid.UUID) (*entity.Address, error) {
	address, err := s.addressRepo.FindAddressByID(ctx, addressID)
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return nil, domainerrors.ErrAddressNotFound
		}

		return nil, err
	}

	return address, nil
}

// DeleteAddress removes an address by ID.
func (s *addressService) DeleteAddress(ctx context.Context, addressID uuid.UUID) error {
	if err := s.addressRepo.DeleteAddress(ctx, addressID); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return domainerrors.ErrAddressNotFound
		}

		return err
	}

	return nil
}
