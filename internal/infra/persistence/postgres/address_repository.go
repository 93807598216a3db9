package postgres

import (
	"context"

	"quitanda/internal/domain/entity"
	domainerrors "quitanda/internal/domain/errors"
	"quitanda/internal/domain/repository"
	"quitanda/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// addressRepository implements the repository.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{
		db: db,
	}
}

// CreateAddress persists a new address for its owner.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDefaultAddressConflict
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid address data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create address")
	}

	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// FindAddressByID retrieves an address by its unique ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM)
}

// FindAddressesByOwner retrieves all addresses within one owner scope,
// default first.
func (repo *addressRepository) FindAddressesByOwner(ctx context.Context, owner entity.AddressOwner) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ?", owner.Kind().String(), owner.ID()).
		Order("is_default DESC, created_at ASC").
		Find(&addressModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by owner")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		address, err := toAddressDomain(addressM)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, address)
	}

	return addresses, nil
}

// FindDefaultAddressByOwner retrieves the single default address within
// one owner scope, if any.
func (repo *addressRepository) FindDefaultAddressByOwner(ctx context.Context, owner entity.AddressOwner) (*entity.Address, error) {
	var addressM model.AddressModel

	if err := repo.db.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ? AND is_default = ?", owner.Kind().String(), owner.ID(), true).
		First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find default address by owner")
	}

	return toAddressDomain(&addressM)
}

// DemoteOtherDefaults clears is_default on every address in the owner
// scope except the excluded one. The scope's rows are locked first so a
// concurrent promotion in another transaction serializes behind this one.
func (repo *addressRepository) DemoteOtherDefaults(ctx context.Context, owner entity.AddressOwner, exclude uuid.UUID) error {
	var locked []*model.AddressModel
	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("owner_type = ? AND owner_id = ? AND is_default = ?", owner.Kind().String(), owner.ID(), true).
		Find(&locked).Error; err != nil {
		return errors.Wrap(err, "failed to lock default addresses")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("owner_type = ? AND owner_id = ? AND is_default = ? AND id <> ?", owner.Kind().String(), owner.ID(), true, exclude).
		Update("is_default", false).Error; err != nil {
		return errors.Wrap(err, "failed to demote default addresses")
	}

	return nil
}

// UpdateAddress persists changes to an existing address.
func (repo *addressRepository) UpdateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	result := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("id = ?", address.ID).
		Updates(map[string]any{
			"label":        addressM.Label,
			"zip_code":     addressM.ZipCode,
			"street":       addressM.Street,
			"number":       addressM.Number,
			"neighborhood": addressM.Neighborhood,
			"complement":   addressM.Complement,
			"reference":    addressM.Reference,
			"city":         addressM.City,
			"state":        addressM.State,
			"latitude":     addressM.Latitude,
			"longitude":    addressM.Longitude,
			"is_default":   addressM.IsDefault,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDefaultAddressConflict
		}

		return errors.Wrap(result.Error, "failed to update address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// DeleteAddress removes an address by its ID.
func (repo *addressRepository) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AddressModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete address")
	}

	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) (*entity.Address, error) {
	if data == nil {
		return nil, nil
	}

	owner, ok := entity.OwnerFor(entity.OwnerType(data.OwnerType), data.OwnerID)
	if !ok {
		return nil, errors.Errorf("address %s has invalid owner discriminator %q", data.ID, data.OwnerType)
	}

	return &entity.Address{
		ID:           data.ID,
		Owner:        owner,
		Label:        data.Label,
		ZipCode:      data.ZipCode,
		Street:       data.Street,
		Number:       data.Number,
		Neighborhood: data.Neighborhood,
		Complement:   data.Complement,
		Reference:    data.Reference,
		City:         data.City,
		State:        data.State,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		IsDefault:    data.IsDefault,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}, nil
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:           data.ID,
		OwnerID:      data.Owner.ID(),
		OwnerType:    data.Owner.Kind().String(),
		Label:        data.Label,
		ZipCode:      data.ZipCode,
		Street:       data.Street,
		Number:       data.Number,
		Neighborhood: data.Neighborhood,
		Complement:   data.Complement,
		Reference:    data.Reference,
		City:         data.City,
		State:        data.State,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		IsDefault:    data.IsDefault,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
