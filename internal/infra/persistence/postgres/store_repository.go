package postgres

import (
	"context"
	"encoding/json"

	"quitanda/internal/domain/entity"
	domainerrors "quitanda/internal/domain/errors"
	"quitanda/internal/domain/repository"
	"quitanda/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// storeRepository implements the repository.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{
		db: db,
	}
}

// CreateStore persists a new store with its opening hours.
func (repo *storeRepository) CreateStore(ctx context.Context, store *entity.Store) error {
	storeM, err := fromStoreDomain(store)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateStore
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrAccountNotFound
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid store data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt
	for i, hoursM := range storeM.OpeningHours {
		if i < len(store.OpeningHours) {
			store.OpeningHours[i].ID = hoursM.ID
			store.OpeningHours[i].StoreID = hoursM.StoreID
		}
	}

	return nil
}

// FindStoreByID retrieves a store by its unique ID, without associations.
func (repo *storeRepository) FindStoreByID(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by ID")
	}

	return toStoreDomain(&storeM)
}

// FindStoreDetail retrieves a store with its opening hours preloaded.
func (repo *storeRepository) FindStoreDetail(ctx context.Context, id uuid.UUID) (*entity.Store, error) {
	var storeM model.StoreModel

	if err := repo.db.WithContext(ctx).
		Preload("OpeningHours").
		Where("id = ?", id).
		First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store detail")
	}

	return toStoreDomain(&storeM)
}

// ListStores retrieves all stores ordered by name.
func (repo *storeRepository) ListStores(ctx context.Context) ([]*entity.Store, error) {
	var storeModels []*model.StoreModel

	if err := repo.db.WithContext(ctx).
		Order("name ASC").
		Find(&storeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	stores := make([]*entity.Store, 0, len(storeModels))
	for _, storeM := range storeModels {
		store, err := toStoreDomain(storeM)
		if err != nil {
			return nil, err
		}
		stores = append(stores, store)
	}

	return stores, nil
}

// UpdateStore persists changes to an existing store.
func (repo *storeRepository) UpdateStore(ctx context.Context, store *entity.Store) error {
	storeM, err := fromStoreDomain(store)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("id = ?", store.ID).
		Updates(map[string]any{
			"name":            storeM.Name,
			"cnpj":            storeM.CNPJ,
			"min_order_value": storeM.MinOrderValue,
			"delivery_fee":    storeM.DeliveryFee,
			"config":          storeM.Config,
		})

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateStore
		}

		return errors.Wrap(result.Error, "failed to update store")
	}

	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toStoreDomain converts a GORM StoreModel to a domain Store entity.
func toStoreDomain(data *model.StoreModel) (*entity.Store, error) {
	if data == nil {
		return nil, nil
	}

	var cfg map[string]any
	if len(data.Config) > 0 {
		if err := json.Unmarshal(data.Config, &cfg); err != nil {
			return nil, errors.Wrapf(err, "store %s has malformed config", data.ID)
		}
	}

	hours := make([]*entity.OpeningHours, 0, len(data.OpeningHours))
	for _, hoursM := range data.OpeningHours {
		hours = append(hours, &entity.OpeningHours{
			ID:       hoursM.ID,
			StoreID:  hoursM.StoreID,
			Weekday:  hoursM.Weekday,
			FromHour: hoursM.FromHour,
			ToHour:   hoursM.ToHour,
		})
	}

	return &entity.Store{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		Name:          data.Name,
		CNPJ:          data.CNPJ,
		MinOrderValue: data.MinOrderValue,
		DeliveryFee:   data.DeliveryFee,
		Config:        cfg,
		OpeningHours:  hours,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}, nil
}

// fromStoreDomain converts a domain Store entity to a GORM StoreModel.
func fromStoreDomain(data *entity.Store) (*model.StoreModel, error) {
	if data == nil {
		return nil, nil
	}

	var cfg datatypes.JSON
	if data.Config != nil {
		raw, err := json.Marshal(data.Config)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode store config")
		}
		cfg = datatypes.JSON(raw)
	}

	hours := make([]*model.OpeningHoursModel, 0, len(data.OpeningHours))
	for _, h := range data.OpeningHours {
		hours = append(hours, &model.OpeningHoursModel{
			ID:       h.ID,
			StoreID:  h.StoreID,
			Weekday:  h.Weekday,
			FromHour: h.FromHour,
			ToHour:   h.ToHour,
		})
	}

	return &model.StoreModel{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		Name:          data.Name,
		CNPJ:          data.CNPJ,
		MinOrderValue: data.MinOrderValue,
		DeliveryFee:   data.DeliveryFee,
		Config:        cfg,
		OpeningHours:  hours,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}, nil
}
