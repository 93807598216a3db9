package impl

import (
	"context"

	"quitanda/internal/domain/entity"
	domainerrors "quitanda/internal/domain/errors"
	"quitanda/internal/domain/repository"
	"quitanda/internal/domain/service"
	"quitanda/internal/errors"
	"quitanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type storeService struct {
	txManager   repository.TransactionManager
	storeRepo   repository.StoreRepository
	addressRepo repository.AddressRepository
	qrcodeSvc   service.QRCodeService
}

// NewStoreService creates a new store service instance
func NewStoreService(
	txManager repository.TransactionManager,
	storeRepo repository.StoreRepository,
	addressRepo repository.AddressRepository,
	qrcodeSvc service.QRCodeService,
) usecase.StoreUsecase {
	return &storeService{
		txManager:   txManager,
		storeRepo:   storeRepo,
		addressRepo: addressRepo,
		qrcodeSvc:   qrcodeSvc,
	}
}

// CreateStore registers a store owned by an admin account. The owner
// must already hold the admin role.
func (s *storeService) CreateStore(ctx context.Context, input *usecase.CreateStoreInput) (*entity.Store, error) {
	minOrderValue, deliveryFee, err := parseStoreMoney(input.MinOrderValue, input.DeliveryFee)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	store := &entity.Store{
		OwnerID:       input.OwnerID,
		Name:          input.Name,
		CNPJ:          input.CNPJ,
		MinOrderValue: minOrderValue,
		DeliveryFee:   deliveryFee,
		Config:        input.Config,
	}
	for _, hours := range input.OpeningHours {
		window := &entity.OpeningHours{
			Weekday:  hours.Weekday,
			FromHour: hours.FromHour,
			ToHour:   hours.ToHour,
		}
		if err := window.Validate(); err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}
		store.OpeningHours = append(store.OpeningHours, window)
	}
	if err := store.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		owner, err := repos.AccountRepo().FindAccountByID(ctx, input.OwnerID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return err
		}

		if owner.Type != entity.AccountTypeAdmin {
			return domainerrors.ErrValidationFailed.WithDetails("store owner must be an admin account")
		}

		return repos.StoreRepo().CreateStore(ctx, store)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateStore) {
			return nil, domainerrors.ErrConflict.WithDetails("CNPJ already registered")
		}

		return nil, err
	}

	return store, nil
}

// GetStore retrieves a store with its opening hours and addresses.
func (s *storeService) GetStore(ctx context.Context, storeID uuid.UUID) (*entity.Store, error) {
	store, err := s.storeRepo.FindStoreDetail(ctx, storeID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, err
	}

	addresses, err := s.addressRepo.FindAddressesByOwner(ctx, entity.StoreOwner(store.ID))
	if err != nil {
		return nil, err
	}
	store.Addresses = addresses

	return store, nil
}

// ListStores retrieves all stores.
func (s *storeService) ListStores(ctx context.Context) ([]*entity.Store, error) {
	return s.storeRepo.ListStores(ctx)
}

// GenerateMenuQR renders the PNG QR code linking to the store's menu.
// The store must exist; the QR encodes a public URL, not store data.
func (s *storeService) GenerateMenuQR(ctx context.Context, storeID uuid.UUID) ([]byte, error) {
	if _, err := s.storeRepo.FindStoreByID(ctx, storeID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, err
	}

	return s.qrcodeSvc.GenerateStoreMenuQR(storeID)
}

// parseStoreMoney parses the optional monetary strings of a store
// payload, defaulting absent values to zero.
func parseStoreMoney(minOrderValue, deliveryFee string) (decimal.Decimal, decimal.Decimal, error) {
	parsedMin := decimal.Zero
	if minOrderValue != "" {
		var err error
		parsedMin, err = decimal.NewFromString(minOrderValue)
		if err != nil {
			return decimal.Zero, decimal.Zero, errors.Wrap(err, "invalid min_order_value")
		}
	}

	parsedFee := decimal.Zero
	if deliveryFee != "" {
		var err error
		parsedFee, err = decimal.NewFromString(deliveryFee)
		if err != nil {
			return decimal.Zero, decimal.Zero, errors.Wrap(err, "invalid delivery_fee")
		}
	}

	return parsedMin, parsedFee, nil
}
