package usecase

import (
	"context"

	"quitanda/internal/domain/entity"

	"github.com/google/uuid"
)

// OpeningHoursInput is one weekday window for a new store.
type OpeningHoursInput struct {
	Weekday  int    `json:"weekday" validate:"required,gte=1,lte=7"`
	FromHour string `json:"from_hour" validate:"required,len=5"`
	ToHour   string `json:"to_hour" validate:"required,len=5"`
}

// CreateStoreInput registers a new store under an admin account.
type CreateStoreInput struct {
	OwnerID       uuid.UUID           `json:"owner_uuid" validate:"required"`
	Name          string              `json:"name" validate:"required"`
	CNPJ          string              `json:"cnpj" validate:"required,len=14,numeric"`
	MinOrderValue string              `json:"min_order_value"`
	DeliveryFee   string              `json:"delivery_fee"`
	Config        map[string]any      `json:"config"`
	OpeningHours  []OpeningHoursInput `json:"opening_hours"`
}

// StoreUsecase defines the interface for store management use cases
type StoreUsecase interface {
	// CreateStore registers a store owned by an admin account.
	CreateStore(ctx context.Context, input *CreateStoreInput) (*entity.Store, error)

	// GetStore retrieves a store with its opening hours and addresses.
	GetStore(ctx context.Context, storeID uuid.UUID) (*entity.Store, error)

	// ListStores retrieves all stores.
	ListStores(ctx context.Context) ([]*entity.Store, error)

	// GenerateMenuQR renders the PNG QR code linking to the store's menu.
	GenerateMenuQR(ctx context.Context, storeID uuid.UUID) ([]byte, error)
}
