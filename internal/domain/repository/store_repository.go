package repository

import (
	"context"

	"quitanda/internal/domain/entity"
	"quitanda/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for store persistence.
var (
	// ErrStoreNotFound is returned when a store is not found.
	ErrStoreNotFound = errors.New("store not found")
	// ErrDuplicateStore is returned when the CNPJ or owner collide with an existing store.
	ErrDuplicateStore = errors.New("store with this cnpj or owner already exists")
)

// StoreRepository defines the interface for store-related database operations.
type StoreRepository interface {
	// CreateStore persists a new store with its opening hours.
	CreateStore(ctx context.Context, store *entity.Store) error

	// FindStoreByID retrieves a store by its unique ID.
	FindStoreByID(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// FindStoreDetail retrieves a store with its opening hours and addresses.
	FindStoreDetail(ctx context.Context, id uuid.UUID) (*entity.Store, error)

	// ListStores retrieves all stores, newest first.
	ListStores(ctx context.Context) ([]*entity.Store, error)

	// UpdateStore updates an existing store record.
	UpdateStore(ctx context.Context, store *entity.Store) error
}
