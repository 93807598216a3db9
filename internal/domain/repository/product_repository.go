package repository

import (
	"context"

	"quitanda/internal/domain/entity"
	"quitanda/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrSectionNotFound is returned when a section is not found.
	ErrSectionNotFound = errors.New("section not found")
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository defines the interface for catalog (section and
// product) database operations.
type ProductRepository interface {
	// CreateSection persists a new section for a store.
	CreateSection(ctx context.Context, section *entity.Section) error

	// CreateProduct persists a new product with its extra section links.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product by its unique ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindActiveProductsByStore retrieves, among the requested IDs, the
	// products that belong to the store and are currently active. Missing
	// or inactive IDs are simply absent from the result; the caller
	// decides how to report them.
	FindActiveProductsByStore(ctx context.Context, storeID uuid.UUID, ids []uuid.UUID) ([]*entity.Product, error)

	// FindSectionsByStore retrieves a store's active sections in display
	// order, each with its active products ordered by position.
	FindSectionsByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Section, error)

	// UpdateProduct updates an existing product record.
	UpdateProduct(ctx context.Context, product *entity.Product) error
}
