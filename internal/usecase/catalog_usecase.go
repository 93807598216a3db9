package usecase

import (
	"context"

	"quitanda/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateSectionInput adds a display section to a store.
type CreateSectionInput struct {
	StoreID         uuid.UUID `json:"store_uuid" validate:"required"`
	Title           string    `json:"title" validate:"required"`
	Type            string    `json:"type" validate:"omitempty,oneof=grid list slider"`
	Position        int       `json:"position"`
	MinProducts     int       `json:"min_products"`
	MaxProducts     int       `json:"max_products"`
	IsActive        bool      `json:"is_active"`
	IsRequired      bool      `json:"is_required"`
	IsHighlighted   bool      `json:"is_highlighted"`
	Form            string    `json:"form" validate:"omitempty,oneof=not_applicable radio increment_decrement textbox"`
	TextboxHelpText string    `json:"textbox_help_text"`
}

// CreateProductInput adds a product to a store section. Price and
// discount arrive as decimal strings to avoid float drift in transport.
type CreateProductInput struct {
	StoreID            uuid.UUID   `json:"store_uuid" validate:"required"`
	SectionID          uuid.UUID   `json:"section_uuid" validate:"required"`
	Name               string      `json:"name" validate:"required"`
	Description        string      `json:"description"`
	Price              string      `json:"price" validate:"required"`
	DiscountPercentage string      `json:"discount_percentage"`
	Position           int         `json:"position"`
	IsActive           bool        `json:"is_active"`
	ExtraSections      []uuid.UUID `json:"extra_sections"`
}

// CatalogUsecase defines the interface for storefront catalog use cases
type CatalogUsecase interface {
	// CreateSection adds a section to a store.
	CreateSection(ctx context.Context, input *CreateSectionInput) (*entity.Section, error)

	// CreateProduct adds a product to a store section, optionally linking
	// it into extra sections.
	CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error)

	// GetCatalog retrieves a store's sections with their ordered products.
	GetCatalog(ctx context.Context, storeID uuid.UUID) ([]*entity.Section, error)
}
