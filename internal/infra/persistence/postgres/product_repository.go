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
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// CreateSection persists a new section for a store.
func (repo *productRepository) CreateSection(ctx context.Context, section *entity.Section) error {
	sectionM := fromSectionDomain(section)

	if err := repo.db.WithContext(ctx).Create(sectionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrStoreNotFound
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid section data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create section")
	}

	section.ID = sectionM.ID
	section.CreatedAt = sectionM.CreatedAt
	section.UpdatedAt = sectionM.UpdatedAt

	return nil
}

// CreateProduct persists a new product with its extra section links.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrSectionNotFound
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid product data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt
	for i, linkM := range productM.SectionLinks {
		if i < len(product.SectionLinks) {
			product.SectionLinks[i].ID = linkM.ID
			product.SectionLinks[i].ProductID = linkM.ProductID
		}
	}

	return nil
}

// FindProductByID retrieves a product by its unique ID.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindActiveProductsByStore retrieves the active products among the given
// IDs that belong to the store. IDs with no matching row are simply absent
// from the result; the caller diffs to learn which ones were rejected.
func (repo *productRepository) FindActiveProductsByStore(ctx context.Context, storeID uuid.UUID, ids []uuid.UUID) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("store_id = ? AND is_active = ? AND id IN ?", storeID, true, ids).
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active products by store")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindSectionsByStore retrieves a store's sections with their primary
// products, ordered for storefront display.
func (repo *productRepository) FindSectionsByStore(ctx context.Context, storeID uuid.UUID) ([]*entity.Section, error) {
	var sectionModels []*model.SectionModel

	if err := repo.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Order("products.position ASC")
		}).
		Where("store_id = ?", storeID).
		Order("position ASC").
		Find(&sectionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sections by store")
	}

	sections := make([]*entity.Section, 0, len(sectionModels))
	for _, sectionM := range sectionModels {
		sections = append(sections, toSectionDomain(sectionM))
	}

	return sections, nil
}

// UpdateProduct persists changes to an existing product.
func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Updates(map[string]any{
			"name":                productM.Name,
			"description":         productM.Description,
			"price":               productM.Price,
			"discount_percentage": productM.DiscountPercentage,
			"position":            productM.Position,
			"is_active":           productM.IsActive,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid product data")
		}

		return errors.Wrap(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	links := make([]*entity.ProductSection, 0, len(data.SectionLinks))
	for _, linkM := range data.SectionLinks {
		links = append(links, &entity.ProductSection{
			ID:        linkM.ID,
			SectionID: linkM.SectionID,
			ProductID: linkM.ProductID,
			Position:  linkM.Position,
		})
	}

	return &entity.Product{
		ID:                 data.ID,
		StoreID:            data.StoreID,
		SectionID:          data.SectionID,
		Name:               data.Name,
		Description:        data.Description,
		Price:              data.Price,
		DiscountPercentage: data.DiscountPercentage,
		Position:           data.Position,
		IsActive:           data.IsActive,
		SectionLinks:       links,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	links := make([]*model.ProductSectionModel, 0, len(data.SectionLinks))
	for _, link := range data.SectionLinks {
		links = append(links, &model.ProductSectionModel{
			ID:        link.ID,
			SectionID: link.SectionID,
			ProductID: link.ProductID,
			Position:  link.Position,
		})
	}

	return &model.ProductModel{
		ID:                 data.ID,
		StoreID:            data.StoreID,
		SectionID:          data.SectionID,
		Name:               data.Name,
		Description:        data.Description,
		Price:              data.Price,
		DiscountPercentage: data.DiscountPercentage,
		Position:           data.Position,
		IsActive:           data.IsActive,
		SectionLinks:       links,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

// toSectionDomain converts a GORM SectionModel to a domain Section entity.
func toSectionDomain(data *model.SectionModel) *entity.Section {
	if data == nil {
		return nil
	}

	products := make([]*entity.Product, 0, len(data.Products))
	for _, productM := range data.Products {
		products = append(products, toProductDomain(productM))
	}

	return &entity.Section{
		ID:              data.ID,
		StoreID:         data.StoreID,
		Title:           data.Title,
		Type:            entity.SectionType(data.Type),
		Position:        data.Position,
		MinProducts:     data.MinProducts,
		MaxProducts:     data.MaxProducts,
		IsActive:        data.IsActive,
		IsRequired:      data.IsRequired,
		IsHighlighted:   data.IsHighlighted,
		Form:            entity.SectionForm(data.Form),
		TextboxHelpText: data.TextboxHelpText,
		Products:        products,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromSectionDomain converts a domain Section entity to a GORM SectionModel.
func fromSectionDomain(data *entity.Section) *model.SectionModel {
	if data == nil {
		return nil
	}

	return &model.SectionModel{
		ID:              data.ID,
		StoreID:         data.StoreID,
		Title:           data.Title,
		Type:            string(data.Type),
		Position:        data.Position,
		MinProducts:     data.MinProducts,
		MaxProducts:     data.MaxProducts,
		IsActive:        data.IsActive,
		IsRequired:      data.IsRequired,
		IsHighlighted:   data.IsHighlighted,
		Form:            string(data.Form),
		TextboxHelpText: data.TextboxHelpText,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}
