package impl

import (
	"context"

	"quitanda/internal/domain/entity"
	domainerrors "quitanda/internal/domain/errors"
	"quitanda/internal/domain/repository"
	"quitanda/internal/errors"
	"quitanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type catalogService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(
	txManager repository.TransactionManager,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
) usecase.CatalogUsecase {
	return &catalogService{
		txManager:   txManager,
		productRepo: productRepo,
		storeRepo:   storeRepo,
	}
}

// CreateSection adds a section to a store.
func (s *catalogService) CreateSection(ctx context.Context, input *usecase.CreateSectionInput) (*entity.Section, error) {
	sectionType := entity.SectionType(input.Type)
	if input.Type == "" {
		sectionType = entity.SectionTypeList
	}
	form := entity.SectionForm(input.Form)
	if input.Form == "" {
		form = entity.SectionFormNotApplicable
	}
	if !sectionType.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid section type")
	}
	if !form.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid section form")
	}

	section := &entity.Section{
		StoreID:         input.StoreID,
		Title:           input.Title,
		Type:            sectionType,
		Position:        input.Position,
		MinProducts:     input.MinProducts,
		MaxProducts:     input.MaxProducts,
		IsActive:        input.IsActive,
		IsRequired:      input.IsRequired,
		IsHighlighted:   input.IsHighlighted,
		Form:            form,
		TextboxHelpText: input.TextboxHelpText,
	}

	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if _, err := repos.StoreRepo().FindStoreByID(ctx, input.StoreID); err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return domainerrors.ErrStoreNotFound
			}

			return err
		}

		return repos.ProductRepo().CreateSection(ctx, section)
	})
	if err != nil {
		return nil, err
	}

	return section, nil
}

// CreateProduct adds a product to a store section, optionally linking it
// into extra sections.
func (s *catalogService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	price, err := decimal.NewFromString(input.Price)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid price")
	}

	discount := decimal.Zero
	if input.DiscountPercentage != "" {
		discount, err = decimal.NewFromString(input.DiscountPercentage)
		if err != nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("invalid discount_percentage")
		}
	}

	product := &entity.Product{
		StoreID:            input.StoreID,
		SectionID:          input.SectionID,
		Name:               input.Name,
		Description:        input.Description,
		Price:              price,
		DiscountPercentage: discount,
		Position:           input.Position,
		IsActive:           input.IsActive,
	}
	for i, sectionID := range input.ExtraSections {
		product.SectionLinks = append(product.SectionLinks, &entity.ProductSection{
			SectionID: sectionID,
			Position:  i,
		})
	}
	if err := product.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.ProductRepo().CreateProduct(ctx, product); err != nil {
			if errors.Is(err, repository.ErrSectionNotFound) {
				return domainerrors.ErrNotFound.WrapMessage("section not found")
			}

			return err
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return product, nil
}

// GetCatalog retrieves a store's sections with their ordered products.
func (s *catalogService) GetCatalog(ctx context.Context, storeID uuid.UUID) ([]*entity.Section, error) {
	if _, err := s.storeRepo.FindStoreByID(ctx, storeID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, err
	}

	return s.productRepo.FindSectionsByStore(ctx, storeID)
}
