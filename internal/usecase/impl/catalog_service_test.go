package impl

import (
	"context"
	"testing"

	"quitanda/internal/domain/entity"
	domainerrors "quitanda/internal/domain/errors"
	"quitanda/internal/domain/repository"
	mockRepo "quitanda/internal/mocks/repository"
	"quitanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	productRepo *mockRepo.MockProductRepository
	storeRepo   *mockRepo.MockStoreRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)

	service := NewCatalogService(txManager, productRepo, storeRepo)

	return catalogServiceFixtures{
		service:     service,
		txManager:   txManager,
		factory:     factory,
		productRepo: productRepo,
		storeRepo:   storeRepo,
	}
}

func (fx catalogServiceFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func TestCatalogService_CreateSection_DefaultsTypeAndForm(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	storeID := uuid.New()
	input := &usecase.CreateSectionInput{
		StoreID:  storeID,
		Title:    "Frutas",
		IsActive: true,
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().StoreRepo().Return(fx.storeRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)

	fx.storeRepo.EXPECT().
		FindStoreByID(ctx, storeID).
		Return(&entity.Store{ID: storeID}, nil)

	fx.productRepo.EXPECT().
		CreateSection(ctx, mock.AnythingOfType("*entity.Section")).
		Return(nil)

	section, err := fx.service.CreateSection(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, entity.SectionTypeList, section.Type)
	assert.Equal(t, entity.SectionFormNotApplicable, section.Form)
	assert.Equal(t, "Frutas", section.Title)
}

func TestCatalogService_CreateSection_InvalidType(t *testing.T) {
	fx := createTestCatalogService(t)

	input := &usecase.CreateSectionInput{
		StoreID: uuid.New(),
		Title:   "Frutas",
		Type:    "carousel",
	}

	section, err := fx.service.CreateSection(context.Background(), input)
	assert.Nil(t, section)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCatalogService_CreateSection_StoreNotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	storeID := uuid.New()
	input := &usecase.CreateSectionInput{
		StoreID: storeID,
		Title:   "Frutas",
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().StoreRepo().Return(fx.storeRepo)

	fx.storeRepo.EXPECT().
		FindStoreByID(ctx, storeID).
		Return(nil, repository.ErrStoreNotFound)

	section, err := fx.service.CreateSection(ctx, input)
	assert.Nil(t, section)
	assert.Equal(t, domainerrors.ErrStoreNotFound, err)
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	storeID := uuid.New()
	sectionID := uuid.New()
	extraSection := uuid.New()
	input := &usecase.CreateProductInput{
		StoreID:            storeID,
		SectionID:          sectionID,
		Name:               "Banana Prata",
		Price:              "3.50",
		DiscountPercentage: "10.00",
		IsActive:           true,
		ExtraSections:      []uuid.UUID{extraSection},
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)

	fx.productRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "3.50", product.Price.StringFixed(2))
	assert.Equal(t, "10.00", product.DiscountPercentage.StringFixed(2))
	require.Len(t, product.SectionLinks, 1)
	assert.Equal(t, extraSection, product.SectionLinks[0].SectionID)
}

func TestCatalogService_CreateProduct_InvalidPrice(t *testing.T) {
	fx := createTestCatalogService(t)

	input := &usecase.CreateProductInput{
		StoreID:   uuid.New(),
		SectionID: uuid.New(),
		Name:      "Banana Prata",
		Price:     "three fifty",
	}

	product, err := fx.service.CreateProduct(context.Background(), input)
	assert.Nil(t, product)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCatalogService_CreateProduct_DiscountOutOfRange(t *testing.T) {
	fx := createTestCatalogService(t)

	input := &usecase.CreateProductInput{
		StoreID:            uuid.New(),
		SectionID:          uuid.New(),
		Name:               "Banana Prata",
		Price:              "3.50",
		DiscountPercentage: "120.00",
	}

	product, err := fx.service.CreateProduct(context.Background(), input)
	assert.Nil(t, product)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestCatalogService_CreateProduct_SectionNotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	input := &usecase.CreateProductInput{
		StoreID:   uuid.New(),
		SectionID: uuid.New(),
		Name:      "Banana Prata",
		Price:     "3.50",
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)

	fx.productRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(repository.ErrSectionNotFound)

	product, err := fx.service.CreateProduct(ctx, input)
	assert.Nil(t, product)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "section not found")
}

func TestCatalogService_GetCatalog(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	storeID := uuid.New()
	sections := []*entity.Section{
		{ID: uuid.New(), StoreID: storeID, Title: "Frutas", Position: 0},
		{ID: uuid.New(), StoreID: storeID, Title: "Legumes", Position: 1},
	}

	fx.storeRepo.EXPECT().
		FindStoreByID(ctx, storeID).
		Return(&entity.Store{ID: storeID}, nil)

	fx.productRepo.EXPECT().
		FindSectionsByStore(ctx, storeID).
		Return(sections, nil)

	catalog, err := fx.service.GetCatalog(ctx, storeID)
	require.NoError(t, err)
	assert.Equal(t, sections, catalog)
}

func TestCatalogService_GetCatalog_StoreNotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().
		FindStoreByID(ctx, storeID).
		Return(nil, repository.ErrStoreNotFound)

	catalog, err := fx.service.GetCatalog(ctx, storeID)
	assert.Nil(t, catalog)
	assert.Equal(t, domainerrors.ErrStoreNotFound, err)
}
