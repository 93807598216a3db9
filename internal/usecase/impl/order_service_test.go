package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"quitanda/config"
	"quitanda/internal/domain/entity"
	domainerrors "quitanda/internal/domain/errors"
	"quitanda/internal/domain/repository"
	mockRepo "quitanda/internal/mocks/repository"
	mockService "quitanda/internal/mocks/service"
	"quitanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service     usecase.OrderUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	storeRepo   *mockRepo.MockStoreRepository
	accountRepo *mockRepo.MockAccountRepository
	productRepo *mockRepo.MockProductRepository
	orderRepo   *mockRepo.MockOrderRepository
	publisher   *mockService.MockEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Order: &config.OrderConfig{MaxItemsPerOrder: 50}}

	service := NewOrderService(txManager, orderRepo, publisher, logger, cfg)

	return orderServiceFixtures{
		service:     service,
		txManager:   txManager,
		factory:     factory,
		storeRepo:   storeRepo,
		accountRepo: accountRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
		publisher:   publisher,
	}
}

// expectTransaction makes the transaction manager run the callback
// against the fixture's repository factory, as the real manager would
// against a live transaction.
func (fx orderServiceFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func testStore(minOrderValue, deliveryFee string) *entity.Store {
	return &entity.Store{
		ID:            uuid.New(),
		Name:          "Quitanda do Bairro",
		CNPJ:          "11222333000181",
		MinOrderValue: decimal.RequireFromString(minOrderValue),
		DeliveryFee:   decimal.RequireFromString(deliveryFee),
	}
}

func testProduct(storeID uuid.UUID, name, price, discount string) *entity.Product {
	return &entity.Product{
		ID:                 uuid.New(),
		StoreID:            storeID,
		Name:               name,
		Price:              decimal.RequireFromString(price),
		DiscountPercentage: decimal.RequireFromString(discount),
		IsActive:           true,
	}
}

func testDeliveryAddress() usecase.DeliveryAddressInput {
	return usecase.DeliveryAddressInput{
		ZipCode: "01310100",
		Street:  "Avenida Paulista",
		Number:  "1000",
		City:    "São Paulo",
		State:   "SP",
	}
}

func TestOrderService_CreateOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	store := testStore("20.00", "5.00")
	account := &entity.Account{ID: uuid.New(), Type: entity.AccountTypeClient}
	product := testProduct(store.ID, "Banana Prata", "15.00", "0.00")

	input := &usecase.CreateOrderInput{
		StoreID:   store.ID,
		AccountID: account.ID,
		Items: []usecase.CartItemInput{
			{ProductID: product.ID, Quantity: 2},
		},
		DeliveryAddressInput: testDeliveryAddress(),
		Notes:                "leave at the door",
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().StoreRepo().Return(fx.storeRepo)
	fx.factory.EXPECT().AccountRepo().Return(fx.accountRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)

	fx.storeRepo.EXPECT().
		FindStoreByID(ctx, store.ID).
		Return(store, nil)

	fx.accountRepo.EXPECT().
		FindAccountByID(ctx, account.ID).
		Return(account, nil)

	fx.productRepo.EXPECT().
		FindActiveProductsByStore(ctx, store.ID, []uuid.UUID{product.ID}).
		Return([]*entity.Product{product}, nil)

	fx.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
	assert.Equal(t, store.ID, order.StoreID)
	assert.Equal(t, account.ID, order.AccountID)
	assert.True(t, order.DeliveryFee.Equal(decimal.RequireFromString("5.00")))
	assert.True(t, order.Subtotal.Equal(decimal.RequireFromString("30.00")))
	assert.True(t, order.Total.Equal(decimal.RequireFromString("35.00")))
	require.Len(t, order.Items, 1)
	assert.Equal(t, product.ID, order.Items[0].ProductUUID)
	assert.Equal(t, "Banana Prata", order.Items[0].ProductName)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, "01310100", order.Address.ZipCode)
}

func TestOrderService_CreateOrder_AppliesDiscountedPrices(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	store := testStore("10.00", "0.00")
	account := &entity.Account{ID: uuid.New(), Type: entity.AccountTypeClient}
	// 33.33 with a 15% discount rounds half up to 28.33.
	product := testProduct(store.ID, "Cesta de Legumes", "33.33", "15.00")

	input := &usecase.CreateOrderInput{
		StoreID:   store.ID,
		AccountID: account.ID,
		Items: []usecase.CartItemInput{
			{ProductID: product.ID, Quantity: 1},
		},
		DeliveryAddressInput: testDeliveryAddress(),
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().StoreRepo().Return(fx.storeRepo)
	fx.factory.EXPECT().AccountRepo().Return(fx.accountRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)

	fx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	fx.accountRepo.EXPECT().FindAccountByID(ctx, account.ID).Return(account, nil)
	fx.productRepo.EXPECT().
		FindActiveProductsByStore(ctx, store.ID, []uuid.UUID{product.ID}).
		Return([]*entity.Product{product}, nil)
	fx.orderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	order, err := fx.service.CreateOrder(ctx, input)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "28.33", order.Items[0].UnitPrice.StringFixed(2))
	assert.Equal(t, "28.33", order.Subtotal.StringFixed(2))
}

func TestOrderService_CreateOrder_MergesDuplicateLines(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	store := testStore("5.00", "0.00")
	account := &entity.Account{ID: uuid.New(), Type: entity.AccountTypeClient}
	banana := testProduct(store.ID, "Banana Prata", "3.50", "0.00")
	mango := testProduct(store.ID, "Manga Palmer", "6.00", "0.00")

	input := &usecase.CreateOrderInput{
		StoreID:   store.ID,
		AccountID: account.ID,
		Items: []usecase.CartItemInput{
			{ProductID: banana.ID, Quantity: 1},
			{ProductID: mango.ID, Quantity: 2},
			{ProductID: banana.ID, Quantity: 2},
		},
		DeliveryAddressInput: testDeliveryAddress(),
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().StoreRepo().Return(fx.storeRepo)
	fx.factory.EXPECT().AccountRepo().Return(fx.accountRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)

	fx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	fx.accountRepo.EXPECT().FindAccountByID(ctx, account.ID).Return(account, nil)
	fx.productRepo.EXPECT().
		FindActiveProductsByStore(ctx, store.ID, []uuid.UUID{banana.ID, mango.ID}).
		Return([]*entity.Product{banana, mango}, nil)
	fx.orderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	order, err := fx.service.CreateOrder(ctx, input)
	require.NoError(t, err)
	require.Len(t, order.Items, 2)
	// Merged lines keep first-appearance order.
	assert.Equal(t, banana.ID, order.Items[0].ProductUUID)
	assert.Equal(t, 3, order.Items[0].Quantity)
	assert.Equal(t, mango.ID, order.Items[1].ProductUUID)
	assert.Equal(t, 2, order.Items[1].Quantity)
	assert.Equal(t, "22.50", order.Subtotal.StringFixed(2))
}

func TestOrderService_CreateOrder_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		StoreID:   uuid.New(),
		AccountID: uuid.New(),
		Items:     []usecase.CartItemInput{},
		DeliveryAddressInput: testDeliveryAddress(),
	}

	order, err := fx.service.CreateOrder(ctx, input)
	assert.Nil(t, order)
	assert.Equal(t, domainerrors.ErrEmptyCart, err)
}

func TestOrderService_CreateOrder_MissingAddressFields(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	input := &usecase.CreateOrderInput{
		StoreID:   uuid.New(),
		AccountID: uuid.New(),
		Items: []usecase.CartItemInput{
			{ProductID: uuid.New(), Quantity: 1},
		},
		DeliveryAddressInput: usecase.DeliveryAddressInput{
			ZipCode: "01310100",
			Street:  "Avenida Paulista",
			// Number missing
		},
	}

	order, err := fx.service.CreateOrder(ctx, input)
	assert.Nil(t, order)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestOrderService_CreateOrder_StoreNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	storeID := uuid.New()
	input := &usecase.CreateOrderInput{
		StoreID:   storeID,
		AccountID: uuid.New(),
		Items: []usecase.CartItemInput{
			{ProductID: uuid.New(), Quantity: 1},
		},
		DeliveryAddressInput: testDeliveryAddress(),
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().StoreRepo().Return(fx.storeRepo)
	fx.storeRepo.EXPECT().
		FindStoreByID(ctx, storeID).
		Return(nil, repository.ErrStoreNotFound)

	order, err := fx.service.CreateOrder(ctx, input)
	assert.Nil(t, order)
	assert.Equal(t, domainerrors.ErrStoreNotFound, err)
}

func TestOrderService_CreateOrder_AccountNotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	store := testStore("20.00", "5.00")
	accountID := uuid.New()
	input := &usecase.CreateOrderInput{
		StoreID:   store.ID,
		AccountID: accountID,
		Items: []usecase.CartItemInput{
			{ProductID: uuid.New(), Quantity: 1},
		},
		DeliveryAddressInput: testDeliveryAddress(),
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().StoreRepo().Return(fx.storeRepo)
	fx.factory.EXPECT().AccountRepo().Return(fx.accountRepo)

	fx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	fx.accountRepo.EXPECT().
		FindAccountByID(ctx, accountID).
		Return(nil, repository.ErrAccountNotFound)

	order, err := fx.service.CreateOrder(ctx, input)
	assert.Nil(t, order)
	assert.Equal(t, domainerrors.ErrAccountNotFound, err)
}

func TestOrderService_CreateOrder_ReportsAllMissingProducts(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	store := testStore("5.00", "0.00")
	account := &entity.Account{ID: uuid.New(), Type: entity.AccountTypeClient}
	known := testProduct(store.ID, "Banana Prata", "3.50", "0.00")
	missingA := uuid.New()
	missingB := uuid.New()

	input := &usecase.CreateOrderInput{
		StoreID:   store.ID,
		AccountID: account.ID,
		Items: []usecase.CartItemInput{
			{ProductID: known.ID, Quantity: 1},
			{ProductID: missingA, Quantity: 1},
			{ProductID: missingB, Quantity: 2},
		},
		DeliveryAddressInput: testDeliveryAddress(),
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().StoreRepo().Return(fx.storeRepo)
	fx.factory.EXPECT().AccountRepo().Return(fx.accountRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)

	fx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	fx.accountRepo.EXPECT().FindAccountByID(ctx, account.ID).Return(account, nil)
	fx.productRepo.EXPECT().
		FindActiveProductsByStore(ctx, store.ID, []uuid.UUID{known.ID, missingA, missingB}).
		Return([]*entity.Product{known}, nil)

	order, err := fx.service.CreateOrder(ctx, input)
	assert.Nil(t, order)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "PRODUCTS_UNAVAILABLE", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), missingA.String())
	assert.Contains(t, appErr.Details(), missingB.String())
	assert.NotContains(t, appErr.Details(), known.ID.String())
}

func TestOrderService_CreateOrder_BelowMinimumRollsBack(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	store := testStore("20.00", "5.00")
	account := &entity.Account{ID: uuid.New(), Type: entity.AccountTypeClient}
	product := testProduct(store.ID, "Limão Tahiti", "19.99", "0.00")

	input := &usecase.CreateOrderInput{
		StoreID:   store.ID,
		AccountID: account.ID,
		Items: []usecase.CartItemInput{
			{ProductID: product.ID, Quantity: 1},
		},
		DeliveryAddressInput: testDeliveryAddress(),
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().StoreRepo().Return(fx.storeRepo)
	fx.factory.EXPECT().AccountRepo().Return(fx.accountRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)

	fx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	fx.accountRepo.EXPECT().FindAccountByID(ctx, account.ID).Return(account, nil)
	fx.productRepo.EXPECT().
		FindActiveProductsByStore(ctx, store.ID, []uuid.UUID{product.ID}).
		Return([]*entity.Product{product}, nil)

	// The order row is written before the minimum check so the failing
	// transaction exercises the rollback. No event may be published.
	fx.orderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Return(nil)

	order, err := fx.service.CreateOrder(ctx, input)
	assert.Nil(t, order)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "BELOW_MINIMUM_ORDER_VALUE", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "19.99")
	assert.Contains(t, appErr.Details(), "20.00")
}

func TestOrderService_CreateOrder_ExactMinimumPasses(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	store := testStore("20.00", "5.00")
	account := &entity.Account{ID: uuid.New(), Type: entity.AccountTypeClient}
	product := testProduct(store.ID, "Abacaxi Pérola", "10.00", "0.00")

	input := &usecase.CreateOrderInput{
		StoreID:   store.ID,
		AccountID: account.ID,
		Items: []usecase.CartItemInput{
			{ProductID: product.ID, Quantity: 2},
		},
		DeliveryAddressInput: testDeliveryAddress(),
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().StoreRepo().Return(fx.storeRepo)
	fx.factory.EXPECT().AccountRepo().Return(fx.accountRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)

	fx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	fx.accountRepo.EXPECT().FindAccountByID(ctx, account.ID).Return(account, nil)
	fx.productRepo.EXPECT().
		FindActiveProductsByStore(ctx, store.ID, []uuid.UUID{product.ID}).
		Return([]*entity.Product{product}, nil)
	fx.orderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)
	fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).Return(nil)

	order, err := fx.service.CreateOrder(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "20.00", order.Subtotal.StringFixed(2))
}

func TestOrderService_CreateOrder_PublishFailureDoesNotFailOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	store := testStore("5.00", "0.00")
	account := &entity.Account{ID: uuid.New(), Type: entity.AccountTypeClient}
	product := testProduct(store.ID, "Mamão Formosa", "8.00", "0.00")

	input := &usecase.CreateOrderInput{
		StoreID:   store.ID,
		AccountID: account.ID,
		Items: []usecase.CartItemInput{
			{ProductID: product.ID, Quantity: 1},
		},
		DeliveryAddressInput: testDeliveryAddress(),
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().StoreRepo().Return(fx.storeRepo)
	fx.factory.EXPECT().AccountRepo().Return(fx.accountRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)
	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)

	fx.storeRepo.EXPECT().FindStoreByID(ctx, store.ID).Return(store, nil)
	fx.accountRepo.EXPECT().FindAccountByID(ctx, account.ID).Return(account, nil)
	fx.productRepo.EXPECT().
		FindActiveProductsByStore(ctx, store.ID, []uuid.UUID{product.ID}).
		Return([]*entity.Product{product}, nil)
	fx.orderRepo.EXPECT().CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).Return(nil)

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(assert.AnError)

	order, err := fx.service.CreateOrder(ctx, input)
	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_CreateOrder_ItemLimitExceeded(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Order: &config.OrderConfig{MaxItemsPerOrder: 1}}

	service := NewOrderService(txManager, orderRepo, publisher, logger, cfg)

	input := &usecase.CreateOrderInput{
		StoreID:   uuid.New(),
		AccountID: uuid.New(),
		Items: []usecase.CartItemInput{
			{ProductID: uuid.New(), Quantity: 1},
			{ProductID: uuid.New(), Quantity: 1},
		},
		DeliveryAddressInput: testDeliveryAddress(),
	}

	order, err := service.CreateOrder(context.Background(), input)
	assert.Nil(t, order)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	order, err := fx.service.GetOrder(ctx, orderID)
	assert.Nil(t, order)
	assert.Equal(t, domainerrors.ErrOrderNotFound, err)
}

func TestOrderService_UpdateOrderStatus_Success(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	existing := &entity.Order{
		ID:        uuid.New(),
		StoreID:   uuid.New(),
		AccountID: uuid.New(),
		Status:    entity.OrderStatusPending,
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, existing.ID).
		Return(existing, nil)

	fx.orderRepo.EXPECT().
		UpdateOrderStatus(ctx, existing).
		Return(nil)

	fx.publisher.EXPECT().
		PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
		Return(nil)

	order, err := fx.service.UpdateOrderStatus(ctx, existing.ID, entity.OrderStatusProcessing)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, order.Status)
}

func TestOrderService_UpdateOrderStatus_InvalidTransition(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	existing := &entity.Order{
		ID:     uuid.New(),
		Status: entity.OrderStatusCompleted,
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, existing.ID).
		Return(existing, nil)

	order, err := fx.service.UpdateOrderStatus(ctx, existing.ID, entity.OrderStatusProcessing)
	assert.Nil(t, order)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "INVALID_STATUS_TRANSITION", appErr.ErrorCode())
	assert.Equal(t, entity.OrderStatusCompleted, existing.Status)
}

func TestOrderService_ReplaceItems_RecomputesTotals(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	storeID := uuid.New()
	product := testProduct(storeID, "Tomate Italiano", "4.00", "0.00")
	existing := &entity.Order{
		ID:          uuid.New(),
		StoreID:     storeID,
		AccountID:   uuid.New(),
		Status:      entity.OrderStatusPending,
		DeliveryFee: decimal.RequireFromString("5.00"),
		Items: []*entity.OrderItem{
			{ProductUUID: uuid.New(), UnitPrice: decimal.RequireFromString("9.00"), Quantity: 1},
		},
	}
	existing.RecalculateTotals()

	input := &usecase.ReplaceOrderItemsInput{
		OrderID: existing.ID,
		Items: []usecase.CartItemInput{
			{ProductID: product.ID, Quantity: 3},
		},
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)
	fx.factory.EXPECT().ProductRepo().Return(fx.productRepo)

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, existing.ID).
		Return(existing, nil)

	fx.productRepo.EXPECT().
		FindActiveProductsByStore(ctx, storeID, []uuid.UUID{product.ID}).
		Return([]*entity.Product{product}, nil)

	fx.orderRepo.EXPECT().
		ReplaceOrderItems(ctx, existing.ID, mock.AnythingOfType("[]*entity.OrderItem")).
		Return(nil)

	fx.orderRepo.EXPECT().
		UpdateOrderTotals(ctx, existing).
		Return(nil)

	order, err := fx.service.ReplaceItems(ctx, input)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, product.ID, order.Items[0].ProductUUID)
	assert.Equal(t, "12.00", order.Subtotal.StringFixed(2))
	assert.Equal(t, "17.00", order.Total.StringFixed(2))
}

func TestOrderService_RecalculateOrder(t *testing.T) {
	fx := createTestOrderService(t)

	ctx := context.Background()
	existing := &entity.Order{
		ID:          uuid.New(),
		Status:      entity.OrderStatusPending,
		DeliveryFee: decimal.RequireFromString("3.00"),
		Items: []*entity.OrderItem{
			{ProductUUID: uuid.New(), UnitPrice: decimal.RequireFromString("2.50"), Quantity: 4},
		},
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().OrderRepo().Return(fx.orderRepo)

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, existing.ID).
		Return(existing, nil)

	fx.orderRepo.EXPECT().
		UpdateOrderTotals(ctx, existing).
		Return(nil)

	order, err := fx.service.RecalculateOrder(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, "10.00", order.Subtotal.StringFixed(2))
	assert.Equal(t, "13.00", order.Total.StringFixed(2))
}
