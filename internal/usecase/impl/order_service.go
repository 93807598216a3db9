package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"quitanda/config"
	deliverycontext "quitanda/internal/delivery/context"
	"quitanda/internal/domain/entity"
	domainerrors "quitanda/internal/domain/errors"
	"quitanda/internal/domain/pricing"
	"quitanda/internal/domain/repository"
	"quitanda/internal/domain/service"
	"quitanda/internal/errors"
	"quitanda/internal/usecase"

	"github.com/google/uuid"
)

type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	publisher service.EventPublisher
	logger    *slog.Logger
	maxItems  int
}

// NewOrderService creates a new order service instance
func NewOrderService(
	txManager repository.TransactionManager,
	orderRepo repository.OrderRepository,
	publisher service.EventPublisher,
	logger *slog.Logger,
	cfg *config.Config,
) usecase.OrderUsecase {
	maxItems := 0
	if cfg != nil && cfg.Order != nil {
		maxItems = cfg.Order.MaxItemsPerOrder
	}

	return &orderService{
		txManager: txManager,
		orderRepo: orderRepo,
		publisher: publisher,
		logger:    logger,
		maxItems:  maxItems,
	}
}

// CreateOrder assembles a new order inside one transaction. Any failure,
// including the minimum-order-value check that runs after the order and
// its items exist, rolls the whole thing back.
func (s *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	lines, err := s.normalizeCart(input.Items)
	if err != nil {
		return nil, err
	}

	address := entity.DeliveryAddress{
		ZipCode:      input.ZipCode,
		Street:       input.Street,
		Number:       input.Number,
		Neighborhood: input.Neighborhood,
		Complement:   input.Complement,
		Reference:    input.Reference,
		City:         input.City,
		State:        input.State,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
	}
	if err := address.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	var order *entity.Order

	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		store, err := repos.StoreRepo().FindStoreByID(ctx, input.StoreID)
		if err != nil {
			if errors.Is(err, repository.ErrStoreNotFound) {
				return domainerrors.ErrStoreNotFound
			}

			return err
		}

		account, err := repos.AccountRepo().FindAccountByID(ctx, input.AccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return err
		}

		products, err := s.resolveProducts(ctx, repos, store.ID, lines)
		if err != nil {
			return err
		}

		order = &entity.Order{
			StoreID:     store.ID,
			AccountID:   account.ID,
			Status:      entity.OrderStatusPending,
			Notes:       input.Notes,
			DeliveryFee: store.DeliveryFee,
			Address:     address,
		}
		for _, line := range lines {
			product := products[line.ProductID]
			order.Items = append(order.Items, &entity.OrderItem{
				ProductUUID: product.ID,
				ProductName: product.Name,
				UnitPrice:   pricing.EffectiveUnitPrice(product.Price, product.DiscountPercentage),
				Quantity:    line.Quantity,
			})
		}
		order.RecalculateTotals()

		if err := repos.OrderRepo().CreateOrder(ctx, order); err != nil {
			return err
		}

		// The minimum check intentionally runs after the order row and its
		// items exist, so a violation exercises the rollback path and no
		// partial order can leak out of a bug in either branch.
		if order.Subtotal.LessThan(store.MinOrderValue) {
			return domainerrors.ErrBelowMinimumOrderValue.WithDetails(
				"subtotal " + order.Subtotal.StringFixed(2) + " is below the minimum " + store.MinOrderValue.StringFixed(2),
			)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, service.OrderEventCreated, order)

	return order, nil
}

// GetOrder retrieves one order with its items.
func (s *orderService) GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, err
	}

	return order, nil
}

// ListOrdersByAccount retrieves an account's orders, newest first.
func (s *orderService) ListOrdersByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Order, error) {
	return s.orderRepo.FindOrdersByAccount(ctx, accountID)
}

// UpdateOrderStatus advances an order along its lifecycle.
func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, next entity.OrderStatus) (*entity.Order, error) {
	var order *entity.Order

	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		found, err := repos.OrderRepo().FindOrderByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return err
		}

		if err := found.TransitionTo(next); err != nil {
			return domainerrors.ErrInvalidStatusTransition.WithDetails(err.Error())
		}

		if err := repos.OrderRepo().UpdateOrderStatus(ctx, found); err != nil {
			return err
		}

		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishEvent(ctx, service.OrderEventStatusChanged, order)

	return order, nil
}

// ReplaceItems swaps an order's items for a new set and recomputes its
// totals, all inside one transaction.
func (s *orderService) ReplaceItems(ctx context.Context, input *usecase.ReplaceOrderItemsInput) (*entity.Order, error) {
	lines, err := s.normalizeCart(input.Items)
	if err != nil {
		return nil, err
	}

	var order *entity.Order

	err = s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		found, err := repos.OrderRepo().FindOrderByID(ctx, input.OrderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return err
		}

		products, err := s.resolveProducts(ctx, repos, found.StoreID, lines)
		if err != nil {
			return err
		}

		items := make([]*entity.OrderItem, 0, len(lines))
		for _, line := range lines {
			product := products[line.ProductID]
			items = append(items, &entity.OrderItem{
				OrderID:     found.ID,
				ProductUUID: product.ID,
				ProductName: product.Name,
				UnitPrice:   pricing.EffectiveUnitPrice(product.Price, product.DiscountPercentage),
				Quantity:    line.Quantity,
			})
		}

		if err := repos.OrderRepo().ReplaceOrderItems(ctx, found.ID, items); err != nil {
			return err
		}

		found.Items = items
		found.RecalculateTotals()

		if err := repos.OrderRepo().UpdateOrderTotals(ctx, found); err != nil {
			return err
		}

		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// RecalculateOrder recomputes and persists an order's totals from its
// current items.
func (s *orderService) RecalculateOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	var order *entity.Order

	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		found, err := repos.OrderRepo().FindOrderByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return err
		}

		found.RecalculateTotals()

		if err := repos.OrderRepo().UpdateOrderTotals(ctx, found); err != nil {
			return err
		}

		order = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

// normalizeCart merges duplicate lines and enforces the per-order item cap.
func (s *orderService) normalizeCart(items []usecase.CartItemInput) ([]entity.CartLine, error) {
	cart := make([]entity.CartItem, 0, len(items))
	for _, item := range items {
		cart = append(cart, entity.CartItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	lines, err := entity.NormalizeCart(cart)
	if err != nil {
		if errors.Is(err, entity.ErrEmptyCart) {
			return nil, domainerrors.ErrEmptyCart
		}

		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	if s.maxItems > 0 && len(lines) > s.maxItems {
		return nil, domainerrors.ErrValidationFailed.WithDetails("order exceeds the item limit")
	}

	return lines, nil
}

// resolveProducts loads the active products the merged lines reference,
// scoped to the store. Every unknown or inactive UUID is reported in a
// single error.
func (s *orderService) resolveProducts(
	ctx context.Context,
	repos repository.RepositoryFactory,
	storeID uuid.UUID,
	lines []entity.CartLine,
) (map[uuid.UUID]*entity.Product, error) {
	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	products, err := repos.ProductRepo().FindActiveProductsByStore(ctx, storeID, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	var missing []string
	for _, line := range lines {
		if _, ok := byID[line.ProductID]; !ok {
			missing = append(missing, line.ProductID.String())
		}
	}
	if len(missing) > 0 {
		return nil, domainerrors.ErrProductsUnavailable.WithDetails(
			"Products not found or inactive: " + strings.Join(missing, ", "),
		)
	}

	return byID, nil
}

// publishEvent emits an order lifecycle event after the transaction has
// committed. Publishing is best effort; failures are logged and dropped.
func (s *orderService) publishEvent(ctx context.Context, eventType string, order *entity.Order) {
	if s.publisher == nil || order == nil {
		return
	}

	event := &service.OrderEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Type:       eventType,
		OrderID:    order.ID.String(),
		StoreID:    order.StoreID.String(),
		AccountID:  order.AccountID.String(),
		Status:     string(order.Status),
		Total:      order.Total.StringFixed(2),
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
		ItemCount:  len(order.Items),
	}

	if err := s.publisher.PublishOrderEvent(ctx, event); err != nil {
		logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)
		logger.Warn("failed to publish order event",
			slog.String("type", eventType),
			slog.String("order_id", event.OrderID),
			slog.String("error", err.Error()),
		)
	}
}
