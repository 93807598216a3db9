package repository

import (
	"context"

	"quitanda/internal/domain/entity"
	"quitanda/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrderItem is returned when the unique (order, product_uuid)
	// constraint is violated.
	ErrDuplicateOrderItem = errors.New("product already present in this order")
)

// OrderRepository defines the interface for order-related database operations.
type OrderRepository interface {
	// CreateOrder persists a new order together with all of its items.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order with its items by its unique ID.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrdersByAccount retrieves an account's orders, newest first,
	// items included.
	FindOrdersByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Order, error)

	// UpdateOrderTotals persists the order's subtotal and total fields.
	UpdateOrderTotals(ctx context.Context, order *entity.Order) error

	// UpdateOrderStatus persists the order's status field.
	UpdateOrderStatus(ctx context.Context, order *entity.Order) error

	// ReplaceOrderItems swaps the order's item set for the given one,
	// used by administrative item edits before a total recompute.
	ReplaceOrderItems(ctx context.Context, orderID uuid.UUID, items []*entity.OrderItem) error
}
