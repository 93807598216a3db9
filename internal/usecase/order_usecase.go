package usecase

import (
	"context"

	"quitanda/internal/domain/entity"

	"github.com/google/uuid"
)

// CartItemInput is one requested order line as submitted by the client.
// Duplicate product IDs are allowed; they are merged before pricing.
type CartItemInput struct {
	ProductID uuid.UUID `json:"product_uuid" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gte=1"`
}

// DeliveryAddressInput carries the address snapshot for a new order. It
// is embedded in CreateOrderInput so the address fields bind at the top
// level of the payload, alongside store_uuid and items.
type DeliveryAddressInput struct {
	ZipCode      string   `json:"zip_code" validate:"required,len=8,numeric"`
	Street       string   `json:"street" validate:"required"`
	Number       string   `json:"number" validate:"required"`
	Neighborhood string   `json:"neighborhood"`
	Complement   string   `json:"complement"`
	Reference    string   `json:"reference"`
	City         string   `json:"city" validate:"required"`
	State        string   `json:"state" validate:"required,len=2"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
}

// CreateOrderInput is the full payload for assembling a new order.
type CreateOrderInput struct {
	StoreID   uuid.UUID       `json:"store_uuid" validate:"required"`
	AccountID uuid.UUID       `json:"account_uuid" validate:"required"`
	Items     []CartItemInput `json:"items" validate:"omitempty,dive"`
	Notes     string          `json:"notes"`

	DeliveryAddressInput
}

// ReplaceOrderItemsInput is the administrative payload that swaps an
// order's items for a new set and recomputes its totals.
type ReplaceOrderItemsInput struct {
	OrderID uuid.UUID       `json:"-"`
	Items   []CartItemInput `json:"items" validate:"omitempty,dive"`
}

// OrderUsecase defines the interface for order management use cases
type OrderUsecase interface {
	// CreateOrder assembles and persists a new order atomically: cart
	// normalization, batch product validation, pricing, address snapshot
	// and minimum-order-value enforcement all succeed or nothing is kept.
	CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.Order, error)

	// GetOrder retrieves one order with its items.
	GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// ListOrdersByAccount retrieves an account's orders, newest first.
	ListOrdersByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Order, error)

	// UpdateOrderStatus advances an order along its lifecycle. Illegal
	// transitions are rejected without touching the row.
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, next entity.OrderStatus) (*entity.Order, error)

	// ReplaceItems swaps an order's items and recomputes its totals in
	// one transaction.
	ReplaceItems(ctx context.Context, input *ReplaceOrderItemsInput) (*entity.Order, error)

	// RecalculateOrder recomputes and persists an order's subtotal and
	// total from its current items.
	RecalculateOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)
}
