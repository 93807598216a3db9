package entity

import (
	"time"

	"quitanda/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusDelivering OrderStatus = "delivering"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCanceled   OrderStatus = "canceled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusDelivering,
		OrderStatusCompleted, OrderStatusCanceled:
		return true
	default:
		return false
	}
}

// orderTransitions is the allowed status graph: pending → processing →
// delivering → completed, with cancellation only before delivery starts.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusProcessing, OrderStatusCanceled},
	OrderStatusProcessing: {OrderStatusDelivering, OrderStatusCanceled},
	OrderStatusDelivering: {OrderStatusCompleted},
}

// CanTransitionTo reports whether the status may move to next.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// DeliveryAddress is the address snapshot denormalized onto an order at
// creation time, intentionally decoupled from the live Address rows.
type DeliveryAddress struct {
	ZipCode      string
	Street       string
	Number       string
	Neighborhood string
	Complement   string
	Reference    string
	City         string
	State        string
	Latitude     *float64
	Longitude    *float64
}

// Validate checks the mandatory snapshot fields: zip code, street and number.
func (d *DeliveryAddress) Validate() error {
	if d.ZipCode == "" || d.Street == "" || d.Number == "" {
		return errors.New("delivery address fields are required")
	}

	return nil
}

// Order is an immutable purchase snapshot: the items, their prices and
// the delivery address as they were at creation time. Subtotal and Total
// are derived from the items and kept consistent via RecalculateTotals.
type Order struct {
	ID          uuid.UUID
	StoreID     uuid.UUID
	AccountID   uuid.UUID
	Status      OrderStatus
	Notes       string
	DeliveryFee decimal.Decimal
	Subtotal    decimal.Decimal
	Total       decimal.Decimal
	Address     DeliveryAddress
	Items       []*OrderItem
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// OrderItem is one line of an order. Product UUID, name and unit price
// are snapshotted from the catalog at order time; a product appears at
// most once per order (quantities are pre-merged).
type OrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductUUID uuid.UUID
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LineTotal is unit_price × quantity for this item.
func (i *OrderItem) LineTotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// RecalculateTotals recomputes Subtotal as the sum of each item's line
// total (zero when there are no items) and Total as Subtotal plus the
// delivery fee. It is invoked during order assembly and again after any
// administrative item edit; repeated calls over an unchanged item set
// are idempotent.
func (o *Order) RecalculateTotals() {
	subtotal := decimal.Zero
	for _, item := range o.Items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	o.Subtotal = subtotal
	o.Total = subtotal.Add(o.DeliveryFee)
}

// TransitionTo moves the order to the next status, enforcing the
// lifecycle graph.
func (o *Order) TransitionTo(next OrderStatus) error {
	if !next.IsValid() {
		return errors.Errorf("unknown order status: %s", next)
	}
	if !o.Status.CanTransitionTo(next) {
		return errors.Errorf("cannot transition order from %s to %s", o.Status, next)
	}
	o.Status = next

	return nil
}
