// Package service defines ports to infrastructure collaborators.
package service

import (
	"context"
)

// Order event types published to downstream consumers (dispatch,
// notifications, analytics).
const (
	OrderEventCreated       = "order_created"
	OrderEventStatusChanged = "order_status_changed"
)

// OrderEvent describes one order lifecycle change.
type OrderEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing
	Type       string `json:"type"`
	OrderID    string `json:"order_id"`
	StoreID    string `json:"store_id"`
	AccountID  string `json:"account_id"`
	Status     string `json:"status"`
	Total      string `json:"total"`
	OccurredAt string `json:"occurred_at"`
	ItemCount  int    `json:"item_count"`
}

// EventPublisher defines the interface for publishing order events to a
// message queue. Publishing is best effort: a failure must never undo a
// committed order.
type EventPublisher interface {
	// PublishOrderEvent publishes an order lifecycle event for async processing.
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
