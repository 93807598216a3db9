package entity

import (
	"quitanda/internal/errors"

	"github.com/google/uuid"
)

// ErrEmptyCart is returned when a cart holds no items at all.
var ErrEmptyCart = errors.New("cart must contain at least one item")

// ErrInvalidQuantity is returned when a cart line requests fewer than one unit.
var ErrInvalidQuantity = errors.New("item quantity must be at least 1")

// CartItem is one raw line of an incoming order request. The same
// product may appear on several lines.
type CartItem struct {
	ProductID uuid.UUID
	Quantity  int
}

// CartLine is a merged cart entry: one per distinct product, quantities
// summed across all occurrences.
type CartLine struct {
	ProductID uuid.UUID
	Quantity  int
}

// NormalizeCart merges duplicate product references, summing their
// quantities. The merged lines keep the order in which each product
// first appeared, so downstream order-item creation is deterministic.
func NormalizeCart(items []CartItem) ([]CartLine, error) {
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	index := make(map[uuid.UUID]int, len(items))
	lines := make([]CartLine, 0, len(items))
	for _, item := range items {
		if item.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}

		if at, seen := index[item.ProductID]; seen {
			lines[at].Quantity += item.Quantity

			continue
		}

		index[item.ProductID] = len(lines)
		lines = append(lines, CartLine(item))
	}

	return lines, nil
}
