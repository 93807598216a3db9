package entity

import (
	"time"

	"quitanda/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a sellable catalog item. It lives in one primary section
// and may additionally appear in other sections through a SectionLink
// carrying its own display position.
type Product struct {
	ID                 uuid.UUID
	StoreID            uuid.UUID
	SectionID          uuid.UUID
	Name               string
	Description        string
	Price              decimal.Decimal
	DiscountPercentage decimal.Decimal // 0.00 to 100.00
	Position           int
	IsActive           bool
	SectionLinks       []*ProductSection
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Validate checks name, price and discount bounds.
func (p *Product) Validate() error {
	if p.Name == "" {
		return errors.New("product name is required")
	}
	if p.Price.IsNegative() {
		return errors.New("price must not be negative")
	}
	if p.DiscountPercentage.IsNegative() || p.DiscountPercentage.GreaterThan(decimal.NewFromInt(100)) {
		return errors.New("discount percentage must be between 0 and 100")
	}

	return nil
}

// ProductSection links a product into an extra section with a display
// position local to that section.
type ProductSection struct {
	ID        uuid.UUID
	SectionID uuid.UUID
	ProductID uuid.UUID
	Position  int
}
