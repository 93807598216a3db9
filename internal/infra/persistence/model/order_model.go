package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table. The delivery address columns
// are a snapshot taken at order creation; they never follow later edits
// to the owner's address book.
type OrderModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	StoreID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status      string          `gorm:"type:varchar(20);not null;default:'pending';check:status IN ('pending','processing','delivering','completed','canceled')"`
	Notes       string          `gorm:"type:text"`
	DeliveryFee decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Subtotal    decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Total       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`

	ZipCode      string   `gorm:"type:char(8);not null"`
	Street       string   `gorm:"type:varchar(255);not null"`
	Number       string   `gorm:"type:varchar(20);not null"`
	Neighborhood string   `gorm:"type:varchar(100)"`
	Complement   string   `gorm:"type:varchar(255)"`
	Reference    string   `gorm:"type:varchar(255)"`
	City         string   `gorm:"type:varchar(100)"`
	State        string   `gorm:"type:char(2)"`
	Latitude     *float64 `gorm:"type:decimal(8,6)"`
	Longitude    *float64 `gorm:"type:decimal(9,6)"`

	CreatedAt time.Time
	UpdatedAt time.Time

	Items []*OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Product name and unit
// price are copied from the catalog at order time; the unique index
// rejects a second row for the same product within one order.
type OrderItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uidx_order_items_product"`
	ProductUUID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uidx_order_items_product"`
	ProductName string          `gorm:"type:varchar(100);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Quantity    int             `gorm:"not null;check:quantity > 0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
