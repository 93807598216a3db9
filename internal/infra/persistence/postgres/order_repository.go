package postgres

import (
	"context"

	"quitanda/internal/domain/entity"
	domainerrors "quitanda/internal/domain/errors"
	"quitanda/internal/domain/repository"
	"quitanda/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists a new order together with its items.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrderItem
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid store or account reference")
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid order data")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, itemM := range orderM.Items {
		if i < len(order.Items) {
			order.Items[i].ID = itemM.ID
			order.Items[i].OrderID = itemM.OrderID
			order.Items[i].CreatedAt = itemM.CreatedAt
			order.Items[i].UpdatedAt = itemM.UpdatedAt
		}
	}

	return nil
}

// FindOrderByID retrieves an order by its unique ID, with its items.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_items.created_at ASC")
		}).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindOrdersByAccount retrieves all orders placed by an account, newest first.
func (repo *orderRepository) FindOrdersByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by account")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// UpdateOrderTotals persists the recomputed subtotal and total of an order.
func (repo *orderRepository) UpdateOrderTotals(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"subtotal": order.Subtotal,
			"total":    order.Total,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order totals")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// UpdateOrderStatus persists the order's current status.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Update("status", string(order.Status))

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidStatusTransition
		}

		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// ReplaceOrderItems deletes the order's current items and inserts the
// given set in their place. Runs inside the caller's transaction so a
// failed insert leaves the previous items intact.
func (repo *orderRepository) ReplaceOrderItems(ctx context.Context, orderID uuid.UUID, items []*entity.OrderItem) error {
	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&model.OrderItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete order items")
	}

	if len(items) == 0 {
		return nil
	}

	itemModels := make([]*model.OrderItemModel, 0, len(items))
	for _, item := range items {
		itemM := fromOrderItemDomain(item)
		itemM.OrderID = orderID
		itemModels = append(itemModels, itemM)
	}

	if err := repo.db.WithContext(ctx).Create(&itemModels).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateOrderItem
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert order items")
	}

	for i, itemM := range itemModels {
		items[i].ID = itemM.ID
		items[i].OrderID = itemM.OrderID
		items[i].CreatedAt = itemM.CreatedAt
		items[i].UpdatedAt = itemM.UpdatedAt
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]*entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		items = append(items, toOrderItemDomain(itemM))
	}

	return &entity.Order{
		ID:          data.ID,
		StoreID:     data.StoreID,
		AccountID:   data.AccountID,
		Status:      entity.OrderStatus(data.Status),
		Notes:       data.Notes,
		DeliveryFee: data.DeliveryFee,
		Subtotal:    data.Subtotal,
		Total:       data.Total,
		Address: entity.DeliveryAddress{
			ZipCode:      data.ZipCode,
			Street:       data.Street,
			Number:       data.Number,
			Neighborhood: data.Neighborhood,
			Complement:   data.Complement,
			Reference:    data.Reference,
			City:         data.City,
			State:        data.State,
			Latitude:     data.Latitude,
			Longitude:    data.Longitude,
		},
		Items:     items,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	items := make([]*model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, fromOrderItemDomain(item))
	}

	return &model.OrderModel{
		ID:           data.ID,
		StoreID:      data.StoreID,
		AccountID:    data.AccountID,
		Status:       string(data.Status),
		Notes:        data.Notes,
		DeliveryFee:  data.DeliveryFee,
		Subtotal:     data.Subtotal,
		Total:        data.Total,
		ZipCode:      data.Address.ZipCode,
		Street:       data.Address.Street,
		Number:       data.Address.Number,
		Neighborhood: data.Address.Neighborhood,
		Complement:   data.Address.Complement,
		Reference:    data.Address.Reference,
		City:         data.Address.City,
		State:        data.Address.State,
		Latitude:     data.Address.Latitude,
		Longitude:    data.Address.Longitude,
		Items:        items,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	return &entity.OrderItem{
		ID:          data.ID,
		OrderID:     data.OrderID,
		ProductUUID: data.ProductUUID,
		ProductName: data.ProductName,
		UnitPrice:   data.UnitPrice,
		Quantity:    data.Quantity,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromOrderItemDomain(data *entity.OrderItem) *model.OrderItemModel {
	if data == nil {
		return nil
	}

	return &model.OrderItemModel{
		ID:          data.ID,
		OrderID:     data.OrderID,
		ProductUUID: data.ProductUUID,
		ProductName: data.ProductName,
		UnitPrice:   data.UnitPrice,
		Quantity:    data.Quantity,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
