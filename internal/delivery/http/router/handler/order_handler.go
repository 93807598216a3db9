package handler

import (
	"log/slog"
	"net/http"

	"quitanda/internal/delivery/http/response"
	"quitanda/internal/domain/entity"
	"quitanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler holds dependencies for order-related handlers
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// UpdateOrderStatusRequest represents the request body for a status transition
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing delivering completed canceled"`
}

// OrderItemResponse is one serialized order line
type OrderItemResponse struct {
	UUID        string `json:"uuid"`
	ProductUUID string `json:"product_uuid"`
	ProductName string `json:"product_name"`
	UnitPrice   string `json:"unit_price"`
	Quantity    int    `json:"quantity"`
	LineTotal   string `json:"line_total"`
}

// OrderResponse is the serialized order with nested items
type OrderResponse struct {
	UUID        string               `json:"uuid"`
	StoreUUID   string               `json:"store_uuid"`
	AccountUUID string               `json:"account_uuid"`
	Status      string               `json:"status"`
	Notes       string               `json:"notes,omitempty"`
	DeliveryFee string               `json:"delivery_fee"`
	Subtotal    string               `json:"subtotal"`
	Total       string               `json:"total"`
	Address     OrderAddressResponse `json:"address"`
	Items       []OrderItemResponse  `json:"items"`
	CreatedAt   string               `json:"created_at"`
}

// OrderAddressResponse is the serialized delivery address snapshot
type OrderAddressResponse struct {
	ZipCode      string   `json:"zip_code"`
	Street       string   `json:"street"`
	Number       string   `json:"number"`
	Neighborhood string   `json:"neighborhood,omitempty"`
	Complement   string   `json:"complement,omitempty"`
	Reference    string   `json:"reference,omitempty"`
	City         string   `json:"city,omitempty"`
	State        string   `json:"state,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
}

// CreateOrder handles order creation
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	var req usecase.CreateOrderInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.CreateOrder(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toOrderResponse(order), "Order created successfully")
}

// GetOrder handles retrieving one order
func (h *OrderHandler) GetOrder(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order UUID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "Order retrieved successfully")
}

// ListOrders handles listing an account's orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	accountID, err := uuid.Parse(c.QueryParam("account_uuid"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account UUID")
	}

	orders, err := h.orderUC.ListOrdersByAccount(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	payload := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		payload = append(payload, toOrderResponse(order))
	}

	return response.Success(c, http.StatusOK, payload, "Orders retrieved successfully")
}

// UpdateStatus handles order lifecycle transitions
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order UUID")
	}

	var req UpdateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), orderID, entity.OrderStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "Order status updated successfully")
}

// ReplaceItems handles the administrative item swap with recompute
func (h *OrderHandler) ReplaceItems(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order UUID")
	}

	var req usecase.ReplaceOrderItemsInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid items input")
	}
	req.OrderID = orderID

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	order, err := h.orderUC.ReplaceItems(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOrderResponse(order), "Order items replaced successfully")
}

// toOrderResponse serializes an order with two-decimal money strings.
func toOrderResponse(order *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			UUID:        item.ID.String(),
			ProductUUID: item.ProductUUID.String(),
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice.StringFixed(2),
			Quantity:    item.Quantity,
			LineTotal:   item.LineTotal().StringFixed(2),
		})
	}

	return OrderResponse{
		UUID:        order.ID.String(),
		StoreUUID:   order.StoreID.String(),
		AccountUUID: order.AccountID.String(),
		Status:      string(order.Status),
		Notes:       order.Notes,
		DeliveryFee: order.DeliveryFee.StringFixed(2),
		Subtotal:    order.Subtotal.StringFixed(2),
		Total:       order.Total.StringFixed(2),
		Address: OrderAddressResponse{
			ZipCode:      order.Address.ZipCode,
			Street:       order.Address.Street,
			Number:       order.Address.Number,
			Neighborhood: order.Address.Neighborhood,
			Complement:   order.Address.Complement,
			Reference:    order.Address.Reference,
			City:         order.Address.City,
			State:        order.Address.State,
			Latitude:     order.Address.Latitude,
			Longitude:    order.Address.Longitude,
		},
		Items:     items,
		CreatedAt: order.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
}
