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

// StoreHandlerParams holds dependencies for StoreHandler, injected by Fx.
type StoreHandlerParams struct {
	fx.In

	StoreUC usecase.StoreUsecase
	Logger  *slog.Logger
}

// StoreHandler holds dependencies for store-related handlers
type StoreHandler struct {
	storeUC usecase.StoreUsecase
	logger  *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler
func NewStoreHandler(params StoreHandlerParams) *StoreHandler {
	return &StoreHandler{
		storeUC: params.StoreUC,
		logger:  params.Logger,
	}
}

// OpeningHoursResponse is one serialized weekday window
type OpeningHoursResponse struct {
	Weekday  int    `json:"weekday"`
	FromHour string `json:"from_hour"`
	ToHour   string `json:"to_hour"`
}

// StoreResponse is the serialized store
type StoreResponse struct {
	UUID          string                 `json:"uuid"`
	OwnerUUID     string                 `json:"owner_uuid"`
	Name          string                 `json:"name"`
	CNPJ          string                 `json:"cnpj"`
	CNPJFormatted string                 `json:"cnpj_formatted"`
	MinOrderValue string                 `json:"min_order_value"`
	DeliveryFee   string                 `json:"delivery_fee"`
	Config        map[string]any         `json:"config,omitempty"`
	OpeningHours  []OpeningHoursResponse `json:"opening_hours,omitempty"`
	Addresses     []AddressResponse      `json:"addresses,omitempty"`
}

// CreateStore handles store registration
func (h *StoreHandler) CreateStore(c echo.Context) error {
	var req usecase.CreateStoreInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	store, err := h.storeUC.CreateStore(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toStoreResponse(store), "Store created successfully")
}

// GetStore handles retrieving one store with opening hours and addresses
func (h *StoreHandler) GetStore(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store UUID")
	}

	store, err := h.storeUC.GetStore(c.Request().Context(), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toStoreResponse(store), "Store retrieved successfully")
}

// ListStores handles listing all stores
func (h *StoreHandler) ListStores(c echo.Context) error {
	stores, err := h.storeUC.ListStores(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	payload := make([]StoreResponse, 0, len(stores))
	for _, store := range stores {
		payload = append(payload, toStoreResponse(store))
	}

	return response.Success(c, http.StatusOK, payload, "Stores retrieved successfully")
}

// GetMenuQR renders the store's menu QR code as a PNG image
func (h *StoreHandler) GetMenuQR(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store UUID")
	}

	png, err := h.storeUC.GenerateMenuQR(c.Request().Context(), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func toStoreResponse(store *entity.Store) StoreResponse {
	resp := StoreResponse{
		UUID:          store.ID.String(),
		OwnerUUID:     store.OwnerID.String(),
		Name:          store.Name,
		CNPJ:          store.CNPJ,
		CNPJFormatted: store.FormatCNPJ(),
		MinOrderValue: store.MinOrderValue.StringFixed(2),
		DeliveryFee:   store.DeliveryFee.StringFixed(2),
		Config:        store.Config,
	}
	for _, hours := range store.OpeningHours {
		resp.OpeningHours = append(resp.OpeningHours, OpeningHoursResponse{
			Weekday:  hours.Weekday,
			FromHour: hours.FromHour,
			ToHour:   hours.ToHour,
		})
	}
	for _, address := range store.Addresses {
		resp.Addresses = append(resp.Addresses, toAddressResponse(address))
	}

	return resp
}
