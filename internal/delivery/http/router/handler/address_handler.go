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

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressUsecase
	Logger    *slog.Logger
}

// AddressHandler holds dependencies for address-related handlers
type AddressHandler struct {
	addressUC usecase.AddressUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// AddressResponse is the serialized address
type AddressResponse struct {
	UUID             string   `json:"uuid"`
	OwnerType        string   `json:"owner_type"`
	OwnerUUID        string   `json:"owner_uuid"`
	Label            string   `json:"label,omitempty"`
	ZipCode          string   `json:"zip_code"`
	ZipCodeFormatted string   `json:"zip_code_formatted"`
	Street           string   `json:"street"`
	Number           string   `json:"number"`
	Neighborhood     string   `json:"neighborhood,omitempty"`
	Complement       string   `json:"complement,omitempty"`
	Reference        string   `json:"reference,omitempty"`
	City             string   `json:"city,omitempty"`
	State            string   `json:"state,omitempty"`
	Latitude         *float64 `json:"latitude,omitempty"`
	Longitude        *float64 `json:"longitude,omitempty"`
	IsDefault        bool     `json:"is_default"`
}

// SaveAddress handles address creation and updates, keeping the single
// default per owner scope.
func (h *AddressHandler) SaveAddress(c echo.Context) error {
	var req usecase.SaveAddressInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	owner, err := ownerFromInput(&req)
	if err != nil {
		return response.BadRequest(c, "INVALID_OWNER", err.Error())
	}

	address, err := h.addressUC.SaveAddress(c.Request().Context(), owner, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusCreated
	if req.ID != nil {
		status = http.StatusOK
	}

	return response.Success(c, status, toAddressResponse(address), "Address saved successfully")
}

// ListAddresses handles listing an owner's addresses, default first
func (h *AddressHandler) ListAddresses(c echo.Context) error {
	owner, err := ownerFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_OWNER", err.Error())
	}

	addresses, err := h.addressUC.ListAddresses(c.Request().Context(), owner)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	payload := make([]AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		payload = append(payload, toAddressResponse(address))
	}

	return response.Success(c, http.StatusOK, payload, "Addresses retrieved successfully")
}

// GetAddress handles retrieving one address
func (h *AddressHandler) GetAddress(c echo.Context) error {
	addressID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address UUID")
	}

	address, err := h.addressUC.GetAddress(c.Request().Context(), addressID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAddressResponse(address), "Address retrieved successfully")
}

// DeleteAddress handles address removal
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	addressID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address UUID")
	}

	if err := h.addressUC.DeleteAddress(c.Request().Context(), addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Address deleted successfully")
}

// ownerFromInput maps the account/store UUID pair of a payload onto the
// owner tag, rejecting both-set and neither-set.
func ownerFromInput(input *usecase.SaveAddressInput) (entity.AddressOwner, error) {
	switch {
	case input.AccountID != nil && input.StoreID != nil:
		return entity.AddressOwner{}, echo.NewHTTPError(http.StatusBadRequest, "address cannot belong to both an account and a store")
	case input.AccountID != nil:
		return entity.AccountOwner(*input.AccountID), nil
	case input.StoreID != nil:
		return entity.StoreOwner(*input.StoreID), nil
	default:
		return entity.AddressOwner{}, echo.NewHTTPError(http.StatusBadRequest, "either account_uuid or store_uuid is required")
	}
}

// ownerFromQuery resolves the owner scope from list query parameters.
func ownerFromQuery(c echo.Context) (entity.AddressOwner, error) {
	accountParam := c.QueryParam("account_uuid")
	storeParam := c.QueryParam("store_uuid")

	switch {
	case accountParam != "" && storeParam != "":
		return entity.AddressOwner{}, echo.NewHTTPError(http.StatusBadRequest, "provide either account_uuid or store_uuid, not both")
	case accountParam != "":
		accountID, err := uuid.Parse(accountParam)
		if err != nil {
			return entity.AddressOwner{}, echo.NewHTTPError(http.StatusBadRequest, "invalid account_uuid")
		}

		return entity.AccountOwner(accountID), nil
	case storeParam != "":
		storeID, err := uuid.Parse(storeParam)
		if err != nil {
			return entity.AddressOwner{}, echo.NewHTTPError(http.StatusBadRequest, "invalid store_uuid")
		}

		return entity.StoreOwner(storeID), nil
	default:
		return entity.AddressOwner{}, echo.NewHTTPError(http.StatusBadRequest, "either account_uuid or store_uuid is required")
	}
}

func toAddressResponse(address *entity.Address) AddressResponse {
	return AddressResponse{
		UUID:             address.ID.String(),
		OwnerType:        address.Owner.Kind().String(),
		OwnerUUID:        address.Owner.ID().String(),
		Label:            address.Label,
		ZipCode:          address.ZipCode,
		ZipCodeFormatted: address.FormatZipCode(),
		Street:           address.Street,
		Number:           address.Number,
		Neighborhood:     address.Neighborhood,
		Complement:       address.Complement,
		Reference:        address.Reference,
		City:             address.City,
		State:            address.State,
		Latitude:         address.Latitude,
		Longitude:        address.Longitude,
		IsDefault:        address.IsDefault,
	}
}
