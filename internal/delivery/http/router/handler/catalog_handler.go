package handler

import (
	"log/slog"
	"net/http"

	"quitanda/internal/delivery/http/response"
	"quitanda/internal/domain/entity"
	"quitanda/internal/domain/pricing"
	"quitanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CatalogHandler holds dependencies for catalog-related handlers
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ProductResponse is the serialized product with its effective price
type ProductResponse struct {
	UUID               string `json:"uuid"`
	Name               string `json:"name"`
	Description        string `json:"description,omitempty"`
	Price              string `json:"price"`
	DiscountPercentage string `json:"discount_percentage"`
	EffectivePrice     string `json:"effective_price"`
	Position           int    `json:"position"`
	IsActive           bool   `json:"is_active"`
}

// SectionResponse is the serialized section with its ordered products
type SectionResponse struct {
	UUID            string            `json:"uuid"`
	Title           string            `json:"title"`
	Type            string            `json:"type"`
	Position        int               `json:"position"`
	MinProducts     int               `json:"min_products"`
	MaxProducts     int               `json:"max_products"`
	IsActive        bool              `json:"is_active"`
	IsRequired      bool              `json:"is_required"`
	IsHighlighted   bool              `json:"is_highlighted"`
	Form            string            `json:"form"`
	TextboxHelpText string            `json:"textbox_help_text,omitempty"`
	Products        []ProductResponse `json:"products"`
}

// CreateSection handles section creation
func (h *CatalogHandler) CreateSection(c echo.Context) error {
	var req usecase.CreateSectionInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid section input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	section, err := h.catalogUC.CreateSection(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toSectionResponse(section), "Section created successfully")
}

// CreateProduct handles product creation
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var req usecase.CreateProductInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	product, err := h.catalogUC.CreateProduct(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toProductResponse(product), "Product created successfully")
}

// GetCatalog handles retrieving a store's sections with ordered products
func (h *CatalogHandler) GetCatalog(c echo.Context) error {
	storeID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid store UUID")
	}

	sections, err := h.catalogUC.GetCatalog(c.Request().Context(), storeID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	payload := make([]SectionResponse, 0, len(sections))
	for _, section := range sections {
		payload = append(payload, toSectionResponse(section))
	}

	return response.Success(c, http.StatusOK, payload, "Catalog retrieved successfully")
}

func toProductResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		UUID:               product.ID.String(),
		Name:               product.Name,
		Description:        product.Description,
		Price:              product.Price.StringFixed(2),
		DiscountPercentage: product.DiscountPercentage.StringFixed(2),
		EffectivePrice:     pricing.EffectiveUnitPrice(product.Price, product.DiscountPercentage).StringFixed(2),
		Position:           product.Position,
		IsActive:           product.IsActive,
	}
}

func toSectionResponse(section *entity.Section) SectionResponse {
	products := make([]ProductResponse, 0, len(section.Products))
	for _, product := range section.Products {
		products = append(products, toProductResponse(product))
	}

	return SectionResponse{
		UUID:            section.ID.String(),
		Title:           section.Title,
		Type:            string(section.Type),
		Position:        section.Position,
		MinProducts:     section.MinProducts,
		MaxProducts:     section.MaxProducts,
		IsActive:        section.IsActive,
		IsRequired:      section.IsRequired,
		IsHighlighted:   section.IsHighlighted,
		Form:            string(section.Form),
		TextboxHelpText: section.TextboxHelpText,
		Products:        products,
	}
}
