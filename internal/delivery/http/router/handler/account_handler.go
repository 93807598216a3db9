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

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler holds dependencies for account-related handlers
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// AccountResponse is the serialized account with its user identity
type AccountResponse struct {
	UUID         string `json:"uuid"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Type         string `json:"type"`
	CPF          string `json:"cpf"`
	CPFFormatted string `json:"cpf_formatted"`
	Phone        string `json:"phone"`
	IsStaff      bool   `json:"is_staff"`
}

// CreateAccount handles client account registration
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req usecase.CreateAccountInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	account, err := h.accountUC.CreateAccount(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toAccountResponse(account), "Account created successfully")
}

// GetAccount handles retrieving one account
func (h *AccountHandler) GetAccount(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account UUID")
	}

	account, err := h.accountUC.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account), "Account retrieved successfully")
}

// PromoteToAdmin handles the explicit admin promotion
func (h *AccountHandler) PromoteToAdmin(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("uuid"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid account UUID")
	}

	account, err := h.accountUC.PromoteToAdmin(c.Request().Context(), accountID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account), "Account promoted successfully")
}

func toAccountResponse(account *entity.Account) AccountResponse {
	resp := AccountResponse{
		UUID:         account.ID.String(),
		Type:         string(account.Type),
		CPF:          account.CPF,
		CPFFormatted: account.FormatCPF(),
		Phone:        account.Phone,
	}
	if account.User != nil {
		resp.Name = account.User.Name
		resp.Email = account.User.Email
		resp.IsStaff = account.User.IsStaff
	}

	return resp
}
