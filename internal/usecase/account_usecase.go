package usecase

import (
	"context"

	"quitanda/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAccountInput creates a user and its marketplace account together.
type CreateAccountInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	CPF   string `json:"cpf" validate:"required,len=11,numeric"`
	Phone string `json:"phone" validate:"required,len=13,numeric"`
}

// AccountUsecase defines the interface for account management use cases
type AccountUsecase interface {
	// CreateAccount registers a new client account with its system user.
	CreateAccount(ctx context.Context, input *CreateAccountInput) (*entity.Account, error)

	// GetAccount retrieves an account with its user.
	GetAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)

	// PromoteToAdmin flips an account to the admin role. The linked user
	// is marked staff in the same transaction; an admin account with a
	// non-staff user never becomes observable.
	PromoteToAdmin(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
}
