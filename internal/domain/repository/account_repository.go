package repository

import (
	"context"

	"quitanda/internal/domain/entity"
	"quitanda/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrUserNotFound is returned when a system user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateAccount is returned when CPF or phone collide with an existing account.
	ErrDuplicateAccount = errors.New("account with this cpf or phone already exists")
)

// AccountRepository defines the interface for account-related database operations.
type AccountRepository interface {
	// CreateAccount persists a new account together with its system user.
	CreateAccount(ctx context.Context, account *entity.Account) error

	// FindAccountByID retrieves an account (with its user) by its unique ID.
	FindAccountByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// UpdateAccount updates an existing account record.
	UpdateAccount(ctx context.Context, account *entity.Account) error

	// SaveUser updates the system user linked to an account, used to
	// assert the staff flag when promoting an account to admin.
	SaveUser(ctx context.Context, user *entity.User) error
}
