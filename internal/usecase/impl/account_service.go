package impl

import (
	"context"

	"quitanda/internal/domain/entity"
	domainerrors "quitanda/internal/domain/errors"
	"quitanda/internal/domain/repository"
	"quitanda/internal/errors"
	"quitanda/internal/usecase"

	"github.com/google/uuid"
)

type accountService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
}

// NewAccountService creates a new account service instance
func NewAccountService(
	txManager repository.TransactionManager,
	accountRepo repository.AccountRepository,
) usecase.AccountUsecase {
	return &accountService{
		txManager:   txManager,
		accountRepo: accountRepo,
	}
}

// CreateAccount registers a new client account together with its system
// user, atomically.
func (s *accountService) CreateAccount(ctx context.Context, input *usecase.CreateAccountInput) (*entity.Account, error) {
	user := &entity.User{
		Name:  input.Name,
		Email: input.Email,
	}
	account := &entity.Account{
		User:  user,
		Type:  entity.AccountTypeClient,
		CPF:   input.CPF,
		Phone: input.Phone,
	}
	if err := account.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		repo := repos.AccountRepo()

		if err := repo.SaveUser(ctx, user); err != nil {
			return err
		}

		account.UserID = user.ID

		return repo.CreateAccount(ctx, account)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateAccount) {
			return nil, domainerrors.ErrConflict.WithDetails("email, CPF or phone already registered")
		}

		return nil, err
	}

	return account, nil
}

// GetAccount retrieves an account with its user.
func (s *accountService) GetAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound
		}

		return nil, err
	}

	return account, nil
}

// PromoteToAdmin flips an account to the admin role and marks its user
// staff in the same transaction. An admin account whose user is not
// staff can never be observed.
func (s *accountService) PromoteToAdmin(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	var account *entity.Account

	err := s.txManager.Execute(ctx, func(repos repository.RepositoryFactory) error {
		repo := repos.AccountRepo()

		found, err := repo.FindAccountByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound
			}

			return err
		}

		if found.Type == entity.AccountTypeAdmin {
			account = found

			return nil
		}

		if found.User == nil {
			return domainerrors.ErrInternalError.WithDetails("account has no linked user")
		}

		found.User.IsStaff = true
		if err := repo.SaveUser(ctx, found.User); err != nil {
			return err
		}

		found.Type = entity.AccountTypeAdmin
		if err := repo.UpdateAccount(ctx, found); err != nil {
			return err
		}

		account = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}
