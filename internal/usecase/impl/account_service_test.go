package impl

import (
	"context"
	"testing"

	"quitanda/internal/domain/entity"
	domainerrors "quitanda/internal/domain/errors"
	"quitanda/internal/domain/repository"
	mockRepo "quitanda/internal/mocks/repository"
	"quitanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service     usecase.AccountUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	accountRepo *mockRepo.MockAccountRepository
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	accountRepo := mockRepo.NewMockAccountRepository(t)

	service := NewAccountService(txManager, accountRepo)

	return accountServiceFixtures{
		service:     service,
		txManager:   txManager,
		factory:     factory,
		accountRepo: accountRepo,
	}
}

func (fx accountServiceFixtures) expectTransaction(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		Return(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		})
}

func TestAccountService_CreateAccount_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.CreateAccountInput{
		Name:  "Maria Silva",
		Email: "maria@example.com",
		CPF:   "39053344705",
		Phone: "5511999998888",
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().AccountRepo().Return(fx.accountRepo)

	fx.accountRepo.EXPECT().
		SaveUser(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = userID
		}).
		Return(nil)

	fx.accountRepo.EXPECT().
		CreateAccount(ctx, mock.AnythingOfType("*entity.Account")).
		Return(nil)

	account, err := fx.service.CreateAccount(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.Equal(t, entity.AccountTypeClient, account.Type)
	assert.Equal(t, userID, account.UserID)
	assert.Equal(t, "39053344705", account.CPF)
	require.NotNil(t, account.User)
	assert.Equal(t, "maria@example.com", account.User.Email)
	assert.False(t, account.User.IsStaff)
}

func TestAccountService_CreateAccount_InvalidCPF(t *testing.T) {
	fx := createTestAccountService(t)

	input := &usecase.CreateAccountInput{
		Name:  "Maria Silva",
		Email: "maria@example.com",
		CPF:   "123",
		Phone: "5511999998888",
	}

	account, err := fx.service.CreateAccount(context.Background(), input)
	assert.Nil(t, account)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestAccountService_CreateAccount_Duplicate(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	input := &usecase.CreateAccountInput{
		Name:  "Maria Silva",
		Email: "maria@example.com",
		CPF:   "39053344705",
		Phone: "5511999998888",
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().AccountRepo().Return(fx.accountRepo)

	fx.accountRepo.EXPECT().
		SaveUser(ctx, mock.AnythingOfType("*entity.User")).
		Return(nil)

	fx.accountRepo.EXPECT().
		CreateAccount(ctx, mock.AnythingOfType("*entity.Account")).
		Return(repository.ErrDuplicateAccount)

	account, err := fx.service.CreateAccount(ctx, input)
	assert.Nil(t, account)
	appErr, ok := err.(domainerrors.AppError)
	require.True(t, ok)
	assert.Equal(t, "CONFLICT", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "already registered")
}

func TestAccountService_GetAccount_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.accountRepo.EXPECT().
		FindAccountByID(ctx, accountID).
		Return(nil, repository.ErrAccountNotFound)

	account, err := fx.service.GetAccount(ctx, accountID)
	assert.Nil(t, account)
	assert.Equal(t, domainerrors.ErrAccountNotFound, err)
}

func TestAccountService_PromoteToAdmin_Success(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Name: "Maria Silva", Email: "maria@example.com"}
	existing := &entity.Account{
		ID:     uuid.New(),
		User:   user,
		UserID: user.ID,
		Type:   entity.AccountTypeClient,
		CPF:    "39053344705",
		Phone:  "5511999998888",
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().AccountRepo().Return(fx.accountRepo)

	fx.accountRepo.EXPECT().
		FindAccountByID(ctx, existing.ID).
		Return(existing, nil)

	// The staff flag is persisted before the type flips, in the same
	// transaction; an admin backed by a non-staff user is unobservable.
	fx.accountRepo.EXPECT().
		SaveUser(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.ID == user.ID && u.IsStaff
		})).
		Return(nil)

	fx.accountRepo.EXPECT().
		UpdateAccount(ctx, mock.MatchedBy(func(a *entity.Account) bool {
			return a.ID == existing.ID && a.Type == entity.AccountTypeAdmin
		})).
		Return(nil)

	account, err := fx.service.PromoteToAdmin(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AccountTypeAdmin, account.Type)
	assert.True(t, account.User.IsStaff)
}

func TestAccountService_PromoteToAdmin_AlreadyAdmin(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	existing := &entity.Account{
		ID:   uuid.New(),
		User: &entity.User{ID: uuid.New(), IsStaff: true},
		Type: entity.AccountTypeAdmin,
	}

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().AccountRepo().Return(fx.accountRepo)

	fx.accountRepo.EXPECT().
		FindAccountByID(ctx, existing.ID).
		Return(existing, nil)

	account, err := fx.service.PromoteToAdmin(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.AccountTypeAdmin, account.Type)
}

func TestAccountService_PromoteToAdmin_NotFound(t *testing.T) {
	fx := createTestAccountService(t)

	ctx := context.Background()
	accountID := uuid.New()

	fx.expectTransaction(ctx)
	fx.factory.EXPECT().AccountRepo().Return(fx.accountRepo)

	fx.accountRepo.EXPECT().
		FindAccountByID(ctx, accountID).
		Return(nil, repository.ErrAccountNotFound)

	account, err := fx.service.PromoteToAdmin(ctx, accountID)
	assert.Nil(t, account)
	assert.Equal(t, domainerrors.ErrAccountNotFound, err)
}
