package postgres

import (
	"context"
	"testing"

	"quitanda/internal/domain/entity"
	"quitanda/internal/domain/repository"
	internalerrors "quitanda/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitPersists(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	owner := entity.AccountOwner(uuid.New())
	address := newStoredAddress(owner, "Home", true)

	err := tm.Execute(ctx, func(repos repository.RepositoryFactory) error {
		return repos.AddressRepo().CreateAddress(ctx, address)
	})
	require.NoError(t, err)

	found, err := NewAddressRepository(db).FindAddressByID(ctx, address.ID)
	require.NoError(t, err)
	assert.Equal(t, "Home", found.Label)
}

func TestTransactionManager_ErrorRollsBackEverything(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	owner := entity.AccountOwner(uuid.New())
	address := newStoredAddress(owner, "Home", true)
	boom := internalerrors.New("late validation failed")

	err := tm.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.AddressRepo().CreateAddress(ctx, address); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	_, err = NewAddressRepository(db).FindAddressByID(ctx, address.ID)
	assert.ErrorIs(t, err, repository.ErrAddressNotFound)
}

func TestTransactionManager_PanicRollsBack(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	owner := entity.AccountOwner(uuid.New())
	address := newStoredAddress(owner, "Home", true)

	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(repos repository.RepositoryFactory) error {
			if err := repos.AddressRepo().CreateAddress(ctx, address); err != nil {
				return err
			}

			panic("unexpected failure")
		})
	})

	_, err := NewAddressRepository(db).FindAddressByID(ctx, address.ID)
	assert.ErrorIs(t, err, repository.ErrAddressNotFound)
}

func TestTransactionManager_FactoryReposShareTransaction(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	owner := entity.AccountOwner(uuid.New())
	address := newStoredAddress(owner, "Home", true)

	err := tm.Execute(ctx, func(repos repository.RepositoryFactory) error {
		if err := repos.AddressRepo().CreateAddress(ctx, address); err != nil {
			return err
		}

		// The uncommitted row is visible to a repo from the same factory.
		found, err := repos.AddressRepo().FindAddressByID(ctx, address.ID)
		if err != nil {
			return err
		}
		assert.Equal(t, address.ID, found.ID)

		return nil
	})
	require.NoError(t, err)
}
