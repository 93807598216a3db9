package postgres

import (
	"context"
	"testing"

	"quitanda/internal/domain/entity"
	"quitanda/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredAddress(owner entity.AddressOwner, label string, isDefault bool) *entity.Address {
	return &entity.Address{
		ID:        uuid.New(),
		Owner:     owner,
		Label:     label,
		ZipCode:   "01310100",
		Street:    "Avenida Paulista",
		Number:    "1000",
		City:      "São Paulo",
		State:     "SP",
		IsDefault: isDefault,
	}
}

func TestAddressRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewAddressRepository(db)
	ctx := context.Background()

	owner := entity.AccountOwner(uuid.New())
	address := newStoredAddress(owner, "Home", true)

	require.NoError(t, repo.CreateAddress(ctx, address))

	found, err := repo.FindAddressByID(ctx, address.ID)
	require.NoError(t, err)
	assert.Equal(t, owner, found.Owner)
	assert.Equal(t, "Home", found.Label)
	assert.Equal(t, "01310100", found.ZipCode)
	assert.True(t, found.IsDefault)
}

func TestAddressRepository_FindAddressByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewAddressRepository(db)

	_, err := repo.FindAddressByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrAddressNotFound)
}

func TestAddressRepository_FindAddressesByOwner_DefaultFirst(t *testing.T) {
	db := newTestDB(t)
	repo := NewAddressRepository(db)
	ctx := context.Background()

	owner := entity.AccountOwner(uuid.New())
	other := entity.AccountOwner(uuid.New())

	home := newStoredAddress(owner, "Home", false)
	office := newStoredAddress(owner, "Office", true)
	foreign := newStoredAddress(other, "Other", true)

	require.NoError(t, repo.CreateAddress(ctx, home))
	require.NoError(t, repo.CreateAddress(ctx, office))
	require.NoError(t, repo.CreateAddress(ctx, foreign))

	addresses, err := repo.FindAddressesByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, addresses, 2)
	assert.Equal(t, "Office", addresses[0].Label)
	assert.True(t, addresses[0].IsDefault)
	assert.Equal(t, "Home", addresses[1].Label)
}

func TestAddressRepository_FindDefaultAddressByOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewAddressRepository(db)
	ctx := context.Background()

	owner := entity.StoreOwner(uuid.New())
	require.NoError(t, repo.CreateAddress(ctx, newStoredAddress(owner, "Loja", true)))
	require.NoError(t, repo.CreateAddress(ctx, newStoredAddress(owner, "Depósito", false)))

	found, err := repo.FindDefaultAddressByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, "Loja", found.Label)

	_, err = repo.FindDefaultAddressByOwner(ctx, entity.StoreOwner(uuid.New()))
	assert.ErrorIs(t, err, repository.ErrAddressNotFound)
}

func TestAddressRepository_DemoteOtherDefaults(t *testing.T) {
	db := newTestDB(t)
	repo := NewAddressRepository(db)
	ctx := context.Background()

	owner := entity.AccountOwner(uuid.New())
	otherOwner := entity.AccountOwner(uuid.New())

	current := newStoredAddress(owner, "Old default", true)
	require.NoError(t, repo.CreateAddress(ctx, current))

	foreign := newStoredAddress(otherOwner, "Untouched", true)
	require.NoError(t, repo.CreateAddress(ctx, foreign))

	promoted := newStoredAddress(owner, "New default", false)
	require.NoError(t, repo.CreateAddress(ctx, promoted))

	require.NoError(t, repo.DemoteOtherDefaults(ctx, owner, promoted.ID))

	demoted, err := repo.FindAddressByID(ctx, current.ID)
	require.NoError(t, err)
	assert.False(t, demoted.IsDefault)

	// The other owner's scope is untouched.
	kept, err := repo.FindAddressByID(ctx, foreign.ID)
	require.NoError(t, err)
	assert.True(t, kept.IsDefault)
}

func TestAddressRepository_DemoteOtherDefaults_KeepsExcluded(t *testing.T) {
	db := newTestDB(t)
	repo := NewAddressRepository(db)
	ctx := context.Background()

	owner := entity.AccountOwner(uuid.New())
	address := newStoredAddress(owner, "Home", true)
	require.NoError(t, repo.CreateAddress(ctx, address))

	require.NoError(t, repo.DemoteOtherDefaults(ctx, owner, address.ID))

	found, err := repo.FindAddressByID(ctx, address.ID)
	require.NoError(t, err)
	assert.True(t, found.IsDefault)
}

func TestAddressRepository_SecondDefaultRejectedByIndex(t *testing.T) {
	db := newTestDB(t)
	repo := NewAddressRepository(db)
	ctx := context.Background()

	owner := entity.AccountOwner(uuid.New())
	require.NoError(t, repo.CreateAddress(ctx, newStoredAddress(owner, "Home", true)))

	err := repo.CreateAddress(ctx, newStoredAddress(owner, "Office", true))
	require.Error(t, err)

	var count int64
	db.Table("addresses").Where("owner_id = ? AND is_default = ?", owner.ID(), true).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestAddressRepository_UpdateAddress(t *testing.T) {
	db := newTestDB(t)
	repo := NewAddressRepository(db)
	ctx := context.Background()

	owner := entity.AccountOwner(uuid.New())
	address := newStoredAddress(owner, "Home", false)
	require.NoError(t, repo.CreateAddress(ctx, address))

	address.Label = "Apartment"
	address.Number = "42"
	require.NoError(t, repo.UpdateAddress(ctx, address))

	found, err := repo.FindAddressByID(ctx, address.ID)
	require.NoError(t, err)
	assert.Equal(t, "Apartment", found.Label)
	assert.Equal(t, "42", found.Number)
}

func TestAddressRepository_UpdateAddress_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewAddressRepository(db)

	missing := newStoredAddress(entity.AccountOwner(uuid.New()), "Home", false)

	err := repo.UpdateAddress(context.Background(), missing)
	assert.ErrorIs(t, err, repository.ErrAddressNotFound)
}

func TestAddressRepository_DeleteAddress(t *testing.T) {
	db := newTestDB(t)
	repo := NewAddressRepository(db)
	ctx := context.Background()

	address := newStoredAddress(entity.AccountOwner(uuid.New()), "Home", false)
	require.NoError(t, repo.CreateAddress(ctx, address))

	require.NoError(t, repo.DeleteAddress(ctx, address.ID))

	_, err := repo.FindAddressByID(ctx, address.ID)
	assert.ErrorIs(t, err, repository.ErrAddressNotFound)

	assert.ErrorIs(t, repo.DeleteAddress(ctx, address.ID), repository.ErrAddressNotFound)
}
