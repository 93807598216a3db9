package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAddress(owner AddressOwner) *Address {
	return &Address{
		Owner:   owner,
		ZipCode: "01310100",
		Street:  "Avenida Paulista",
		Number:  "1000",
		State:   "SP",
	}
}

func TestAddress_Validate(t *testing.T) {
	owner := AccountOwner(uuid.New())

	assert.NoError(t, validAddress(owner).Validate())

	noOwner := validAddress(AddressOwner{})
	assert.Error(t, noOwner.Validate())

	badZip := validAddress(owner)
	badZip.ZipCode = "0131-010"
	assert.Error(t, badZip.Validate())

	noStreet := validAddress(owner)
	noStreet.Street = ""
	assert.Error(t, noStreet.Validate())

	badState := validAddress(owner)
	badState.State = "sp"
	assert.Error(t, badState.Validate())
}

func TestAddress_FormatZipCode(t *testing.T) {
	address := validAddress(AccountOwner(uuid.New()))
	assert.Equal(t, "01310-100", address.FormatZipCode())

	address.ZipCode = "123"
	assert.Equal(t, "123", address.FormatZipCode())
}

func TestAddressOwner_Union(t *testing.T) {
	accountID := uuid.New()
	storeID := uuid.New()

	account := AccountOwner(accountID)
	assert.Equal(t, OwnerTypeAccount, account.Kind())
	assert.Equal(t, accountID, account.ID())
	assert.False(t, account.IsZero())

	store := StoreOwner(storeID)
	assert.Equal(t, OwnerTypeStore, store.Kind())
	assert.Equal(t, storeID, store.ID())

	assert.NotEqual(t, account, store)
	assert.True(t, AddressOwner{}.IsZero())
}

func TestOwnerFor(t *testing.T) {
	id := uuid.New()

	owner, ok := OwnerFor(OwnerTypeStore, id)
	require.True(t, ok)
	assert.Equal(t, StoreOwner(id), owner)

	_, ok = OwnerFor(OwnerType("warehouse"), id)
	assert.False(t, ok)

	_, ok = OwnerFor(OwnerTypeAccount, uuid.Nil)
	assert.False(t, ok)
}
