// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/google/uuid"
)

// OwnerType discriminates which kind of entity an address belongs to.
type OwnerType string

const (
	// OwnerTypeAccount indicates the address belongs to a client or admin account.
	OwnerTypeAccount OwnerType = "account"
	// OwnerTypeStore indicates the address belongs to a store.
	OwnerTypeStore OwnerType = "store"
)

// String returns the string representation of the OwnerType.
func (o OwnerType) String() string {
	return string(o)
}

// IsValid checks if the OwnerType is a valid value.
func (o OwnerType) IsValid() bool {
	switch o {
	case OwnerTypeAccount, OwnerTypeStore:
		return true
	default:
		return false
	}
}

// AddressOwner is a tagged union identifying the single owner of an
// address: one account or one store, never both and never neither.
// The zero value is not a valid owner; use AccountOwner or StoreOwner.
type AddressOwner struct {
	kind OwnerType
	id   uuid.UUID
}

// AccountOwner builds the owner tag for an account-owned address.
func AccountOwner(accountID uuid.UUID) AddressOwner {
	return AddressOwner{kind: OwnerTypeAccount, id: accountID}
}

// StoreOwner builds the owner tag for a store-owned address.
func StoreOwner(storeID uuid.UUID) AddressOwner {
	return AddressOwner{kind: OwnerTypeStore, id: storeID}
}

// OwnerFor reconstructs an AddressOwner from its persisted discriminator
// pair. It returns false when the discriminator is unknown or the ID is nil.
func OwnerFor(kind OwnerType, id uuid.UUID) (AddressOwner, bool) {
	if !kind.IsValid() || id == uuid.Nil {
		return AddressOwner{}, false
	}

	return AddressOwner{kind: kind, id: id}, true
}

// Kind returns the owner discriminator.
func (o AddressOwner) Kind() OwnerType {
	return o.kind
}

// ID returns the owning entity's identifier.
func (o AddressOwner) ID() uuid.UUID {
	return o.id
}

// IsZero reports whether the owner tag was never set.
func (o AddressOwner) IsZero() bool {
	return o.kind == "" || o.id == uuid.Nil
}
