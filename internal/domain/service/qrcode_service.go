package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation.
type QRCodeService interface {
	// GenerateStoreMenuQR generates a QR code image pointing at a store's
	// public menu page.
	GenerateStoreMenuQR(storeID uuid.UUID) ([]byte, error)
}
