package qrcode

import (
	"fmt"
	"strings"

	"quitanda/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance. The base URL
// is the public storefront origin the menu links hang off.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// GenerateStoreMenuQR generates a PNG QR code pointing at the store's
// public menu page.
func (s *qrcodeService) GenerateStoreMenuQR(storeID uuid.UUID) ([]byte, error) {
	menuURL := s.StoreMenuURL(storeID)

	qrCode, err := qrcode.New(menuURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// StoreMenuURL builds the public menu URL encoded into the QR code.
func (s *qrcodeService) StoreMenuURL(storeID uuid.UUID) string {
	return fmt.Sprintf("%s/stores/%s/menu", s.baseURL, storeID)
}
