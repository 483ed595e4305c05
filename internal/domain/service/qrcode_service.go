package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GeneratePlaceQR generates a PNG QR code that links to a place
	GeneratePlaceQR(placeID uuid.UUID) ([]byte, error)

	// ParsePlaceQR parses QR code data and returns the place ID
	ParsePlaceQR(qrData string) (uuid.UUID, error)
}
