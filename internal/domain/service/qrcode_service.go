package service

import (
	"github.com/google/uuid"
)

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateProfileQR renders a PNG QR code pointing at the public profile of a user
	GenerateProfileQR(userID uuid.UUID) ([]byte, error)

	// ParseProfileQR extracts the user ID from a scanned profile link
	ParseProfileQR(qrData string) (uuid.UUID, error)
}
