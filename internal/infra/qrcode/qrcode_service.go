package qrcode

import (
	"net/url"
	"strings"

	"delishub/config"
	"delishub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const profilePathPrefix = "/profile/"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates the profile QR code service from configuration.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return newQRCodeService(256, "M", cfg.HTTP.ClientOrigin)
	}

	return newQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func newQRCodeService(size int, errorCorrectionLevel, baseURL string) *qrcodeService {
	// Set error correction level
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

// profileURL returns the link encoded in a user's QR code.
func (s *qrcodeService) profileURL(userID uuid.UUID) string {
	return s.baseURL + profilePathPrefix + userID.String()
}

// GenerateProfileQR generates a PNG QR code linking to the user's public profile.
func (s *qrcodeService) GenerateProfileQR(userID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.profileURL(userID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseProfileQR extracts the user ID from a scanned profile link.
func (s *qrcodeService) ParseProfileQR(qrData string) (uuid.UUID, error) {
	link, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse QR code link")
	}

	rawID, ok := strings.CutPrefix(link.Path, profilePathPrefix)
	if !ok || rawID == "" || strings.Contains(rawID, "/") {
		return uuid.Nil, errors.Errorf("not a profile link: %s", qrData)
	}

	userID, err := uuid.Parse(rawID)
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse user ID")
	}

	return userID, nil
}
