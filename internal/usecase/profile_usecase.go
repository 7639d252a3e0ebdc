package usecase

import (
	"context"

	"delishub/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the public, read-only view of a user's profile.
type ProfileUsecase interface {
	// GetUserProfile returns the user's recipes with owner and comments. An unknown user yields an empty list.
	GetUserProfile(ctx context.Context, userID uuid.UUID) ([]*entity.Recipe, error)
	// GetProfileQRCode returns a PNG QR code linking to the user's profile page.
	GetProfileQRCode(ctx context.Context, userID uuid.UUID) ([]byte, error)
}
