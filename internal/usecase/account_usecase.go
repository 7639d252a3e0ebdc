// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"delishub/internal/domain/entity"

	"github.com/google/uuid"
)

// AccountUsecase defines the self-service account mutations of an authenticated user.
type AccountUsecase interface {
	// UpdateProfile changes username and/or email after verifying the password, then re-issues an access token.
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*UpdateProfileOutput, error)
	// UpdateEmail replaces the email after verifying the password.
	UpdateEmail(ctx context.Context, userID uuid.UUID, input *UpdateEmailInput) (*entity.UserSummary, error)
	// UpdatePassword replaces the password hash after verifying the current password.
	UpdatePassword(ctx context.Context, userID uuid.UUID, input *UpdatePasswordInput) error
}

// AccountDeletionUsecase defines the removal of an account and everything it owns.
type AccountDeletionUsecase interface {
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
}

// --- Input DTOs ---

// UpdateProfileInput defines the data accepted by UpdateProfile.
// A nil or empty Username/Email leaves the stored value unchanged.
type UpdateProfileInput struct {
	Username *string `json:"username,omitempty" validate:"omitempty,max=100"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Password string  `json:"password" validate:"required"`
}

// UpdateEmailInput defines the data accepted by UpdateEmail.
// UserID is the client's assertion of the target account; it must match the caller.
type UpdateEmailInput struct {
	UserID   string `json:"user_id,omitempty"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

// UpdatePasswordInput defines the data accepted by UpdatePassword.
type UpdatePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required"`
}

// --- Output DTOs ---

// UpdateProfileOutput is returned after a successful profile update.
type UpdateProfileOutput struct {
	User        *entity.UserSummary `json:"user"`
	AccessToken string              `json:"access_token"`
}
