// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Password length bounds accepted when a user sets a new password.
// bcrypt only reads the first 72 bytes of its input, so longer secrets are rejected instead of truncated.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 72
)

// User is the core entity in the system, representing a unique account.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username     string    // Display name. Mutable and not unique.
	Email        string    // Contact email.
	PasswordHash string    // bcrypt hash of the password. Never holds plaintext.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// Summary returns the public projection of the user.
func (u *User) Summary() *UserSummary {
	if u == nil {
		return nil
	}

	return &UserSummary{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// UserSummary is the only user shape that leaves the service.
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}
