// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"delishub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for account persistence.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Exists reports whether an account with the given ID is stored.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// Update persists username, email and password hash of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes the user row. It returns ErrUserNotFound when nothing was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
