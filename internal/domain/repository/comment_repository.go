package repository

import (
	"context"

	"github.com/google/uuid"
)

// CommentRepository defines comment persistence operations used by the account subsystem.
type CommentRepository interface {
	// DeleteByUserID removes every comment written by the user and returns the number of rows removed.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}
