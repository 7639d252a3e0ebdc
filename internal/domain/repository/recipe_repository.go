package repository

import (
	"context"

	"delishub/internal/domain/entity"

	"github.com/google/uuid"
)

// RecipeRepository defines recipe persistence operations used by the account subsystem.
type RecipeRepository interface {
	// FindByUserID returns the user's recipes with the owner summary and the comments
	// (each with its commenter summary) loaded.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Recipe, error)

	// DeleteByUserID removes every recipe owned by the user and returns the number of rows removed.
	// Comments on those recipes are removed by the database cascade.
	DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}
