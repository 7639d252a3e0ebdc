package postgres

import (
	"context"

	"delishub/internal/domain/entity"
	"delishub/internal/domain/repository"
	"delishub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// commentRepository implements the domain.CommentRepository interface using GORM.
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *gorm.DB) repository.CommentRepository {
	return &commentRepository{db: db}
}

// DeleteByUserID removes every comment the user wrote, on any recipe.
func (repo *commentRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.CommentModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete comments by user id")
	}

	return result.RowsAffected, nil
}

func toCommentDomain(data *model.CommentModel) *entity.Comment {
	if data == nil {
		return nil
	}

	return &entity.Comment{
		ID:        data.ID,
		RecipeID:  data.RecipeID,
		UserID:    data.UserID,
		Content:   data.Content,
		User:      toUserSummary(data.User),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
