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

// recipeRepository implements the domain.RecipeRepository interface using GORM.
type recipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository is the constructor for recipeRepository.
func NewRecipeRepository(db *gorm.DB) repository.RecipeRepository {
	return &recipeRepository{db: db}
}

// FindByUserID loads the user's recipes oldest first, each with its owner and comments (oldest first) plus commenters.
func (repo *recipeRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Recipe, error) {
	var recipesM []*model.RecipeModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.created_at ASC").Order("comments.id ASC")
		}).
		Preload("Comments.User").
		Where("recipes.user_id = ?", userID).
		Order("recipes.created_at ASC").
		Order("recipes.id ASC").
		Find(&recipesM).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find recipes by user id")
	}

	recipes := make([]*entity.Recipe, 0, len(recipesM))
	for _, recipeM := range recipesM {
		recipes = append(recipes, toRecipeDomain(recipeM))
	}

	return recipes, nil
}

// DeleteByUserID removes the user's recipes. Their comments go with them through ON DELETE CASCADE.
func (repo *recipeRepository) DeleteByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.RecipeModel{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete recipes by user id")
	}

	return result.RowsAffected, nil
}

func toRecipeDomain(data *model.RecipeModel) *entity.Recipe {
	if data == nil {
		return nil
	}

	comments := make([]*entity.Comment, 0, len(data.Comments))
	for _, commentM := range data.Comments {
		comments = append(comments, toCommentDomain(commentM))
	}

	return &entity.Recipe{
		ID:           data.ID,
		UserID:       data.UserID,
		Title:        data.Title,
		Description:  data.Description,
		Ingredients:  data.Ingredients,
		Instructions: data.Instructions,
		ImageURL:     data.ImageURL,
		User:         toUserSummary(data.User),
		Comments:     comments,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
