package model

import (
	"time"

	"github.com/google/uuid"
)

// RecipeModel mirrors the 'recipes' table. UserID references users.id.
type RecipeModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Title        string    `gorm:"type:varchar(255);not null"`
	Description  string    `gorm:"type:text"`
	Ingredients  string    `gorm:"type:text"`
	Instructions string    `gorm:"type:text"`
	ImageURL     string    `gorm:"column:image_url;type:varchar(512)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	User     *UserModel      `gorm:"foreignKey:UserID"`
	Comments []*CommentModel `gorm:"foreignKey:RecipeID"`
}

// TableName explicitly sets the table name for GORM.
func (RecipeModel) TableName() string {
	return "recipes"
}
