package entity

import (
	"time"

	"github.com/google/uuid"
)

// Comment is written by one user on one recipe.
type Comment struct {
	ID        uuid.UUID    `json:"id"`
	RecipeID  uuid.UUID    `json:"recipe_id"`
	UserID    uuid.UUID    `json:"user_id"`
	Content   string       `json:"content"`
	User      *UserSummary `json:"user,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}
