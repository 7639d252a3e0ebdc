package entity

import (
	"time"

	"github.com/google/uuid"
)

// Recipe is owned by exactly one user and is removed together with its owner.
type Recipe struct {
	ID           uuid.UUID    `json:"id"`
	UserID       uuid.UUID    `json:"user_id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Ingredients  string       `json:"ingredients"`
	Instructions string       `json:"instructions"`
	ImageURL     string       `json:"image_url,omitempty"`
	User         *UserSummary `json:"user,omitempty"`
	Comments     []*Comment   `json:"comments"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
