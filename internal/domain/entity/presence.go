package entity

import "github.com/google/uuid"

// PresenceStatus reports whether a user currently holds an active presence connection.
type PresenceStatus struct {
	UserID uuid.UUID `json:"user_id"`
	Online bool      `json:"online"`
}
