package usecase

import (
	"context"

	"github.com/google/uuid"
)

// PresenceUsecase tracks which users currently hold an active socket connection.
type PresenceUsecase interface {
	// Attach records an open socket before any message is read. evict closes the socket and is
	// called if the account is deleted while it is open. Deleted accounts are refused.
	Attach(ctx context.Context, userID uuid.UUID, connID string, evict func()) error
	Connect(ctx context.Context, userID uuid.UUID, connID string)
	Disconnect(ctx context.Context, connID string)
	Forget(ctx context.Context, userID uuid.UUID)
	IsOnline(userID uuid.UUID) bool
	OnlineUsers() []uuid.UUID
}
