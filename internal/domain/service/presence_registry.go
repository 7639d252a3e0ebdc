package service

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrPresenceRetired is returned when a deleted account tries to open a presence session.
var ErrPresenceRetired = errors.New("presence: user account no longer exists")

// PresenceRegistry owns the mapping between online users and their live connection.
// Every method is safe for concurrent use.
type PresenceRegistry interface {
	// Attach records an open socket of userID. evict is called once if the account is retired
	// while the socket is open. It fails with ErrPresenceRetired for a retired account.
	Attach(userID uuid.UUID, connID string, evict func()) error

	// Register binds connID to userID. A newer connection replaces an older one.
	// It reports whether the user was offline before the call. Retired accounts are never registered.
	Register(userID uuid.UUID, connID string) bool

	// Unregister drops connID. It returns the owning user and whether that user went offline,
	// which is false when connID is unknown or was already replaced by a newer connection.
	Unregister(connID string) (uuid.UUID, bool)

	// Retire drops the user, evicts every open socket of it and refuses it from then on.
	// It reports whether the user was online.
	Retire(userID uuid.UUID) bool

	// IsOnline reports whether the user holds a registered connection.
	IsOnline(userID uuid.UUID) bool

	// OnlineUsers returns the IDs of every online user in no particular order.
	OnlineUsers() []uuid.UUID
}
