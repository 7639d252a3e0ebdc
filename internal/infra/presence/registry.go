// Package presence keeps the in-process record of which users hold a live socket connection.
package presence

import (
	"sync"

	"delishub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// session is one open socket, registered or not.
type session struct {
	userID uuid.UUID
	evict  func()
}

// Registry maps each online user to its current connection, with a reverse index so that
// unregistering by connection ID is a direct lookup. Retired users stay refused for the
// lifetime of the process.
type Registry struct {
	mu       sync.RWMutex
	byUser   map[uuid.UUID]string
	byConn   map[string]uuid.UUID
	sessions map[string]session
	retired  map[uuid.UUID]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byUser:   make(map[uuid.UUID]string),
		byConn:   make(map[string]uuid.UUID),
		sessions: make(map[string]session),
		retired:  make(map[uuid.UUID]struct{}),
	}
}

// NewPresenceRegistry exposes a fresh Registry as the domain interface for Fx.
func NewPresenceRegistry() service.PresenceRegistry {
	return NewRegistry()
}

// Attach records an open socket so that retiring its user can close it.
func (r *Registry) Attach(userID uuid.UUID, connID string, evict func()) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.retired[userID]; ok {
		return errors.WithStack(service.ErrPresenceRetired)
	}
	r.sessions[connID] = session{userID: userID, evict: evict}

	return nil
}

// Register binds connID to userID, replacing any older connection of the same user.
// It reports whether the user was offline before.
func (r *Registry) Register(userID uuid.UUID, connID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.retired[userID]; ok {
		return false
	}

	// A connection ID moving to another user must not leave a dangling forward entry.
	if previousUser, ok := r.byConn[connID]; ok && previousUser != userID {
		delete(r.byUser, previousUser)
	}

	previousConn, wasOnline := r.byUser[userID]
	if wasOnline && previousConn != connID {
		delete(r.byConn, previousConn)
	}

	r.byUser[userID] = connID
	r.byConn[connID] = userID

	return !wasOnline
}

// Unregister drops connID and reports the owner and whether that user went offline.
func (r *Registry) Unregister(connID string) (uuid.UUID, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, connID)

	userID, ok := r.byConn[connID]
	if !ok {
		return uuid.Nil, false
	}
	delete(r.byConn, connID)

	if r.byUser[userID] != connID {
		return userID, false
	}
	delete(r.byUser, userID)

	return userID, true
}

// Retire drops the user, refuses it from now on and evicts its open sockets.
// Evictions run after the lock is released since they write to the network.
func (r *Registry) Retire(userID uuid.UUID) bool {
	r.mu.Lock()

	r.retired[userID] = struct{}{}

	var evictions []func()
	for connID, s := range r.sessions {
		if s.userID != userID {
			continue
		}
		delete(r.sessions, connID)
		if s.evict != nil {
			evictions = append(evictions, s.evict)
		}
	}

	connID, wasOnline := r.byUser[userID]
	if wasOnline {
		delete(r.byUser, userID)
		delete(r.byConn, connID)
	}

	r.mu.Unlock()

	for _, evict := range evictions {
		evict()
	}

	return wasOnline
}

// IsOnline reports whether the user holds a registered connection.
func (r *Registry) IsOnline(userID uuid.UUID) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byUser[userID]

	return ok
}

// OnlineUsers returns a snapshot of every online user.
func (r *Registry) OnlineUsers() []uuid.UUID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]uuid.UUID, 0, len(r.byUser))
	for userID := range r.byUser {
		users = append(users, userID)
	}

	return users
}
