package presence

import (
	"fmt"
	"sync"
	"testing"

	"delishub/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// connectionOf returns the registered connection of a user.
func (r *Registry) connectionOf(userID uuid.UUID) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	connID, ok := r.byUser[userID]

	return connID, ok
}

func TestRegistry_RegisterAndUnregister(t *testing.T) {
	r := NewRegistry()
	userID := uuid.New()

	assert.True(t, r.Register(userID, "conn-1"))
	assert.True(t, r.IsOnline(userID))
	assert.Equal(t, []uuid.UUID{userID}, r.OnlineUsers())

	owner, wentOffline := r.Unregister("conn-1")
	assert.Equal(t, userID, owner)
	assert.True(t, wentOffline)
	assert.False(t, r.IsOnline(userID))
	assert.Empty(t, r.OnlineUsers())
}

func TestRegistry_NewerConnectionReplacesOlder(t *testing.T) {
	r := NewRegistry()
	userID := uuid.New()

	assert.True(t, r.Register(userID, "conn-1"))
	assert.False(t, r.Register(userID, "conn-2"))

	connID, ok := r.connectionOf(userID)
	require.True(t, ok)
	assert.Equal(t, "conn-2", connID)

	// the stale connection closing must not take the user offline
	owner, wentOffline := r.Unregister("conn-1")
	assert.Equal(t, uuid.Nil, owner)
	assert.False(t, wentOffline)
	assert.True(t, r.IsOnline(userID))

	_, wentOffline = r.Unregister("conn-2")
	assert.True(t, wentOffline)
	assert.False(t, r.IsOnline(userID))
}

func TestRegistry_ReRegisterSameConnection(t *testing.T) {
	r := NewRegistry()
	userID := uuid.New()

	assert.True(t, r.Register(userID, "conn-1"))
	assert.False(t, r.Register(userID, "conn-1"))

	_, wentOffline := r.Unregister("conn-1")
	assert.True(t, wentOffline)
}

func TestRegistry_ConnectionMovesToAnotherUser(t *testing.T) {
	r := NewRegistry()
	first := uuid.New()
	second := uuid.New()

	r.Register(first, "conn-1")
	r.Register(second, "conn-1")

	assert.False(t, r.IsOnline(first))
	assert.True(t, r.IsOnline(second))

	owner, wentOffline := r.Unregister("conn-1")
	assert.Equal(t, second, owner)
	assert.True(t, wentOffline)
}

func TestRegistry_UnregisterUnknownIsNoop(t *testing.T) {
	r := NewRegistry()
	userID := uuid.New()
	r.Register(userID, "conn-1")

	owner, wentOffline := r.Unregister("unknown")

	assert.Equal(t, uuid.Nil, owner)
	assert.False(t, wentOffline)
	assert.True(t, r.IsOnline(userID))
}

func TestRegistry_Retire(t *testing.T) {
	r := NewRegistry()
	userID := uuid.New()
	r.Register(userID, "conn-1")

	assert.True(t, r.Retire(userID))
	assert.False(t, r.IsOnline(userID))
	assert.False(t, r.Retire(userID))

	// the socket closing afterwards is a no-op
	_, wentOffline := r.Unregister("conn-1")
	assert.False(t, wentOffline)
}

func TestRegistry_RetiredUserCannotComeBack(t *testing.T) {
	r := NewRegistry()
	userID := uuid.New()
	require.NoError(t, r.Attach(userID, "conn-1", nil))
	r.Register(userID, "conn-1")

	r.Retire(userID)

	// a socket that outlived the account keeps sending user-active
	assert.False(t, r.Register(userID, "conn-1"))
	assert.False(t, r.IsOnline(userID))
	assert.Empty(t, r.OnlineUsers())

	err := r.Attach(userID, "conn-2", nil)
	assert.ErrorIs(t, err, service.ErrPresenceRetired)
}

func TestRegistry_RetireEvictsOpenSockets(t *testing.T) {
	r := NewRegistry()
	userID := uuid.New()
	other := uuid.New()

	var evicted []string
	evictor := func(connID string) func() {
		return func() { evicted = append(evicted, connID) }
	}

	require.NoError(t, r.Attach(userID, "registered", evictor("registered")))
	require.NoError(t, r.Attach(userID, "idle", evictor("idle")))
	require.NoError(t, r.Attach(userID, "closed", evictor("closed")))
	require.NoError(t, r.Attach(other, "other", evictor("other")))
	r.Register(userID, "registered")
	r.Unregister("closed")

	assert.True(t, r.Retire(userID))
	assert.ElementsMatch(t, []string{"registered", "idle"}, evicted)

	// evictions fire once
	r.Retire(userID)
	assert.Len(t, evicted, 2)

	assert.True(t, r.Register(other, "other"))
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry()
	const workers = 32

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			userID := uuid.New()
			connID := fmt.Sprintf("conn-%d", i)
			r.Register(userID, connID)
			_ = r.IsOnline(userID)
			_ = r.OnlineUsers()
			r.Unregister(connID)
		}()
	}
	wg.Wait()

	assert.Empty(t, r.OnlineUsers())
}
