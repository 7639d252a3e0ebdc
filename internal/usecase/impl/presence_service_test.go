package impl

import (
	"context"
	"testing"

	"delishub/internal/domain/constants"
	domainerrors "delishub/internal/domain/errors"
	"delishub/internal/domain/service"
	"delishub/internal/infra/presence"
	mockService "delishub/internal/mocks/service"
	"delishub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type presenceServiceFixtures struct {
	service   usecase.PresenceUsecase
	registry  *mockService.MockPresenceRegistry
	publisher *mockService.MockEventPublisher
}

func createTestPresenceService(t *testing.T) presenceServiceFixtures {
	registry := mockService.NewMockPresenceRegistry(t)
	publisher := mockService.NewMockEventPublisher(t)

	return presenceServiceFixtures{
		service: NewPresenceService(PresenceServiceParams{
			Registry:  registry,
			Publisher: publisher,
			Logger:    newDiscardLogger(),
		}),
		registry:  registry,
		publisher: publisher,
	}
}

func eventOfType(eventType string, userID uuid.UUID) any {
	return mock.MatchedBy(func(e *service.AccountEvent) bool {
		return e.Type == eventType && e.UserID == userID.String()
	})
}

func TestPresenceService_Connect_PublishesWhenUserComesOnline(t *testing.T) {
	fx := createTestPresenceService(t)
	userID := uuid.New()

	fx.registry.EXPECT().Register(userID, "conn-1").Return(true)
	fx.publisher.EXPECT().PublishAccountEvent(mock.Anything, eventOfType(constants.EventTypePresenceOnline, userID)).Return(nil)

	fx.service.Connect(context.Background(), userID, "conn-1")
}

func TestPresenceService_Connect_ReplacingConnectionDoesNotPublish(t *testing.T) {
	fx := createTestPresenceService(t)
	userID := uuid.New()

	fx.registry.EXPECT().Register(userID, "conn-2").Return(false)

	fx.service.Connect(context.Background(), userID, "conn-2")
}

func TestPresenceService_Disconnect(t *testing.T) {
	t.Run("current connection goes offline", func(t *testing.T) {
		fx := createTestPresenceService(t)
		userID := uuid.New()

		fx.registry.EXPECT().Unregister("conn-1").Return(userID, true)
		fx.publisher.EXPECT().PublishAccountEvent(mock.Anything, eventOfType(constants.EventTypePresenceOffline, userID)).Return(nil)

		fx.service.Disconnect(context.Background(), "conn-1")
	})

	t.Run("stale or unknown connection is a no-op", func(t *testing.T) {
		fx := createTestPresenceService(t)

		fx.registry.EXPECT().Unregister("conn-1").Return(uuid.Nil, false)

		fx.service.Disconnect(context.Background(), "conn-1")
	})
}

func TestPresenceService_Forget(t *testing.T) {
	fx := createTestPresenceService(t)
	online := uuid.New()
	offline := uuid.New()

	fx.registry.EXPECT().Retire(online).Return(true)
	fx.registry.EXPECT().Retire(offline).Return(false)
	fx.publisher.EXPECT().PublishAccountEvent(mock.Anything, eventOfType(constants.EventTypePresenceOffline, online)).Return(nil).Once()

	fx.service.Forget(context.Background(), online)
	fx.service.Forget(context.Background(), offline)
}

func TestPresenceService_Attach(t *testing.T) {
	t.Run("open socket is recorded", func(t *testing.T) {
		fx := createTestPresenceService(t)
		userID := uuid.New()

		fx.registry.EXPECT().Attach(userID, "conn-1", mock.Anything).Return(nil)

		assert.NoError(t, fx.service.Attach(context.Background(), userID, "conn-1", func() {}))
	})

	t.Run("deleted account is refused", func(t *testing.T) {
		fx := createTestPresenceService(t)
		userID := uuid.New()

		fx.registry.EXPECT().Attach(userID, "conn-1", mock.Anything).Return(service.ErrPresenceRetired)

		err := fx.service.Attach(context.Background(), userID, "conn-1", func() {})
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestPresenceService_DeletedUserStaysOffline(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	srv := NewPresenceService(PresenceServiceParams{
		Registry:  presence.NewRegistry(),
		Publisher: publisher,
		Logger:    newDiscardLogger(),
	})
	ctx := context.Background()
	userID := uuid.New()

	publisher.EXPECT().PublishAccountEvent(mock.Anything, eventOfType(constants.EventTypePresenceOnline, userID)).Return(nil).Once()
	publisher.EXPECT().PublishAccountEvent(mock.Anything, eventOfType(constants.EventTypePresenceOffline, userID)).Return(nil).Once()

	evicted := 0
	require.NoError(t, srv.Attach(ctx, userID, "conn-1", func() { evicted++ }))
	srv.Connect(ctx, userID, "conn-1")
	require.True(t, srv.IsOnline(userID))

	srv.Forget(ctx, userID)
	assert.Equal(t, 1, evicted)

	// a late user-active from the same socket must not resurrect the account
	srv.Connect(ctx, userID, "conn-1")
	assert.False(t, srv.IsOnline(userID))
	assert.Empty(t, srv.OnlineUsers())

	assert.ErrorIs(t, srv.Attach(ctx, userID, "conn-2", func() {}), domainerrors.ErrUserNotFound)
}

func TestPresenceService_Lookups(t *testing.T) {
	fx := createTestPresenceService(t)
	userID := uuid.New()

	fx.registry.EXPECT().IsOnline(userID).Return(true)
	fx.registry.EXPECT().OnlineUsers().Return([]uuid.UUID{userID})

	assert.True(t, fx.service.IsOnline(userID))
	assert.Equal(t, []uuid.UUID{userID}, fx.service.OnlineUsers())
}
