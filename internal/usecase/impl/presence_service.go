package impl

import (
	"context"
	"log/slog"

	deliverycontext "delishub/internal/delivery/context"
	"delishub/internal/domain/constants"
	domainerrors "delishub/internal/domain/errors"
	"delishub/internal/domain/service"
	"delishub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// presenceService implements the PresenceUsecase interface on top of the registry.
type presenceService struct {
	registry  service.PresenceRegistry
	publisher service.EventPublisher
	logger    *slog.Logger
}

// PresenceServiceParams holds dependencies for PresenceService, injected by Fx.
type PresenceServiceParams struct {
	fx.In

	Registry  service.PresenceRegistry
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewPresenceService is the constructor for presenceService.
func NewPresenceService(params PresenceServiceParams) usecase.PresenceUsecase {
	return &presenceService{
		registry:  params.Registry,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *presenceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Attach records an open socket of the user.
func (srv *presenceService) Attach(ctx context.Context, userID uuid.UUID, connID string, evict func()) error {
	if err := srv.registry.Attach(userID, connID, evict); err != nil {
		if errors.Is(err, service.ErrPresenceRetired) {
			return errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return errors.Wrap(err, "failed to attach presence session")
	}

	return nil
}

// Connect marks the user online through connID.
func (srv *presenceService) Connect(ctx context.Context, userID uuid.UUID, connID string) {
	cameOnline := srv.registry.Register(userID, connID)
	srv.log(ctx).Debug("User active", slog.String("userID", userID.String()), slog.String("connID", connID))

	if cameOnline {
		publishAccountEvent(ctx, srv.publisher, srv.log(ctx), constants.EventTypePresenceOnline, userID)
	}
}

// Disconnect drops connID. The user goes offline only if connID was their current connection.
func (srv *presenceService) Disconnect(ctx context.Context, connID string) {
	userID, wentOffline := srv.registry.Unregister(connID)
	if !wentOffline {
		return
	}

	srv.log(ctx).Debug("User disconnected", slog.String("userID", userID.String()), slog.String("connID", connID))
	publishAccountEvent(ctx, srv.publisher, srv.log(ctx), constants.EventTypePresenceOffline, userID)
}

// Forget retires the user: its sockets are closed and it can never come online again.
func (srv *presenceService) Forget(ctx context.Context, userID uuid.UUID) {
	if srv.registry.Retire(userID) {
		publishAccountEvent(ctx, srv.publisher, srv.log(ctx), constants.EventTypePresenceOffline, userID)
	}
}

// IsOnline reports whether the user holds a registered connection.
func (srv *presenceService) IsOnline(userID uuid.UUID) bool {
	return srv.registry.IsOnline(userID)
}

// OnlineUsers lists every online user.
func (srv *presenceService) OnlineUsers() []uuid.UUID {
	return srv.registry.OnlineUsers()
}
