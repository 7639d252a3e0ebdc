package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "delishub/internal/delivery/context"
	"delishub/internal/domain/lifecycle"
	"delishub/internal/domain/service"

	"github.com/google/uuid"
)

// publishAccountEvent emits an event detached from request cancellation. Failures are logged only.
func publishAccountEvent(ctx context.Context, publisher service.EventPublisher, logger *slog.Logger, eventType string, userID uuid.UUID) {
	if publisher == nil {
		return
	}

	event := &service.AccountEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		EventID:    uuid.NewString(),
		Type:       eventType,
		UserID:     userID.String(),
		OccurredAt: time.Now().UTC(),
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.DefaultTimeout)
	defer cancel()

	if err := publisher.PublishAccountEvent(publishCtx, event); err != nil {
		logger.Warn("Failed to publish account event",
			slog.String("type", eventType),
			slog.String("userID", event.UserID),
			slog.Any("error", err),
		)
	}
}
