package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// KeyUserID is the key for storing the authenticated caller's ID.
const KeyUserID ContextKey = "user_id"

// SetUserID stores the authenticated caller's ID in echo.Context and in the request context.
// A request-scoped logger, if present, is tagged with the caller from here on.
func SetUserID(c echo.Context, userID uuid.UUID) {
	c.Set(string(KeyUserID), userID)

	ctx := WithUserID(c.Request().Context(), userID)
	if logger := GetLogger(ctx); logger != nil {
		ctx = WithLogger(ctx, logger.With(slog.String("user_id", userID.String())))
	}
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetUserID returns the authenticated caller's ID, if any.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(string(KeyUserID)).(uuid.UUID)

	return userID, ok && userID != uuid.Nil
}

// WithUserID returns a new context carrying the caller's ID.
func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, KeyUserID, userID)
}

// GetUserIDFromContext extracts the caller's ID from standard context.Context.
func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(KeyUserID).(uuid.UUID)

	return userID, ok
}
