package handler

import (
	deliverycontext "delishub/internal/delivery/context"
	domainerrors "delishub/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const userIDParam = "userId"

// callerID returns the ID the auth middleware extracted from the verified token.
func callerID(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	return userID, nil
}

// pathUserID parses the :userId path parameter.
func pathUserID(c echo.Context) (uuid.UUID, error) {
	return parseUserID(c.Param(userIDParam))
}

func parseUserID(raw string) (uuid.UUID, error) {
	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("user id must be a valid UUID")
	}

	return userID, nil
}

// requireSelf checks a client-supplied target ID against the caller.
// The target is only an assertion; the caller ID is what the usecase acts on.
func requireSelf(caller, target uuid.UUID) error {
	if caller != target {
		return errors.WithStack(domainerrors.ErrForbidden)
	}

	return nil
}
