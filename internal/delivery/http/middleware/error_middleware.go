package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "delishub/internal/delivery/context"
	domainerrors "delishub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler.
// Server-side failures are logged and rendered without internal details.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		details := appErr.Details()
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.logServerError(logger, c, err)
			details = ""
		}
		m.write(logger, c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && msg != "" {
			message = msg
		}
		if httpErr.Code >= http.StatusInternalServerError {
			m.logServerError(logger, c, err)
		}
		m.write(logger, c, httpErr.Code, "HTTP_ERROR", message, "")

		return
	}

	m.logServerError(logger, c, err)
	m.write(logger, c, http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(),
		domainerrors.ErrInternalError.Message(), "")
}

func (m *ErrorMiddleware) write(logger *slog.Logger, c echo.Context, status int, code, message, details string) {
	var err error
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = c.JSON(status, domainerrors.Response{
			Success: false,
			Code:    status,
			Message: message,
			Error: &domainerrors.ErrorInfo{
				Code:    code,
				Details: details,
			},
		})
	}
	if err != nil {
		logger.Error("Failed to write error response", slog.Any("error", err))
	}
}

func (m *ErrorMiddleware) logServerError(logger *slog.Logger, c echo.Context, err error) {
	logger.Error("Unhandled error",
		slog.String("error", err.Error()),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)
}
