package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "delishub/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails string
		wantLogged  bool
	}{
		{
			name:        "wrapped domain error keeps its status and code",
			err:         errors.Wrap(domainerrors.ErrUserNotFound, "failed to update email"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "USER_NOT_FOUND",
			wantMessage: domainerrors.ErrUserNotFound.Message(),
		},
		{
			name:        "client error details are rendered",
			err:         domainerrors.ErrValidationFailed.WithDetails("email must be a valid email address"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantMessage: domainerrors.ErrValidationFailed.Message(),
			wantDetails: "email must be a valid email address",
		},
		{
			name:        "server error details are hidden",
			err:         domainerrors.NewDatabaseExecuteError(errors.New("pq: connection refused"), "users update"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "DATABASE_EXECUTE_FAILED",
			wantLogged:  true,
			wantDetails: "",
		},
		{
			name:        "echo error with a string message",
			err:         echo.NewHTTPError(http.StatusMethodNotAllowed, "method not allowed"),
			wantStatus:  http.StatusMethodNotAllowed,
			wantCode:    "HTTP_ERROR",
			wantMessage: "method not allowed",
		},
		{
			name:        "echo error with a non-string message",
			err:         &echo.HTTPError{Code: http.StatusRequestEntityTooLarge, Message: map[string]any{"limit": 10}},
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantCode:    "HTTP_ERROR",
			wantMessage: http.StatusText(http.StatusRequestEntityTooLarge),
		},
		{
			name:        "unknown error becomes a generic internal error",
			err:         errors.New("secret connection string"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: domainerrors.ErrInternalError.Message(),
			wantLogged:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			m := NewErrorMiddleware(slog.New(slog.NewTextHandler(&logs, nil)))

			e := echo.New()
			req := httptest.NewRequest(http.MethodPut, "/api/user-profile/update-email", nil)
			rec := httptest.NewRecorder()
			m.HandleHTTPError(tt.err, e.NewContext(req, rec))

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body domainerrors.Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantStatus, body.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, body.Message)
			}
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.NotContains(t, rec.Body.String(), "secret connection string")
			assert.NotContains(t, rec.Body.String(), "connection refused")

			assert.Equal(t, tt.wantLogged, logs.Len() > 0)
		})
	}
}

func TestErrorMiddleware_CommittedResponseIsLeftAlone(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.DiscardHandler))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	m.HandleHTTPError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
