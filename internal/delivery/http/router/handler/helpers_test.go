package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "delishub/internal/delivery/context"
	"delishub/internal/delivery/http/response"
	"delishub/internal/delivery/http/validator"
	domainerrors "delishub/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	method string
	target string
	body   string
	caller uuid.UUID
	params map[string]string
}

func newTestContext(t *testing.T, r testRequest) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	names := make([]string, 0, len(r.params))
	values := make([]string, 0, len(r.params))
	for name, value := range r.params {
		names = append(names, name)
		values = append(values, value)
	}
	// Contexts only hold as many path values as the widest registered route.
	if len(names) > 0 {
		e.Add(r.method, "/:"+strings.Join(names, "/:"), func(echo.Context) error { return nil })
	}

	req := httptest.NewRequest(r.method, r.target, strings.NewReader(r.body))
	if r.body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames(names...)
	c.SetParamValues(values...)
	if r.caller != uuid.Nil {
		deliverycontext.SetUserID(c, r.caller)
	}

	return c, rec
}

func assertAppError(t *testing.T, err error, wantCode string) {
	t.Helper()

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	assert.Equal(t, wantCode, appErr.ErrorCode())
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, data any) response.Response {
	t.Helper()

	var body response.Response
	if data != nil {
		body.Data = data
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func extractData(t *testing.T, raw []byte) json.RawMessage {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope))

	return envelope.Data
}
