package middleware

import (
	"strings"

	deliverycontext "delishub/internal/delivery/context"
	"delishub/internal/delivery/http/response"
	domainerrors "delishub/internal/domain/errors"
	"delishub/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const (
	bearerPrefix = "Bearer "

	// tokenQueryParam carries the access token for browser websocket clients,
	// which cannot set an Authorization header on the upgrade request.
	tokenQueryParam = "token"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller's ID on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return unauthenticated(c, "Authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || tokenString == "" {
			return unauthenticated(c, "Invalid token format, must be Bearer token")
		}

		return m.authenticate(c, tokenString, next)
	}
}

// AuthenticateSocket accepts the bearer header or, failing that, the token query parameter.
// It must run before the websocket upgrade so an anonymous client never gets a socket.
func (m *AuthMiddleware) AuthenticateSocket(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if tokenString, ok := strings.CutPrefix(c.Request().Header.Get(echo.HeaderAuthorization), bearerPrefix); ok && tokenString != "" {
			return m.authenticate(c, tokenString, next)
		}

		tokenString := c.QueryParam(tokenQueryParam)
		if tokenString == "" {
			return unauthenticated(c, "Access token is missing")
		}

		return m.authenticate(c, tokenString, next)
	}
}

func (m *AuthMiddleware) authenticate(c echo.Context, tokenString string, next echo.HandlerFunc) error {
	claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
	if err != nil {
		return unauthenticated(c, "Invalid or expired token")
	}

	userID, err := claims.UserID()
	if err != nil {
		return unauthenticated(c, "Invalid user ID format in token")
	}

	deliverycontext.SetUserID(c, userID)

	return next(c)
}

func unauthenticated(c echo.Context, message string) error {
	return response.Unauthorized(c, domainerrors.ErrUnauthenticated.ErrorCode(), message)
}
