package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTypeAccess is the only token type accepted by the HTTP layer.
const TokenTypeAccess = "access"

// Claims defines the custom claims for the access token.
type Claims struct {
	Username string `json:"username"`
	Type     string `json:"type"`
	jwt.RegisteredClaims
}

// UserID parses the subject claim.
func (c *Claims) UserID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateAccessToken signs a new access token for the user.
	GenerateAccessToken(userID uuid.UUID, username string) (string, error)

	// ValidateAccessToken verifies signature, expiry and token type.
	ValidateAccessToken(tokenString string) (*Claims, error)
}
