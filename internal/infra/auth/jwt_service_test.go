package auth

import (
	"testing"
	"time"

	"delishub/config"
	"delishub/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAccessSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{AccessTokenTTL: time.Hour}}
	cfg.SecretKey.Access = testAccessSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	jwtSvc, ok := svc.(*jwtService)
	require.True(t, ok)

	return jwtSvc
}

func TestJWTService_GenerateAndValidateAccessToken(t *testing.T) {
	jwtService := newTestJWTService(t)
	userID := uuid.New()

	accessToken, err := jwtService.GenerateAccessToken(userID, "chef")
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	claims, err := jwtService.ValidateAccessToken(accessToken)
	require.NoError(t, err)

	gotID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, "chef", claims.Username)
	assert.Equal(t, service.TokenTypeAccess, claims.Type)
	assert.Equal(t, time.Hour, claims.ExpiresAt.Sub(claims.IssuedAt.Time))
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = testAccessSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, svc.(*jwtService).accessTTL)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService := newTestJWTService(t)

	_, err := jwtService.ValidateAccessToken("invalid.token.here")
	assert.Error(t, err)

	_, err = jwtService.ValidateAccessToken("")
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService := newTestJWTService(t)
	issued := time.Now().Add(-2 * time.Hour)
	jwtService.now = func() time.Time { return issued }

	token, err := jwtService.GenerateAccessToken(uuid.New(), "chef")
	require.NoError(t, err)

	jwtService.now = time.Now
	_, err = jwtService.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	jwtService := newTestJWTService(t)

	claims := &service.Claims{
		Type: service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("another_secret"))
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsNonAccessType(t *testing.T) {
	jwtService := newTestJWTService(t)

	claims := &service.Claims{
		Type: "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testAccessSecret))
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsNoneAlgorithm(t *testing.T) {
	jwtService := newTestJWTService(t)

	claims := &service.Claims{
		Type: service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsMalformedSubject(t *testing.T) {
	jwtService := newTestJWTService(t)

	claims := &service.Claims{
		Type: service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "not-a-uuid",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testAccessSecret))
	require.NoError(t, err)

	_, err = jwtService.ValidateAccessToken(token)
	assert.Error(t, err)
}
