package auth

import (
	"testing"
	"time"

	"cadastro_backend/internal/config"
	"cadastro_backend/internal/shared"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenService(secret string, expiresIn time.Duration) *JWTService {
	return NewJWTService(&config.Config{JWTSecret: secret, JWTExpiresIn: expiresIn})
}

func TestJWTService_roundTrip(t *testing.T) {
	svc := newTokenService("test-secret", time.Hour)
	userID := uuid.New()

	token, expiresAt, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
}

func TestJWTService_wrongSecret(t *testing.T) {
	issuer := newTokenService("secret-a", time.Hour)
	verifier := newTokenService("secret-b", time.Hour)

	token, _, err := issuer.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_tamperedToken(t *testing.T) {
	svc := newTokenService("test-secret", time.Hour)
	token, _, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateToken(token + "x")
	assert.Error(t, err)

	_, err = svc.ValidateToken("not.a.jwt")
	assert.Error(t, err)
}

func TestJWTService_expiredToken(t *testing.T) {
	svc := newTokenService("test-secret", time.Hour)

	claims := &shared.Claims{
		UserID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestJWTService_rejectsForeignSigningMethod(t *testing.T) {
	svc := newTokenService("test-secret", time.Hour)

	// Same key, different algorithm header.
	claims := &shared.Claims{UserID: uuid.New()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_rejectsNilUserID(t *testing.T) {
	svc := newTokenService("test-secret", time.Hour)

	claims := &shared.Claims{
		UserID: uuid.Nil,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestNewJWTService_defaultExpiry(t *testing.T) {
	svc := newTokenService("test-secret", 0)
	assert.Equal(t, 7*24*time.Hour, svc.expiresIn)
}
