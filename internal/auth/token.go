// File: internal/auth/token.go
package auth

import (
	"errors"
	"time"

	"cadastro_backend/internal/config"
	"cadastro_backend/internal/shared"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// JWTService implements shared.TokenService with HS256 signatures.
type JWTService struct {
	secret    []byte
	expiresIn time.Duration
}

var _ shared.TokenService = (*JWTService)(nil)

// NewJWTService creates the token service from application configuration.
func NewJWTService(cfg *config.Config) *JWTService {
	expiresIn := cfg.JWTExpiresIn
	if expiresIn <= 0 {
		expiresIn = 7 * 24 * time.Hour
	}
	return &JWTService{secret: []byte(cfg.JWTSecret), expiresIn: expiresIn}
}

// GenerateToken builds and signs a token asserting the given user identity.
func (s *JWTService) GenerateToken(userID uuid.UUID) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(s.expiresIn)
	claims := &shared.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateToken verifies signature and expiry and returns the decoded claims.
func (s *JWTService) ValidateToken(tokenString string) (*shared.Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &shared.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := parsed.Claims.(*shared.Claims)
	if !ok || !parsed.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.UserID == uuid.Nil {
		return nil, errors.New("token carries no user identity")
	}
	return claims, nil
}
