// File: internal/shared/core.go
package shared

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the JWT payload carried by every bearer token this service issues.
type Claims struct {
	UserID uuid.UUID `json:"id"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies bearer tokens. The auth gate depends on
// this interface rather than on the concrete JWT implementation so that
// middleware and the auth module stay decoupled.
type TokenService interface {
	GenerateToken(userID uuid.UUID) (string, time.Time, error)
	ValidateToken(tokenString string) (*Claims, error)
}
