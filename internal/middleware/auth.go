// File: internal/middleware/auth.go
package middleware

import (
	"strings"

	"cadastro_backend/internal/common"
	"cadastro_backend/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// AuthorizationHeader is the header name carrying the bearer token.
	AuthorizationHeader = "Authorization"
	// UserIDKey is the context key for the authenticated user's ID.
	UserIDKey = "userID"
)

var (
	errTokenNotFound = common.NewAPIError(401, "token não encontrado")
	errTokenInvalid  = common.NewAPIError(401, "token invalido")
)

// AuthMiddleware gates protected routes. The header format is
// "<scheme> <token>"; the scheme is discarded and only the token value is
// verified. Every request is independently re-verified, no caching.
func AuthMiddleware(tokenService shared.TokenService, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			logger.Debug("Authorization header missing", zap.String("path", c.Request.URL.Path))
			common.RespondWithError(c, errTokenNotFound)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 {
			logger.Debug("Authorization header carries no token", zap.String("path", c.Request.URL.Path))
			common.RespondWithError(c, errTokenInvalid)
			return
		}

		claims, err := tokenService.ValidateToken(parts[1])
		if err != nil {
			// Malformed, bad signature and expired all collapse into the same
			// authentication failure on the wire.
			logger.Warn("Token validation failed", zap.Error(err))
			common.RespondWithError(c, errTokenInvalid)
			return
		}

		c.Set(UserIDKey, claims.UserID)
		c.Next()
	}
}

// GetUserIDFromContext retrieves the authenticated user ID set by
// AuthMiddleware. Returns uuid.Nil when absent.
func GetUserIDFromContext(c *gin.Context) uuid.UUID {
	val, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil
	}
	userID, ok := val.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return userID
}
