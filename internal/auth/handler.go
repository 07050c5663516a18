// File: internal/auth/handler.go
package auth

import (
	"errors"
	"time"

	"cadastro_backend/internal/common"
	"cadastro_backend/internal/shared"
	"cadastro_backend/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionRequest is the login body.
type SessionRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SessionResponse carries the signed bearer token and a user summary.
type SessionResponse struct {
	User  SessionUser `json:"user"`
	Token string      `json:"token"`
	// ExpiresAt lets clients schedule a re-login instead of discovering the
	// expiry through a 401.
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionUser is the account summary echoed on login. Never includes the
// password or its hash.
type SessionUser struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Provider bool      `json:"provider"`
}

// Handler exposes the session (login) endpoint.
type Handler struct {
	users  user.Service
	tokens shared.TokenService
	logger *zap.Logger
}

// NewHandler creates a new auth handler.
func NewHandler(users user.Service, tokens shared.TokenService, logger *zap.Logger) *Handler {
	return &Handler{users: users, tokens: tokens, logger: logger}
}

// RegisterRoutes sets up the session routes. Login is public by definition.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/sessions", h.create)
}

func (h *Handler) create(c *gin.Context) {
	var req SessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			h.logger.Warn("Session rejected by validation",
				zap.Any("violations", common.ViolationMessages(ve)))
		}
		common.RespondWithError(c, common.ErrValidation)
		return
	}

	u, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}

	token, expiresAt, err := h.tokens.GenerateToken(u.ID)
	if err != nil {
		h.logger.Error("Failed to sign session token", zap.String("userID", u.ID.String()), zap.Error(err))
		common.RespondWithError(c, common.ErrInternalServer)
		return
	}

	common.RespondOK(c, SessionResponse{
		User: SessionUser{
			ID:       u.ID,
			Name:     u.Name,
			Email:    u.Email,
			Provider: u.Provider,
		},
		Token:     token,
		ExpiresAt: expiresAt,
	})
}
