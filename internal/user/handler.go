// File: internal/user/handler.go
package user

import (
	"errors"

	"cadastro_backend/internal/common"
	"cadastro_backend/internal/config"
	"cadastro_backend/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler holds dependencies for user handlers.
type Handler struct {
	service Service
	cfg     *config.Config
	logger  *zap.Logger
}

// NewHandler creates a new user handler.
func NewHandler(service Service, cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{service: service, cfg: cfg, logger: logger}
}

// RegisterRoutes sets up the routes for account operations. Creation is
// public; updates are gated by the auth middleware.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	router.POST("/users", h.create)
	router.PUT("/users", authMW, h.update)
}

func (h *Handler) create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			h.logger.Warn("Account creation rejected by validation",
				zap.Any("violations", common.ViolationMessages(ve)))
		} else {
			h.logger.Warn("Account creation: malformed request body", zap.Error(err))
		}
		common.RespondWithError(c, common.ErrValidation)
		return
	}

	u, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, ToCreateResponse(u))
}

func (h *Handler) update(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Account update: malformed request body", zap.Error(err))
		common.RespondWithError(c, common.ErrValidation)
		return
	}

	if violations := req.Validate(); len(violations) > 0 {
		h.logger.Warn("Account update rejected by validation", zap.Any("violations", violations))
		common.RespondWithError(c, common.ErrValidation)
		return
	}

	userID := middleware.GetUserIDFromContext(c)
	if userID == uuid.Nil {
		h.logger.Error("User ID not found in context for update", zap.String("path", c.Request.URL.Path))
		common.RespondWithError(c, common.ErrInternalServer)
		return
	}

	u, err := h.service.Update(c.Request.Context(), userID, req)
	if err != nil {
		common.RespondWithError(c, err)
		return
	}
	common.RespondOK(c, ToUpdateResponse(u, h.cfg.AppURL))
}
