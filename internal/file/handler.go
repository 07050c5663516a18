// File: internal/file/handler.go
package file

import (
	"cadastro_backend/internal/common"
	"cadastro_backend/internal/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler exposes the avatar upload endpoint.
type Handler struct {
	service *Service
	cfg     *config.Config
	logger  *zap.Logger
}

// NewHandler creates a new file handler.
func NewHandler(service *Service, cfg *config.Config, logger *zap.Logger) *Handler {
	return &Handler{service: service, cfg: cfg, logger: logger}
}

// RegisterRoutes sets up the routes for file operations. Uploads require an
// authenticated caller.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup, authMW gin.HandlerFunc) {
	router.POST("/files", authMW, h.upload)
}

func (h *Handler) upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.logger.Warn("File upload: multipart field missing", zap.Error(err))
		common.RespondWithError(c, common.ErrValidation)
		return
	}

	stored, err := h.service.Store(c.Request.Context(), fileHeader)
	if err != nil {
		h.logger.Error("File upload failed", zap.Error(err))
		common.RespondWithError(c, common.ErrBadRequest.WithMessage("Não foi possível salvar o arquivo"))
		return
	}

	common.RespondOK(c, ToResponse(stored, h.cfg.AppURL))
}
