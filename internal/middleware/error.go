// File: internal/middleware/error.go
package middleware

import (
	"net/http"

	"cadastro_backend/internal/common"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler converts errors attached via c.Error and unhandled 404/405
// statuses into the uniform `{"error": "..."}` body.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			ginErr := c.Errors[0]
			apiErr, isAPIErr := common.IsAPIError(ginErr.Err)
			if !isAPIErr {
				logger.Error("Unhandled application error",
					zap.Error(ginErr.Err),
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", c.GetString(RequestIDContextKey)),
				)
				apiErr = common.ErrInternalServer
			}
			c.AbortWithStatusJSON(apiErr.StatusCode, apiErr)
			return
		}

		if c.Writer.Status() == http.StatusNotFound && c.Writer.Size() <= 0 {
			c.AbortWithStatusJSON(http.StatusNotFound, common.ErrNotFound.WithMessage("Rota não encontrada"))
			return
		}
		if c.Writer.Status() == http.StatusMethodNotAllowed && c.Writer.Size() <= 0 {
			c.AbortWithStatusJSON(http.StatusMethodNotAllowed, common.NewAPIError(http.StatusMethodNotAllowed, "Método não permitido"))
			return
		}
	}
}
