// File: internal/common/response.go
package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RespondWithError sends the uniform `{"error": "..."}` JSON body and aborts
// the request pipeline.
func RespondWithError(c *gin.Context, err error) {
	apiErr, ok := IsAPIError(err)
	if !ok {
		if l, exists := c.Get("logger"); exists {
			if logger, lok := l.(*zap.Logger); lok {
				logger.Error("Unhandled internal error being wrapped", zap.Error(err))
			}
		}
		apiErr = ErrInternalServer
	}
	c.AbortWithStatusJSON(apiErr.StatusCode, apiErr)
}

// RespondOK sends a 200 response whose body is the payload itself. The legacy
// contract has no success envelope.
func RespondOK(c *gin.Context, payload interface{}) {
	c.JSON(http.StatusOK, payload)
}
