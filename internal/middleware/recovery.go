package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/eodpulse/internal/domain/dto"
	"github.com/guttosm/eodpulse/internal/logger"
)

// RecoveryMiddleware turns a panic in a downstream handler into a 500. The
// stack goes to the log; the client only sees the request ID.
//
// Example:
//
//	router := gin.New()
//	router.Use(middleware.RequestID(), middleware.RecoveryMiddleware())
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			reqID := GetRequestID(c)
			logger.L().Error().
				Str("request_id", reqID).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Str("panic", fmt.Sprint(r)).
				Bytes("stack", debug.Stack()).
				Msg("panic recovered")

			body := dto.NewErrorResponse("internal server error", nil)
			if reqID != "" {
				body.ErrorDetails = "request_id=" + reqID
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, body)
		}()

		c.Next()
	}
}
