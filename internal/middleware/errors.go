package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/eodpulse/internal/domain/dto"
)

// ErrorHandler turns errors attached with c.Error into a JSON ErrorResponse
// when the handler did not write a body itself. The status already set on the
// writer is kept when it is an error status; otherwise 500 is used.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}
	status := c.Writer.Status()
	if status < http.StatusBadRequest {
		status = http.StatusInternalServerError
	}
	last := c.Errors.Last()
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(http.StatusText(status), last.Err))
}

// AbortWithError stops the chain and writes an ErrorResponse with message and
// the error text as details. The error is also recorded on the context so
// RequestLogger reports it.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	AbortWithResponse(c, status, dto.NewErrorResponse(message, err), err)
}

// AbortWithResponse is AbortWithError for a prebuilt body.
func AbortWithResponse(c *gin.Context, status int, body dto.ErrorResponse, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(status, body)
}
