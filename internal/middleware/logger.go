package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/guttosm/eodpulse/internal/logger"
)

// RequestLogger logs method, path, status, latency and request ID once the
// request has been handled. 5xx responses log at error level and 4xx at warn.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RequestID(), middleware.RequestLogger())
//
// Example log output:
//
//	{"level":"info","request_id":"123e4567-e89b-12d3-a456-426614174000","method":"GET","path":"/api/v1/query/eod/AAPL.US","status":200,"latency_ms":215,"message":"http_request"}
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		ev := eventFor(status)
		if msg := c.Errors.ByType(gin.ErrorTypeAny).String(); msg != "" {
			ev = ev.Str("errors", msg)
		}
		ev.
			Str("request_id", GetRequestID(c)).
			Str("method", method).
			Str("path", path).
			Int("status", status).
			Int64("latency_ms", time.Since(start).Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func eventFor(status int) *zerolog.Event {
	switch {
	case status >= 500:
		return logger.L().Error()
	case status >= 400:
		return logger.L().Warn()
	default:
		return logger.L().Info()
	}
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
