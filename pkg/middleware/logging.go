package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"borderline-backend/pkg/logger"
)

// RequestLogger logs one line per request with method, path, status, duration
// and the correlation id set by RequestID.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.Infof("%s %s -> %d (%s) request_id=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			time.Since(start),
			c.GetString(HeaderRequestID),
		)
	}
}

// Recovery converts panics into the uniform JSON 500 envelope instead of an
// empty body, and logs the panic value server-side.
func Recovery(log logger.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		log.Errorf("panic handling %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	})
}
