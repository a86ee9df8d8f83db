package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"items-api/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestID propagates the caller's X-Request-ID or generates one, and stores it
// in the request context for the logger.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// AccessLog writes one line per request once the handler chain is done.
func (m Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		latency := time.Since(start)
		if errs := c.Errors.String(); errs != "" {
			m.l.Errorf(ctx, "%s %s %d %s: %s", c.Request.Method, c.Request.URL.Path, status, latency, errs)
			return
		}
		m.l.Infof(ctx, "%s %s %d %s", c.Request.Method, c.Request.URL.Path, status, latency)
	}
}
