package middleware

import (
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Cors allows cross-origin requests. An empty list or "*" allows every origin.
func (m Middleware) Cors() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", HeaderRequestID},
		ExposeHeaders: []string{HeaderRequestID, "Location"},
		MaxAge:        12 * time.Hour,
	}
	if len(m.allowedOrigins) == 0 || slices.Contains(m.allowedOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = m.allowedOrigins
	}
	return cors.New(cfg)
}
