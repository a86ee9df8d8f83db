package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"items-api/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "items-api"

	readyTimeout = 2 * time.Second
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready only while the document store answers a ping.
// @Summary Readiness Check
// @Description Check if the API can reach its database
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Database unreachable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	if err := srv.db.Ping(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck: database ping failed: %v", err)
		response.ServiceUnavailable(c, gin.H{
			"status":  "not ready",
			"service": ServiceName,
		})
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": HealthVersion,
		"service": ServiceName,
	})
}
