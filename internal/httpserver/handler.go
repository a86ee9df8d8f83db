package httpserver

import (
	"context"
	"slices"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "items-api/docs" // Swagger docs
	"items-api/internal/middleware"
	"items-api/internal/model"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	mw := middleware.New(srv.l, srv.allowedOrigins)

	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.AccessLog())
	srv.gin.Use(mw.Cors())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) && allowsAllOrigins(srv.allowedOrigins) {
		srv.l.Warnf(ctx, "CORS allows every origin in production, set cors.allowed_origins to restrict it")
		return
	}
	srv.l.Infof(ctx, "CORS mode: %s, origins: %v", srv.environment, srv.allowedOrigins)
}

func allowsAllOrigins(origins []string) bool {
	return len(origins) == 0 || slices.Contains(origins, "*")
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api.
func (srv HTTPServer) registerDomainRoutes() error {
	api := srv.gin.Group("/api")

	if err := srv.setupItemDomain(context.Background(), api); err != nil {
		return err
	}

	return nil
}
