package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"items-api/config"
	_ "items-api/docs" // Swagger docs
	"items-api/internal/httpserver"
	"items-api/pkg/log"
	pkgMongo "items-api/pkg/mongo"
)

// @title       Items API
// @description CRUD API for items stored in MongoDB.
// @version     1
// @host        localhost:5000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Items API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. MongoDB
	mongoClient, err := pkgMongo.Connect(ctx, pkgMongo.Config{
		URI:            cfg.Mongo.URI,
		Database:       cfg.Mongo.Database,
		ConnectTimeout: cfg.Mongo.ConnectTimeout,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to connect to MongoDB: %v", err)
	}
	logger.Infof(ctx, "Connected to MongoDB database %q", cfg.Mongo.Database)

	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			logger.Warnf(disconnectCtx, "Failed to disconnect MongoDB: %v", err)
		}
	}()

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		Database:        mongoClient,
		ItemCollection:  cfg.Mongo.Collection,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize HTTP server: %v", err)
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Fatalf(ctx, "Failed to run server: %v", err)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
