package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"items-api/pkg/log"
)

// Database is the slice of the persistence connector the server needs.
type Database interface {
	Collection(name string) *mongodriver.Collection
	Ping(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration
	allowedOrigins  []string

	// Persistence
	db             Database
	itemCollection string
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string

	Database       Database
	ItemCollection string
}

const defaultShutdownTimeout = 5 * time.Second

// New creates a new HTTPServer instance with every route registered.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		allowedOrigins:  cfg.AllowedOrigins,
		db:              cfg.Database,
		itemCollection:  cfg.ItemCollection,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	if srv.itemCollection == "" {
		return errors.New("item collection is required")
	}
	return nil
}

// Handler exposes the configured engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
