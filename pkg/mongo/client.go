package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Client owns the process-wide connection pool to MongoDB.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials MongoDB and pings the primary. Every failure wraps ErrConnection.
func Connect(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("%w: uri is required", ErrConnection)
	}
	if cfg.Database == "" {
		return nil, fmt.Errorf("%w: database is required", ErrConnection)
	}

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = defaultConnectTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	return &Client{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// Database returns the configured database handle.
func (c *Client) Database() *mongo.Database {
	return c.db
}

// Collection returns a handle to the named collection of the configured database.
func (c *Client) Collection(name string) *mongo.Collection {
	return c.db.Collection(name)
}

// Ping checks that the primary is reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

// Disconnect closes all pooled connections.
func (c *Client) Disconnect(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil && !errors.Is(err, mongo.ErrClientDisconnected) {
		return err
	}
	return nil
}
