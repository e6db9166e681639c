// Package mongo implements the fintrack store on MongoDB collections.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Client wraps the MongoDB client and the name of the database in use.
type Client struct {
	*mongo.Client
	dbName string
}

// Config is the MongoDB connection configuration.
type Config struct {
	URI      string        // Connection URI, e.g. "mongodb://localhost:27017"
	Database string        // Name of the database
	Timeout  time.Duration // Timeout for connecting, defaults to 10 seconds
}

// NewClient connects to MongoDB and verifies the connection.
func NewClient(cfg Config) (*Client, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("MongoDB URI cannot be empty")
	}
	if cfg.Database == "" {
		return nil, fmt.Errorf("database name cannot be empty")
	}

	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI).SetTimeout(cfg.Timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Client{
		Client: client,
		dbName: cfg.Database,
	}, nil
}

// Database returns the handle of the configured database.
func (c *Client) Database() *mongo.Database {
	return c.Client.Database(c.dbName)
}
