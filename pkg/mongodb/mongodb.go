package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// Config holds MongoDB connection configuration
type Config struct {
	URI            string
	Database       string
	ConnectTimeout time.Duration
	MaxPoolSize    uint64

	// Retry configuration
	MaxRetries    int
	RetryInterval time.Duration
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		URI:            "mongodb://localhost:27017",
		Database:       "event_db",
		ConnectTimeout: 10 * time.Second,
		MaxPoolSize:    100,
		MaxRetries:     3,
		RetryInterval:  2 * time.Second,
	}
}

// Client wraps mongo.Client with additional functionality
type Client struct {
	client *mongo.Client
	config *Config
}

// NewClient creates a new MongoDB client with retry logic
func NewClient(ctx context.Context, cfg *Config) (*Client, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1))

	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(cfg.RetryInterval)
		}

		client, err := mongo.Connect(ctx, opts)
		if err != nil {
			lastErr = err
			continue
		}

		pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
		lastErr = client.Ping(pingCtx, readpref.Primary())
		cancel()
		if lastErr == nil {
			return &Client{client: client, config: cfg}, nil
		}

		_ = client.Disconnect(ctx)
	}

	return nil, fmt.Errorf("failed to connect to mongodb after %d attempts: %w", cfg.MaxRetries+1, lastErr)
}

// Client returns the underlying mongo.Client
func (c *Client) Client() *mongo.Client {
	return c.client
}

// Database returns a handle to the configured database
func (c *Client) Database() *mongo.Database {
	return c.client.Database(c.config.Database)
}

// Collection returns a handle to a collection in the configured database
func (c *Client) Collection(name string) *mongo.Collection {
	return c.Database().Collection(name)
}

// HealthCheck performs a health check against the primary
func (c *Client) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := c.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("mongodb health check failed: %w", err)
	}
	return nil
}

// Close disconnects the client
func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}
