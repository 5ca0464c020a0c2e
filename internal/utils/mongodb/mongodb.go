package mongodb

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Config parameters for MongoDB connection
type Config struct {
	URI      string `env:"MONGO_URI"`
	Scheme   string `env:"MONGO_SCHEME" envDefault:"mongodb" validate:"oneof=mongodb mongodb+srv"`
	Host     string `env:"MONGO_HOST" envDefault:"localhost:27017"`
	User     string `env:"DB_USER"`
	Password string `env:"DB_PASS"`
	DBName   string `env:"MONGO_DBNAME" envDefault:"travelGo" validate:"required"`
}

// ConnectionURI returns MONGO_URI when set, otherwise builds one from the parts.
func (c Config) ConnectionURI() string {
	if c.URI != "" {
		return c.URI
	}
	if c.User != "" && c.Password != "" {
		return fmt.Sprintf("%s://%s:%s@%s/?retryWrites=true&w=majority",
			c.Scheme, url.QueryEscape(c.User), url.QueryEscape(c.Password), c.Host)
	}
	return fmt.Sprintf("%s://%s", c.Scheme, c.Host)
}

// NewMongoDBConnection creates a new connection to MongoDB
func NewMongoDBConnection(ctx context.Context, cfg Config) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	// Free-form documents keep nested objects as maps so they render as JSON objects.
	opts := options.Client().
		ApplyURI(cfg.ConnectionURI()).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client, nil
}
