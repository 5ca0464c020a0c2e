package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"

	"travel-go/service-api/internal/utils/mongodb"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	MongoDB  mongodb.Config
	Auth     AuthConfig
	Redis    RedisConfig
	Minio    MinioConfig
	Features FeatureConfig
	Log      LogConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string `env:"PORT" envDefault:"5000" validate:"required"`
	Mode string `env:"GIN_MODE" envDefault:"release" validate:"oneof=debug release test"`
}

// AuthConfig holds the token signing settings
type AuthConfig struct {
	JWTSecret string        `env:"ACCESS_TOKEN_SECRET" validate:"required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"1h" validate:"gt=0"`
}

// RedisConfig enables the catalog cache when URL is set
type RedisConfig struct {
	URL      string        `env:"REDIS_URL"`
	CacheTTL time.Duration `env:"CACHE_TTL" envDefault:"30s" validate:"gt=0"`
}

// MinioConfig enables service media uploads when Endpoint is set
type MinioConfig struct {
	Endpoint  string `env:"MINIO_ENDPOINT"`
	AccessKey string `env:"MINIO_ACCESS_KEY" validate:"required_with=Endpoint"`
	SecretKey string `env:"MINIO_SECRET_KEY" validate:"required_with=Endpoint"`
	Bucket    string `env:"MINIO_BUCKET" envDefault:"travel-go-media"`
	UseSSL    bool   `env:"MINIO_USE_SSL" envDefault:"false"`
	PublicURL string `env:"MINIO_PUBLIC_URL"`
}

// FeatureConfig selects which optional route groups are registered
type FeatureConfig struct {
	TokenIssue bool `env:"FEATURE_TOKEN_ISSUE" envDefault:"true"`
	ReviewEdit bool `env:"FEATURE_REVIEW_EDIT" envDefault:"true"`
	// ServiceMedia is "auto" (on when MinIO is configured) or "false".
	ServiceMedia string `env:"FEATURE_SERVICE_MEDIA" envDefault:"auto" validate:"oneof=auto false"`
}

// LogConfig selects the log level and output format
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn error"`
	Format string `env:"LOG_FORMAT" envDefault:"auto" validate:"oneof=auto console json"`
}

// LoadConfig reads an optional .env file and then the process environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()
	return NewConfig()
}

// NewConfig creates a new Config from the process environment
func NewConfig() (*Config, error) {
	cfg := new(Config)
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MediaEnabled reports whether an object store is configured and media
// routes are not switched off.
func (c *Config) MediaEnabled() bool {
	return c.Minio.Endpoint != "" && c.Features.ServiceMedia != "false"
}

// CacheEnabled reports whether a Redis cache is configured.
func (c *Config) CacheEnabled() bool {
	return c.Redis.URL != ""
}
