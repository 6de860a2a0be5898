// Package config loads service settings from the environment, after reading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config is the full service configuration.
type Config struct {
	Port           string `env:"APP_URI" envDefault:"8888" validate:"required"`
	AllowedOrigin  string `env:"ALLOWED_ORIGIN" envDefault:"*" validate:"required"`
	ExportToken    string `env:"EXPORT_TOKEN"`
	SwaggerEnabled bool   `env:"SWAGGER_ENABLED" envDefault:"false"`

	Storage StorageConfig
	Redis   RedisConfig
	Mongo   MongoConfig
	Log     LogConfig

	MetricsAddr  string `env:"METRICS_ADDR"`
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

// StorageConfig picks the backend for each namespace.
type StorageConfig struct {
	Events      string `env:"EVENTS_STORE" envDefault:"redis" validate:"oneof=redis mongo memory"`
	Submissions string `env:"SUBMISSIONS_STORE" envDefault:"redis" validate:"oneof=redis mongo memory"`
}

type RedisConfig struct {
	Addr          string `env:"REDIS_URI" envDefault:"localhost:6379"`
	Password      string `env:"REDIS_PASSWORD"`
	EventsDB      int    `env:"REDIS_EVENTS_DB" envDefault:"0" validate:"gte=0,lte=15"`
	SubmissionsDB int    `env:"REDIS_SUBMISSIONS_DB" envDefault:"1" validate:"gte=0,lte=15"`
}

type MongoConfig struct {
	URI                   string `env:"MONGO_URI"`
	Database              string `env:"MONGO_DB" envDefault:"onboarding" validate:"required"`
	EventsCollection      string `env:"MONGO_EVENTS_COLLECTION" envDefault:"events" validate:"required"`
	SubmissionsCollection string `env:"MONGO_SUBMISSIONS_COLLECTION" envDefault:"submissions" validate:"required"`
}

type LogConfig struct {
	Level string `env:"LOG_LEVEL" envDefault:"info" validate:"oneof=debug info warn error"`
	File  string `env:"LOG_FILE"`
}

// ErrMissingExportToken is returned by RequireExportToken when EXPORT_TOKEN is empty.
var ErrMissingExportToken = errors.New("EXPORT_TOKEN environment variable not set")

var validate = validator.New()

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}
	return FromEnv()
}

// FromEnv parses and validates the process environment only.
func FromEnv() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("unable to parse environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints and cross-field requirements.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.usesBackend("mongo") && c.Mongo.URI == "" {
		return errors.New("invalid configuration: MONGO_URI is required when a store uses mongo")
	}
	if c.Storage.Events == "redis" && c.Storage.Submissions == "redis" && c.Redis.EventsDB == c.Redis.SubmissionsDB {
		return errors.New("invalid configuration: REDIS_EVENTS_DB and REDIS_SUBMISSIONS_DB must differ")
	}
	return nil
}

// RequireExportToken is checked by the HTTP server only; the CLI exporter reads the store directly.
func (c *Config) RequireExportToken() error {
	if c.ExportToken == "" {
		return ErrMissingExportToken
	}
	return nil
}

func (c *Config) usesBackend(name string) bool {
	return c.Storage.Events == name || c.Storage.Submissions == name
}
