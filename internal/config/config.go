package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no config file is given.
const DefaultPath = "teamsync.yaml"

// Catalog sources.
const (
	SourceEmbedded = "embedded"
	SourceMongo    = "mongo"
)

// Config holds all TeamSync configuration.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Catalog CatalogConfig `yaml:"catalog"`
	Mongo   MongoConfig   `yaml:"mongo"`
	Logging LoggingConfig `yaml:"logging"`
}

type ServerConfig struct {
	Port            string        `yaml:"port" validate:"required,numeric"`
	ReadTimeout     time.Duration `yaml:"read_timeout" validate:"gt=0"`
	WriteTimeout    time.Duration `yaml:"write_timeout" validate:"gt=0"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gt=0"`
}

type CatalogConfig struct {
	Source string `yaml:"source" validate:"oneof=embedded mongo"`
}

type MongoConfig struct {
	URI      string `yaml:"uri" validate:"required_if=Enabled true"`
	Database string `yaml:"database"`
	// Enabled is derived from the catalog source.
	Enabled bool `yaml:"-"`
}

type LoggingConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            "7521",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Catalog: CatalogConfig{Source: SourceEmbedded},
		Mongo: MongoConfig{
			URI:      "mongodb://localhost:27017",
			Database: "teamsync",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads path over the defaults, then .env, then environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	cfg.applyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = v
	}
	if v := os.Getenv("CATALOG_SOURCE"); v != "" {
		c.Catalog.Source = v
	}
	if v := os.Getenv("MONGODB_URI"); v != "" {
		c.Mongo.URI = v
	}
	if v := os.Getenv("MONGODB_DATABASE"); v != "" {
		c.Mongo.Database = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("LOG_DEVELOPMENT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.Development = b
		}
	}
}

var validate = validator.New()

// Validate checks the configuration after all overrides.
func (c *Config) Validate() error {
	c.Mongo.Enabled = c.Catalog.Source == SourceMongo
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Mongo.Enabled && c.Mongo.Database == "" {
		return errors.New("invalid config: mongo.database is required for the mongo catalog source")
	}
	return nil
}
