// Package config manages environment configuration.
//
// APP_ENV selects one of three profiles (development, test, production)
// that mirror how the service is deployed: each profile carries its own
// database file path, listen port, CORS origins, and app title.
// Individual values can then be overridden with TALLY_-prefixed
// environment variables, optionally loaded from a `.env` file.
//
// Responsibilities:
//   - Resolve the active profile from APP_ENV.
//   - Overlay TALLY_* env vars onto the profile defaults.
//   - Validate required values so the app fails fast on bad config.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: loads a `.env` file (if present) into the
	// process environment before any variable is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// Environment names recognized in APP_ENV.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// envPrefix is stripped from override variables, so
// TALLY_SERVER_PORT -> server.port.
const envPrefix = "TALLY_"

// Config is the root configuration object for the application.
type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env      string `koanf:"env" validate:"required,oneof=development test production"`
	AppTitle string `koanf:"app_title" validate:"required"`
	LogLevel string `koanf:"log_level" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins"`
}

// DatabaseConfig holds the sqlite store location. Path is a filesystem
// path; each environment profile points at a distinct file so dev, test,
// and production data never mix.
type DatabaseConfig struct {
	Path string `koanf:"path" validate:"required"`
}

// defaults returns the profile for the given environment name.
func defaults(environment string) *Config {
	cfg := &Config{
		Primary: Primary{
			Env:      environment,
			AppTitle: "Tally API",
			LogLevel: "info",
		},
		Server: ServerConfig{
			Port:         "8000",
			ReadTimeout:  10,
			WriteTimeout: 10,
			IdleTimeout:  60,
		},
		Database: DatabaseConfig{
			Path: "todos_development.sqlite",
		},
	}

	switch environment {
	case EnvTest:
		cfg.Primary.AppTitle = "Tally API - Test"
		cfg.Primary.LogLevel = "warn"
		cfg.Server.Port = "8001"
		cfg.Server.CORSAllowedOrigins = []string{"http://localhost:5174"}
		cfg.Database.Path = filepath.Join(os.TempDir(), "todos_test.sqlite")
	case EnvProduction:
		cfg.Primary.AppTitle = "Tally API - Production"
		cfg.Server.CORSAllowedOrigins = nil
		cfg.Database.Path = "todos_production.sqlite"
	default:
		cfg.Primary.LogLevel = "debug"
		cfg.Server.CORSAllowedOrigins = []string{"http://localhost:5173", "http://localhost:3000"}
	}

	return cfg
}

// New resolves the active profile and applies env overrides.
func New() (*Config, error) {
	environment := strings.TrimSpace(os.Getenv("APP_ENV"))
	if environment == "" {
		environment = EnvDevelopment
	}

	cfg := defaults(environment)

	k := koanf.New(".")

	// TALLY_SERVER_READ_TIMEOUT -> server.read_timeout. Only the first
	// underscore separates the section from the key.
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".", 1)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("loading env variables: %w", err)
	}

	// Unmarshal on top of the profile: only keys present in the
	// environment are overwritten.
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}
