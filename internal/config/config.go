// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	Payment PaymentConfig
	Search  SearchConfig
	Logging LoggingConfig
	App     AppConfig
}

// ServerConfig holds the gateway's HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// BackendConfig holds the hotel backend client settings.
type BackendConfig struct {
	BaseURL string        `env:"BACKEND_BASE_URL" envDefault:"http://localhost:7000"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT" envDefault:"10s"`
}

// PaymentConfig holds the payment provider client settings.
type PaymentConfig struct {
	BaseURL        string        `env:"PAYMENT_BASE_URL" envDefault:"https://api.stripe.com"`
	PublishableKey string        `env:"PAYMENT_PUB_KEY"`
	Timeout        time.Duration `env:"PAYMENT_TIMEOUT" envDefault:"15s"`
}

// SearchConfig holds search pipeline settings.
type SearchConfig struct {
	// DebounceDelay is how long criteria edits settle before a query is emitted
	DebounceDelay time.Duration `env:"SEARCH_DEBOUNCE_DELAY" envDefault:"300ms"`

	// DraftDir is where the search draft is persisted across restarts.
	// Empty keeps the draft in memory only.
	DraftDir string `env:"SEARCH_DRAFT_DIR" envDefault:".storefront"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}

	if err := validateBaseURL("BACKEND_BASE_URL", cfg.Backend.BaseURL); err != nil {
		return err
	}
	if cfg.Backend.Timeout <= 0 {
		return fmt.Errorf("BACKEND_TIMEOUT must be positive")
	}

	if err := validateBaseURL("PAYMENT_BASE_URL", cfg.Payment.BaseURL); err != nil {
		return err
	}
	if cfg.Payment.Timeout <= 0 {
		return fmt.Errorf("PAYMENT_TIMEOUT must be positive")
	}

	if cfg.Search.DebounceDelay <= 0 {
		return fmt.Errorf("SEARCH_DEBOUNCE_DELAY must be positive")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// validateBaseURL requires an absolute http(s) URL.
func validateBaseURL(name, value string) error {
	u, err := url.Parse(value)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", name, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%s must be an absolute http(s) URL, got %q", name, value)
	}
	if u.Host == "" {
		return fmt.Errorf("%s must include a host, got %q", name, value)
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}
