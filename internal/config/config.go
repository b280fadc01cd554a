// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"regexp"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Backends BackendConfig
	Search   SearchConfig
	Store    StoreConfig
	Logging  LoggingConfig
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
}

// BackendConfig holds the upstream service endpoints.
type BackendConfig struct {
	// FlightRPCURL is the base URL of the flight search JSON-RPC backend
	FlightRPCURL string `env:"FLIGHT_RPC_URL" envDefault:"http://localhost:9090"`

	// FlightRPCTimeout bounds a single window fetch
	FlightRPCTimeout time.Duration `env:"FLIGHT_RPC_TIMEOUT" envDefault:"5s"`

	// FlightRPCRate caps outgoing RPC requests per second
	FlightRPCRate int `env:"FLIGHT_RPC_RATE" envDefault:"10"`

	// TripAPIURL is the base URL of the trip backend (saved trips, text search)
	TripAPIURL string `env:"TRIP_API_URL" envDefault:"http://localhost:9091"`

	// TripAPITimeout bounds a single saved-trip backend request
	TripAPITimeout time.Duration `env:"TRIP_API_TIMEOUT" envDefault:"5s"`

	// TextSearchTimeout bounds a single free-text parse request
	TextSearchTimeout time.Duration `env:"TEXT_SEARCH_TIMEOUT" envDefault:"15s"`
}

// SearchConfig holds offer search pipeline settings.
type SearchConfig struct {
	// OriginAirport is the IATA code offers depart from
	OriginAirport string `env:"ORIGIN_AIRPORT" envDefault:"ICN"`

	// WindowCount is the number of candidate date windows per search
	WindowCount int `env:"SEARCH_WINDOW_COUNT" envDefault:"5"`

	// ResultLimit caps the aggregated offer list
	ResultLimit int `env:"SEARCH_RESULT_LIMIT" envDefault:"10"`

	// MockSeed seeds the fallback offer generator; 0 seeds from the clock
	MockSeed int64 `env:"MOCK_OFFER_SEED" envDefault:"0"`
}

// StoreConfig holds local persistence settings.
type StoreConfig struct {
	// LocalPath is the JSON file backing the local saved-trip store
	LocalPath string `env:"LOCAL_STORE_PATH" envDefault:"data/trips.json"`
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

// airportCodeRegex matches 3-letter IATA airport codes.
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

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
	// Validate server port
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	// Validate timeouts are positive
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Backends.FlightRPCTimeout <= 0 {
		return fmt.Errorf("FLIGHT_RPC_TIMEOUT must be positive")
	}
	if cfg.Backends.TripAPITimeout <= 0 {
		return fmt.Errorf("TRIP_API_TIMEOUT must be positive")
	}
	if cfg.Backends.TextSearchTimeout <= 0 {
		return fmt.Errorf("TEXT_SEARCH_TIMEOUT must be positive")
	}

	// Validate backend URLs
	if cfg.Backends.FlightRPCURL == "" {
		return fmt.Errorf("FLIGHT_RPC_URL must not be empty")
	}
	if cfg.Backends.TripAPIURL == "" {
		return fmt.Errorf("TRIP_API_URL must not be empty")
	}
	if cfg.Backends.FlightRPCRate <= 0 {
		return fmt.Errorf("FLIGHT_RPC_RATE must be positive")
	}

	// Validate search pipeline settings
	if !airportCodeRegex.MatchString(cfg.Search.OriginAirport) {
		return fmt.Errorf("ORIGIN_AIRPORT must be a 3-letter IATA code, got %q", cfg.Search.OriginAirport)
	}
	if cfg.Search.WindowCount < 1 {
		return fmt.Errorf("SEARCH_WINDOW_COUNT must be at least 1")
	}
	if cfg.Search.ResultLimit < 1 {
		return fmt.Errorf("SEARCH_RESULT_LIMIT must be at least 1")
	}

	// Validate local store path
	if cfg.Store.LocalPath == "" {
		return fmt.Errorf("LOCAL_STORE_PATH must not be empty")
	}

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	// Validate log format
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	// Validate app environment
	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
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
