// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Search    SearchConfig
	Cache     CacheConfig
	Suppliers SupplierConfig
	Alerts    AlertConfig
	History   HistoryConfig
	Logging   LoggingConfig
	App       AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"60s"`
}

// SearchConfig holds settings for the search pipeline.
type SearchConfig struct {
	// GlobalTimeout bounds the whole multi-room search
	GlobalTimeout time.Duration `env:"SEARCH_GLOBAL_TIMEOUT" envDefault:"45s"`

	// StaggerDelay spaces out room-configuration dispatches
	StaggerDelay time.Duration `env:"SEARCH_STAGGER_DELAY" envDefault:"200ms"`
}

// CacheConfig holds result cache settings.
type CacheConfig struct {
	// Backend selects the cache implementation (memory, redis)
	Backend string `env:"CACHE_BACKEND" envDefault:"memory"`

	// TTL is how long supplier results stay fresh
	TTL time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// RedisAddr is the Redis host:port, used when Backend is redis
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`

	// RedisPassword is the optional Redis password
	RedisPassword string `env:"REDIS_PASSWORD"`

	// RedisDB is the Redis database number
	RedisDB int `env:"REDIS_DB" envDefault:"0"`
}

// SupplierConfig holds per-supplier credentials. A supplier with an empty
// endpoint is considered unconfigured and is not registered.
type SupplierConfig struct {
	Solvex     SolvexConfig
	OpenGreece OpenGreeceConfig
	Filos      FilosConfig
}

// SolvexConfig holds Solvex gateway credentials.
type SolvexConfig struct {
	Endpoint string `env:"SOLVEX_ENDPOINT"`
	Username string `env:"SOLVEX_USERNAME"`
	Password string `env:"SOLVEX_PASSWORD"`
	Enabled  bool   `env:"SOLVEX_ENABLED" envDefault:"true"`
}

// OpenGreeceConfig holds OpenGreece gateway credentials.
type OpenGreeceConfig struct {
	Endpoint string `env:"OPENGREECE_ENDPOINT"`
	Username string `env:"OPENGREECE_USERNAME"`
	Password string `env:"OPENGREECE_PASSWORD"`
	Enabled  bool   `env:"OPENGREECE_ENABLED" envDefault:"true"`
}

// FilosConfig holds Filos feed credentials.
type FilosConfig struct {
	Endpoint string `env:"FILOS_ENDPOINT"`
	APIKey   string `env:"FILOS_API_KEY"`
	Enabled  bool   `env:"FILOS_ENABLED" envDefault:"true"`
}

// AlertConfig holds supplier failure alerting settings.
type AlertConfig struct {
	// TelegramToken enables the Telegram notifier when set
	TelegramToken string `env:"TELEGRAM_BOT_TOKEN"`

	// TelegramChatID is the chat the alerts are sent to
	TelegramChatID string `env:"TELEGRAM_CHAT_ID"`
}

// HistoryConfig holds search history persistence settings.
type HistoryConfig struct {
	// DSN is the Postgres connection string; empty disables history
	DSN string `env:"SEARCH_HISTORY_DSN"`
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
	if cfg.Search.GlobalTimeout <= 0 {
		return fmt.Errorf("SEARCH_GLOBAL_TIMEOUT must be positive")
	}
	if cfg.Search.StaggerDelay < 0 {
		return fmt.Errorf("SEARCH_STAGGER_DELAY cannot be negative")
	}

	// Validate cache settings
	validBackends := map[string]bool{"memory": true, "redis": true}
	if !validBackends[cfg.Cache.Backend] {
		return fmt.Errorf("CACHE_BACKEND must be one of: memory, redis; got %q", cfg.Cache.Backend)
	}
	if cfg.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}

	// A Telegram token without a chat id (or the reverse) is a misconfiguration
	if (cfg.Alerts.TelegramToken == "") != (cfg.Alerts.TelegramChatID == "") {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID must be set together")
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
