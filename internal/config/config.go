package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/kapu/pokedex-lookup-go/internal/constants"
)

type Config struct {
	Catalog CatalogConfig
	Server  ServerConfig
	Logging LoggingConfig
}

type CatalogConfig struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
}

type ServerConfig struct {
	Host    string
	Port    int
	GinMode string
}

func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type LoggingConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Catalog: CatalogConfig{
			BaseURL:   getEnv("CATALOG_BASE_URL", constants.APIConfig.CatalogBaseURL),
			Timeout:   time.Duration(getEnvInt("CATALOG_TIMEOUT_SECONDS", int(constants.APIConfig.CatalogTimeout/time.Second))) * time.Second,
			UserAgent: getEnv("CATALOG_USER_AGENT", constants.APIConfig.CatalogUserAgent),
		},
		Server: ServerConfig{
			Host:    getEnv("SERVER_HOST", "0.0.0.0"),
			Port:    getEnvInt("SERVER_PORT", 3000),
			GinMode: getEnv("GIN_MODE", "release"),
		},
		Logging: LoggingConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			File:       getEnv("LOG_FILE", "logs/pokedex.log"),
			MaxSizeMB:  getEnvInt("LOG_MAX_SIZE_MB", 10),
			MaxBackups: getEnvInt("LOG_MAX_BACKUPS", 3),
			MaxAgeDays: getEnvInt("LOG_MAX_AGE_DAYS", 7),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Catalog.BaseURL == "" {
		return fmt.Errorf("CATALOG_BASE_URL is required")
	}
	parsed, err := url.Parse(c.Catalog.BaseURL)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return fmt.Errorf("CATALOG_BASE_URL must be an absolute URL, got %q", c.Catalog.BaseURL)
	}
	if c.Catalog.Timeout <= 0 {
		return fmt.Errorf("CATALOG_TIMEOUT_SECONDS must be positive")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT out of range: %d", c.Server.Port)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
