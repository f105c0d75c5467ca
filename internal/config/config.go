package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where the server looks for its configuration file.
const DefaultPath = "configs/config.yaml"

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Catalog struct {
		Path            string `yaml:"path" env:"CATALOG_PATH"`
		Dir             string `yaml:"dir" env:"CATALOG_DIR"`
		PageSize        int    `yaml:"page_size" env:"CATALOG_PAGE_SIZE"`
		InitialCapacity int    `yaml:"initial_capacity" env:"CATALOG_INITIAL_CAPACITY"`
		LoadOnStart     bool   `yaml:"load_on_start" env:"CATALOG_LOAD_ON_START"`
	} `yaml:"catalog"`

	Auth struct {
		Secret          string `yaml:"secret" env:"AUTH_SECRET"`
		Issuer          string `yaml:"issuer" env:"AUTH_ISSUER"`
		TokenExpiration string `yaml:"token_expiration" env:"AUTH_TOKEN_EXPIRATION"`
	} `yaml:"auth"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables.
// A missing file is not an error; defaults and the environment still apply.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Catalog.Dir = "data"
	config.Catalog.PageSize = 10
	config.Catalog.InitialCapacity = 16
	config.Catalog.LoadOnStart = true

	config.Auth.Issuer = "coursecatalog"
	config.Auth.TokenExpiration = "1h"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if strings.TrimSpace(config.Server.Port) == "" {
		return fmt.Errorf("server port is required")
	}

	if strings.TrimSpace(config.Catalog.Dir) == "" {
		return fmt.Errorf("catalog directory is required")
	}

	if config.Catalog.PageSize < 1 {
		return fmt.Errorf("catalog page size must be positive, got %d", config.Catalog.PageSize)
	}

	if config.Catalog.InitialCapacity < 1 {
		return fmt.Errorf("catalog initial capacity must be positive, got %d", config.Catalog.InitialCapacity)
	}

	if _, err := time.ParseDuration(config.Auth.TokenExpiration); err != nil {
		return fmt.Errorf("invalid auth token expiration format: %w", err)
	}

	switch strings.ToLower(config.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("unsupported log format %q", config.Logging.Format)
	}

	return nil
}

// TokenTTL returns the parsed admin token lifetime.
func (c *Config) TokenTTL() time.Duration {
	d, err := time.ParseDuration(c.Auth.TokenExpiration)
	if err != nil {
		return time.Hour
	}
	return d
}

// AuthEnabled reports whether admin endpoints require a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.Auth.Secret != ""
}

// GetEnv gets an environment variable or returns a default value
func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
