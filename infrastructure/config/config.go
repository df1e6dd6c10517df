// Package config loads application configuration from the environment,
// optionally layered over a YAML file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string `yaml:"server_address"`
	Environment   string `yaml:"environment"`

	// MongoDB configuration
	MongoURI        string `yaml:"mongo_uri"`
	MongoDatabase   string `yaml:"mongo_database"`
	MongoCollection string `yaml:"mongo_collection"`

	// Authentication: the two fixed login constants are compared as
	// exact strings, so "07" and "7" are different values.
	LoginDay      string `yaml:"login_day"`
	LoginMonth    string `yaml:"login_month"`
	SessionSecret string `yaml:"session_secret"`

	// Logging and features
	LogLevel   string `yaml:"log_level"`
	EnableCORS bool   `yaml:"enable_cors"`
}

// LoadConfig loads configuration from the environment. When CONFIG_FILE
// points at a YAML file its values sit under the environment variables:
// file first, env overrides.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress:   ":8080",
		Environment:     "development",
		MongoURI:        "mongodb://localhost:27017",
		MongoDatabase:   "ourmemories",
		MongoCollection: "memories",
		LoginDay:        "13",
		LoginMonth:      "07",
		SessionSecret:   "",
		LogLevel:        "info",
		EnableCORS:      true,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	overrideEnv(&cfg.ServerAddress, "SERVER_ADDRESS")
	overrideEnv(&cfg.Environment, "ENVIRONMENT")
	overrideEnv(&cfg.MongoURI, "MONGODB_URI")
	overrideEnv(&cfg.MongoDatabase, "MONGODB_DATABASE")
	overrideEnv(&cfg.MongoCollection, "MONGODB_COLLECTION")
	overrideEnv(&cfg.LoginDay, "LOGIN_DAY")
	overrideEnv(&cfg.LoginMonth, "LOGIN_MONTH")
	overrideEnv(&cfg.SessionSecret, "SESSION_SECRET")
	overrideEnv(&cfg.LogLevel, "LOG_LEVEL")
	overrideEnvBool(&cfg.EnableCORS, "ENABLE_CORS")

	if cfg.SessionSecret == "" && cfg.IsDevelopment() {
		cfg.SessionSecret = "development-secret-change-in-production"
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.LoginDay == "" || c.LoginMonth == "" {
		return fmt.Errorf("LOGIN_DAY and LOGIN_MONTH are required")
	}
	if c.Environment == "production" {
		if c.SessionSecret == "" {
			return fmt.Errorf("SESSION_SECRET is required in production")
		}
		if c.MongoURI == "" {
			return fmt.Errorf("MONGODB_URI is required")
		}
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func overrideEnv(target *string, key string) {
	if value := os.Getenv(key); value != "" {
		*target = value
	}
}

func overrideEnvBool(target *bool, key string) {
	if value := os.Getenv(key); value != "" {
		*target = value == "true" || value == "1" || value == "yes"
	}
}
