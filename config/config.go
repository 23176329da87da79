// Package config handles configuration loading and defaults.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Default values.
const (
	DefaultHTTPAddr   = ":8080"
	DefaultDBPath     = "task_manager.db"
	DefaultJWTSecret  = "your-secret-key-change-in-production"
	DefaultJWTIssuer  = "task-manager"
	DefaultBcryptCost = 12

	configFileName = "taskmanager.toml"
)

// Config holds the full configuration for the task manager backend.
type Config struct {
	HTTPAddr   string `toml:"http_addr"`
	DBPath     string `toml:"db_path"`
	JWTSecret  string `toml:"jwt_secret"`
	JWTIssuer  string `toml:"jwt_issuer"`
	BcryptCost int    `toml:"bcrypt_cost"`
}

// SQLiteDSN returns the DSN the server modules open the database with. The
// auth and task modules each hold a connection to the same file, so the
// busy timeout is required to wait out the other writer's lock instead of
// failing with SQLITE_BUSY.
func (c *Config) SQLiteDSN() string {
	return fmt.Sprintf("file:%s?_busy_timeout=5000", c.DBPath)
}

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. Project config file (taskmanager.toml in current directory)
// 3. Environment variables
func Load() (*Config, error) {
	cfg := defaultConfig()

	if _, err := os.Stat(configFileName); err == nil {
		if err := loadConfigFile(cfg, configFileName); err != nil {
			return nil, fmt.Errorf("loading config file %s: %w", configFileName, err)
		}
	}

	if err := loadFromEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		HTTPAddr:   DefaultHTTPAddr,
		DBPath:     DefaultDBPath,
		JWTSecret:  DefaultJWTSecret,
		JWTIssuer:  DefaultJWTIssuer,
		BcryptCost: DefaultBcryptCost,
	}
}

// loadConfigFile merges values from a TOML file into cfg.
func loadConfigFile(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return err
	}
	return nil
}

// loadFromEnv overrides config from environment variables.
func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("TASKS_HTTP_ADDR"); v != "" {
		cfg.HTTPAddr = v
	}
	if v := os.Getenv("TASKS_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("TASKS_JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("TASKS_JWT_ISSUER"); v != "" {
		cfg.JWTIssuer = v
	}
	if v := os.Getenv("TASKS_BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing TASKS_BCRYPT_COST: %w", err)
		}
		cfg.BcryptCost = cost
	}
	return nil
}
