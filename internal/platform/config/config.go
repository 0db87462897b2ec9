// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (DB, Redis, tokens) via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Storage Drivers

const (
	// DriverPostgres persists accounts in PostgreSQL.
	DriverPostgres = "postgres"
	// DriverMemory keeps accounts in process memory (local runs only).
	DriverMemory = "memory"
)

// ErrMissingDatabaseURL is returned when the postgres driver is selected without a DSN.
var ErrMissingDatabaseURL = errors.New("config: DATABASE_URL is required for the postgres storage driver")

// # Configuration Schema

// Config holds all runtime configuration for the user API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"PORT"         envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Credential store
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"postgres"`
	DatabaseURL   string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis). Empty disables the login-attempt throttle.
	RedisURL string `env:"REDIS_URL"`

	// Token signing. The secret must be provisioned out-of-band.
	JWTSecret string        `env:"JWT_SECRET,required,notEmpty"`
	JWTTTL    time.Duration `env:"JWT_TTL"    envDefault:"168h"`
	JWTIssuer string        `env:"JWT_ISSUER" envDefault:"userapi"`

	// Login policy
	LoginErrorsDetailed bool          `env:"LOGIN_ERRORS_DETAILED" envDefault:"false"`
	LoginMaxAttempts    int           `env:"LOGIN_MAX_ATTEMPTS"    envDefault:"5"`
	LoginLockoutWindow  time.Duration `env:"LOGIN_LOCKOUT_WINDOW"  envDefault:"15m"`

	// Cross-Origin Resource Sharing. "*" allows any origin.
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate enforces cross-field rules that struct tags cannot express.
func (c *Config) validate() error {
	switch c.StorageDriver {
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return ErrMissingDatabaseURL
		}
	case DriverMemory:
	default:
		return fmt.Errorf("config: unknown STORAGE_DRIVER %q", c.StorageDriver)
	}

	if c.JWTTTL < 0 {
		return fmt.Errorf("config: JWT_TTL must not be negative, got %s", c.JWTTTL)
	}

	if c.LoginMaxAttempts < 1 {
		return fmt.Errorf("config: LOGIN_MAX_ATTEMPTS must be positive, got %d", c.LoginMaxAttempts)
	}

	if c.LoginLockoutWindow <= 0 {
		return fmt.Errorf("config: LOGIN_LOCKOUT_WINDOW must be positive, got %s", c.LoginLockoutWindow)
	}

	for i, origin := range c.AllowedOrigins {
		c.AllowedOrigins[i] = strings.TrimSpace(origin)
	}

	return nil
}

// UsesRedis reports whether a Redis URL was provided.
func (c *Config) UsesRedis() bool {
	return c.RedisURL != ""
}
