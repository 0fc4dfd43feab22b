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
  - DI-Friendly: Passed to core components (fixtures, auth, report) via constructors.
  - Optional infrastructure: PostgreSQL and Redis are used only when their URLs are set.
*/
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/taibuivan/migrationboard/pkg/slug"
)

// # Configuration Schema

// Config holds all runtime configuration for the migration dashboard.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Catalog being migrated. CatalogName is also the URL base path.
	CatalogName    string `env:"CATALOG_NAME"    envDefault:"antiquewarehouse"`
	CatalogTitle   string `env:"CATALOG_TITLE"   envDefault:"Antique Warehouse"`
	CatalogDomain  string `env:"CATALOG_DOMAIN"  envDefault:"antiquewarehouse.nl"`
	SourcePlatform string `env:"SOURCE_PLATFORM" envDefault:"Custom PHP"`
	TargetPlatform string `env:"TARGET_PLATFORM" envDefault:"WordPress"`

	// FixtureDir holds the three JSON fixtures when no database is configured.
	FixtureDir string `env:"FIXTURE_DIR" envDefault:"./data/antiquewarehouse"`

	// Password gate. An empty password leaves the dashboard locked.
	DashboardPassword string `env:"DASHBOARD_PASSWORD"`
	SessionSecret     string `env:"SESSION_SECRET"`
	SessionCookie     string `env:"SESSION_COOKIE" envDefault:"aw_auth"`

	// Relational Database (PostgreSQL), optional fixture source
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Key-Value Cache (Redis), optional report cache
	RedisURL       string        `env:"REDIS_URL"`
	ReportCacheTTL time.Duration `env:"REPORT_CACHE_TTL" envDefault:"1h"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate rejects values the router or the report cannot work with.
func (c *Config) validate() error {
	if !slug.Valid(c.CatalogName) {
		return fmt.Errorf("config: CATALOG_NAME %q must be a lowercase slug", c.CatalogName)
	}
	if c.SessionCookie == "" {
		return errors.New("config: SESSION_COOKIE must not be empty")
	}
	if c.ReportCacheTTL < 0 {
		return errors.New("config: REPORT_CACHE_TTL must not be negative")
	}
	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// BasePath is the URL prefix every dashboard route lives under.
func (c *Config) BasePath() string {
	return "/" + c.CatalogName
}

// UsesDatabase reports whether fixtures are read from PostgreSQL.
func (c *Config) UsesDatabase() bool {
	return c.DatabaseURL != ""
}

// UsesRedis reports whether rendered reports are cached in Redis.
func (c *Config) UsesRedis() bool {
	return c.RedisURL != ""
}
