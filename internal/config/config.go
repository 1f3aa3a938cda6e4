// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package config

import (
	"time"
)

// Config is the root configuration for the Verdant server.
// It is loaded via Koanf v2 with layered sources (highest priority wins):
// environment variables > config file (config.yaml) > built-in defaults.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Share     ShareConfig     `koanf:"share"`
	Security  SecurityConfig  `koanf:"security"`
	Imagery   ImageryConfig   `koanf:"imagery"`
	Analytics AnalyticsConfig `koanf:"analytics"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
//
// The default port 4326 references EPSG:4326 (WGS 84), the coordinate
// system the dashboard's point and bbox selections are expressed in.
type ServerConfig struct {
	Host        string        `koanf:"host"`
	Port        int           `koanf:"port"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"`
}

// DatabaseConfig holds DuckDB settings for the analytics event store.
type DatabaseConfig struct {
	// Path is the DuckDB database file. ":memory:" is accepted for tests.
	Path string `koanf:"path"`

	// MaxMemory caps DuckDB memory usage (e.g. "2GB").
	MaxMemory string `koanf:"max_memory"`

	// Threads is the DuckDB thread count. 0 = runtime.NumCPU().
	Threads int `koanf:"threads"`
}

// ShareConfig holds BadgerDB settings for the share-state store.
type ShareConfig struct {
	// Path is the Badger data directory. Empty = in-memory (tests only).
	Path string `koanf:"path"`
}

// SecurityConfig holds the admin credential pair, session transport
// settings, and HTTP hardening knobs.
//
// The single username/password pair is a placeholder capability boundary
// for the admin surface, not a user-management system.
type SecurityConfig struct {
	AdminUsername string `koanf:"admin_username"`
	AdminPassword string `koanf:"admin_password"`

	// SessionTTL bounds the admin session cookie lifetime.
	SessionTTL time.Duration `koanf:"session_ttl"`

	// SessionStore selects the session backend: "memory" or "badger".
	SessionStore string `koanf:"session_store"`

	// SessionStorePath is the Badger directory when SessionStore=badger.
	SessionStorePath string `koanf:"session_store_path"`

	// CookieName carries the admin session token.
	CookieName string `koanf:"cookie_name"`

	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`

	CORSOrigins []string `koanf:"cors_origins"`
}

// ImageryConfig holds settings for the external imagery/raster provider.
type ImageryConfig struct {
	// ProviderURL is the base URL of the imagery service
	// (e.g. https://imagery.example.com).
	ProviderURL string `koanf:"provider_url"`

	// Timeout bounds a single provider request.
	Timeout time.Duration `koanf:"timeout"`

	// DefaultCloud is the cloud tolerance used when the caller omits one.
	DefaultCloud int `koanf:"default_cloud"`

	// RatePerSecond and RateBurst configure the client-side limiter that
	// protects provider quotas. RatePerSecond <= 0 disables limiting.
	RatePerSecond float64 `koanf:"rate_per_second"`
	RateBurst     int     `koanf:"rate_burst"`
}

// AnalyticsConfig holds event pipeline settings.
type AnalyticsConfig struct {
	// BufferSize is the async recorder's channel capacity. Events beyond
	// capacity are dropped (logging is best-effort by contract).
	BufferSize int `koanf:"buffer_size"`

	// RetentionDays deletes events older than the horizon when > 0.
	// 0 keeps events until an explicit clear (the default).
	RetentionDays int `koanf:"retention_days"`

	// CleanupInterval is how often the retention sweep runs.
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
}

// LoggingConfig holds zerolog settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config with all sensible default values.
// Defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        4326,
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Database: DatabaseConfig{
			Path:      "/data/verdant.duckdb",
			MaxMemory: "2GB",
			Threads:   0,
		},
		Share: ShareConfig{
			Path: "/data/share",
		},
		Security: SecurityConfig{
			AdminUsername:     "",
			AdminPassword:     "",
			SessionTTL:        24 * time.Hour,
			SessionStore:      "badger",
			SessionStorePath:  "/data/sessions",
			CookieName:        "verdant_admin_session",
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Imagery: ImageryConfig{
			ProviderURL:   "",
			Timeout:       30 * time.Second,
			DefaultCloud:  20,
			RatePerSecond: 5,
			RateBurst:     10,
		},
		Analytics: AnalyticsConfig{
			BufferSize:      1000,
			RetentionDays:   0, // Unbounded until explicitly cleared
			CleanupInterval: 24 * time.Hour,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// IsDevelopment returns true when the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment != "production"
}

// IsProduction returns true when the server runs in production mode.
// Session cookies are marked Secure only in production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
