// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the configuration for values that would prevent the
// server from operating correctly. It returns the first problem found
// with enough context to fix it.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be 1-65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}

	env := strings.ToLower(c.Server.Environment)
	if env != "development" && env != "production" {
		return fmt.Errorf("server.environment must be 'development' or 'production', got %q", c.Server.Environment)
	}
	c.Server.Environment = env

	if c.Database.Path == "" {
		return fmt.Errorf("database.path is required (set DUCKDB_PATH)")
	}

	switch c.Security.SessionStore {
	case "memory", "badger":
	default:
		return fmt.Errorf("security.session_store must be 'memory' or 'badger', got %q", c.Security.SessionStore)
	}
	if c.Security.SessionStore == "badger" && c.Security.SessionStorePath == "" {
		return fmt.Errorf("security.session_store_path is required when session_store=badger")
	}
	if c.Security.SessionTTL <= 0 {
		return fmt.Errorf("security.session_ttl must be positive, got %s", c.Security.SessionTTL)
	}
	if c.Security.CookieName == "" {
		return fmt.Errorf("security.cookie_name must not be empty")
	}

	// The admin surface cannot be reached without a credential pair, but an
	// operator may run the public map/share surface alone in development.
	if c.IsProduction() {
		if c.Security.AdminUsername == "" || c.Security.AdminPassword == "" {
			return fmt.Errorf("security.admin_username and security.admin_password are required in production (set ADMIN_USERNAME / ADMIN_PASSWORD)")
		}
		if len(c.Security.AdminPassword) < 8 {
			return fmt.Errorf("security.admin_password must be at least 8 characters")
		}
	}

	if c.Imagery.ProviderURL != "" {
		u, err := url.Parse(c.Imagery.ProviderURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("imagery.provider_url must be an absolute URL, got %q", c.Imagery.ProviderURL)
		}
	}
	if c.Imagery.DefaultCloud < 0 || c.Imagery.DefaultCloud > 100 {
		return fmt.Errorf("imagery.default_cloud must be 0-100, got %d", c.Imagery.DefaultCloud)
	}
	if c.Imagery.Timeout <= 0 {
		return fmt.Errorf("imagery.timeout must be positive, got %s", c.Imagery.Timeout)
	}

	if c.Analytics.BufferSize < 1 {
		return fmt.Errorf("analytics.buffer_size must be at least 1, got %d", c.Analytics.BufferSize)
	}
	if c.Analytics.RetentionDays < 0 {
		return fmt.Errorf("analytics.retention_days must be >= 0, got %d", c.Analytics.RetentionDays)
	}
	if c.Analytics.CleanupInterval <= 0 {
		return fmt.Errorf("analytics.cleanup_interval must be positive, got %s", c.Analytics.CleanupInterval)
	}

	return nil
}
