// Verdant - Vegetation Index Dashboard and Imagery Analytics
// Copyright 2026 Verdant contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/verdantgeo/verdant

// Package config loads and validates the Verdant server configuration.
//
// Configuration is layered via Koanf v2: built-in defaults, then an
// optional YAML file (config.yaml or CONFIG_PATH), then environment
// variables. Only explicitly mapped environment variables are read so
// arbitrary environment noise never reaches the configuration.
package config
