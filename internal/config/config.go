// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Built-in defaults applied before any other source.
const (
	DefaultAdapterAddress = "http://localhost:8080"
	DefaultBasePath       = "/api/notes"
	DefaultServerAddress  = "localhost:8080"
	DefaultLogLevel       = "debug"

	ThemeLight = "light"
	ThemeDark  = "dark"
)

// StructuredConfig is the top-level configuration container. It aggregates
// all sub-configurations and is populated by merging values from defaults,
// environment variables, command-line flags, and an optional config file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the location of the Remote Notes Service and the
	// outbound request settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// UI holds terminal presentation settings.
	UI UI `envPrefix:"UI_"`

	// Log holds log destination and verbosity.
	Log Log `envPrefix:"LOG_"`

	// Server holds listen settings of the reference notes server.
	Server Server `envPrefix:"SERVER_"`

	// Storage holds persistence settings of the reference notes server.
	Storage Storage `envPrefix:"STORAGE_"`

	// ConfigFilePath is the optional path to a JSON or TOML configuration
	// file. When non-empty, the file is parsed and merged on top of the
	// values already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	ConfigFilePath string `env:"CONFIG"`
}

// Adapter describes how the client reaches the Remote Notes Service.
type Adapter struct {
	// Address is the scheme and host of the notes API
	// (e.g. "http://localhost:8080"). A bare "host:port" is accepted.
	// Env: ADAPTER_ADDRESS
	Address string `env:"ADDRESS"`

	// BasePath is the collection path of the notes resource
	// (e.g. "/api/notes").
	// Env: ADAPTER_BASE_PATH
	BasePath string `env:"BASE_PATH"`

	// RequestTimeout bounds a single outbound request. Zero disables the
	// timeout, so a hung request keeps its loading flag set.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// UI holds terminal presentation settings.
type UI struct {
	// Theme is the initial colour theme: "light" or "dark".
	// Env: UI_THEME
	Theme string `env:"THEME"`

	// DisableMarkdown turns off markdown rendering of note content in
	// view mode.
	// Env: UI_DISABLE_MARKDOWN
	DisableMarkdown bool `env:"DISABLE_MARKDOWN"`
}

// Log holds logging settings.
type Log struct {
	// File is the client log file. Empty means "logs" next to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name (e.g. "debug", "info").
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Server holds network and timeout settings of the reference notes server.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the reference server storage.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend: empty keeps notes in memory, a
	// "postgres://" URL opens PostgreSQL through pgx, anything else is
	// treated as a SQLite file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (last source wins for
// non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. Config file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withFile().
		build()
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			Address:  DefaultAdapterAddress,
			BasePath: DefaultBasePath,
		},
		UI: UI{
			Theme: ThemeLight,
		},
		Log: Log{
			Level: DefaultLogLevel,
		},
		Server: Server{
			HTTPAddress: DefaultServerAddress,
		},
	}
}
