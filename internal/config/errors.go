package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing address or a base path without a leading slash).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidUIConfigs indicates an unknown theme name.
	ErrInvalidUIConfigs = errors.New("invalid ui configuration")
	// ErrInvalidServerConfigs indicates invalid reference server settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
