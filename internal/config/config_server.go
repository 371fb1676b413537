package config

import (
	"fmt"
	"time"
)

// ServerConfig is the reference notes server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// HTTPAddress is the listen address in "host:port" form.
	HTTPAddress string
	// BasePath is the notes collection path served by the router.
	BasePath string
	// RequestTimeout bounds each inbound request; zero disables it.
	RequestTimeout time.Duration
	// DSN selects the storage backend, see [DB].
	DSN string
	// LogLevel is a zerolog level name.
	LogLevel string
}

// GetServerConfig builds and validates the reference server config view.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	return &ServerConfig{
		HTTPAddress:    cfg.Server.HTTPAddress,
		BasePath:       cfg.Adapter.BasePath,
		RequestTimeout: cfg.Server.RequestTimeout,
		DSN:            cfg.Storage.DB.DSN,
		LogLevel:       cfg.Log.Level,
	}
}
