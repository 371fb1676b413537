package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the notes API address used by the client.
	HTTPAddress string
	// BasePath is the notes collection path.
	BasePath string
	// RequestTimeout is the timeout for outbound client requests; zero
	// means no timeout.
	RequestTimeout time.Duration
}

// ClientUI holds terminal settings.
type ClientUI struct {
	// Theme is the initial theme name.
	Theme string
	// Markdown enables markdown rendering of note content.
	Markdown bool
}

// ClientLog holds client log settings.
type ClientLog struct {
	File  string
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the notes API location and request timeout.
	Adapter ClientAdapter
	// UI contains presentation settings.
	UI ClientUI
	// Log contains log destination and level.
	Log ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.Address,
			BasePath:       cfg.Adapter.BasePath,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		UI: ClientUI{
			Theme:    cfg.UI.Theme,
			Markdown: !cfg.UI.DisableMarkdown,
		},
		Log: ClientLog{
			File:  cfg.Log.File,
			Level: cfg.Log.Level,
		},
	}
}
