// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks invariants shared by every binary. View-specific checks
// live on [ClientConfig] and [ServerConfig].
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 || cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("negative request timeout")
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.HTTPAddress) == "" {
		return fmt.Errorf("%w: empty address", ErrInvalidAdapterConfigs)
	}
	if !strings.HasPrefix(cfg.Adapter.BasePath, "/") {
		return fmt.Errorf("%w: base path must start with /", ErrInvalidAdapterConfigs)
	}

	switch cfg.UI.Theme {
	case ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidUIConfigs, cfg.UI.Theme)
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if strings.TrimSpace(cfg.HTTPAddress) == "" {
		return fmt.Errorf("%w: empty listen address", ErrInvalidServerConfigs)
	}
	if !strings.HasPrefix(cfg.BasePath, "/") {
		return fmt.Errorf("%w: base path must start with /", ErrInvalidServerConfigs)
	}
	return nil
}
