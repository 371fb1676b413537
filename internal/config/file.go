package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// fileConfig is the on-disk layout shared by JSON and TOML config files.
type fileConfig struct {
	Adapter struct {
		Address        string   `json:"address" toml:"address"`
		BasePath       string   `json:"base_path" toml:"base_path"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"adapter" toml:"adapter"`

	UI struct {
		Theme           string `json:"theme" toml:"theme"`
		DisableMarkdown bool   `json:"disable_markdown" toml:"disable_markdown"`
	} `json:"ui" toml:"ui"`

	Log struct {
		File  string `json:"file" toml:"file"`
		Level string `json:"level" toml:"level"`
	} `json:"log" toml:"log"`

	Server struct {
		HTTPAddress    string   `json:"http_address" toml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"server" toml:"server"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" toml:"dsn"`
		} `json:"db" toml:"db"`
	} `json:"storage" toml:"storage"`
}

// parseFile reads a config file. Files ending in ".toml" are decoded as TOML,
// everything else as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err = toml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding toml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return fc.toStructured(), nil
}

func (fc fileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			Address:        fc.Adapter.Address,
			BasePath:       fc.Adapter.BasePath,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
		},
		UI: UI{
			Theme:           fc.UI.Theme,
			DisableMarkdown: fc.UI.DisableMarkdown,
		},
		Log: Log{
			File:  fc.Log.File,
			Level: fc.Log.Level,
		},
		Server: Server{
			HTTPAddress:    fc.Server.HTTPAddress,
			RequestTimeout: time.Duration(fc.Server.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{DSN: fc.Storage.DB.DSN},
		},
	}
}

// Duration is a wrapper around time.Duration that supports unmarshaling from
// strings like "1h", "30s" in both JSON and TOML files.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d *Duration) UnmarshalText(b []byte) error {
	tmp, err := time.ParseDuration(strings.TrimSpace(string(b)))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
