// Package config provides configuration loading, merging, and validation
// facilities for the notes client and the reference notes server.
//
// Configuration is assembled from multiple sources in the following priority
// order (later sources override earlier non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. Config file (JSON or TOML, chosen by extension)
//
// The main entry points are [GetClientConfig] for the terminal client and
// [GetServerConfig] for the reference server.
package config
