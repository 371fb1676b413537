package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-a notes API address (e.g. http://localhost:8080)
//	-base-path notes collection path (e.g. /api/notes)
//	-request-timeout outbound request timeout (e.g. "5s"); 0 disables it
//	-theme initial theme: light or dark
//	-no-markdown show note content as plain text
//	-log-file client log file path
//	-log-level log level (debug, info, warn, error)
//	-s reference server listen address in format [host]:[port]
//	-server-request-timeout inbound request timeout of the reference server
//	-d reference server storage DSN
//	-c/-config JSON or TOML file path with configs
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func newFlagSet() *flag.FlagSet {
	return flag.NewFlagSet("notes", flag.ContinueOnError)
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var adapterAddress string
	var basePath string
	var requestTimeout time.Duration
	var theme string
	var noMarkdown bool
	var logFile string
	var logLevel string
	var serverRequestTimeout time.Duration
	var databaseDSN string
	var configPath string

	fs.StringVar(&adapterAddress, "a", "", "Notes API address")
	fs.StringVar(&basePath, "base-path", "", "Notes collection path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 5s, 1m)")
	fs.StringVar(&theme, "theme", "", "Initial theme: light or dark")
	fs.BoolVar(&noMarkdown, "no-markdown", false, "Show note content as plain text")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.Var(&serverAddress, "s", "Server listen address host:port")
	fs.DurationVar(&serverRequestTimeout, "server-request-timeout", 0, "Server request timeout (e.g., 30s)")
	fs.StringVar(&databaseDSN, "d", "", "Server storage DSN")
	fs.StringVar(&configPath, "c", "", "Config file path (JSON or TOML)")
	fs.StringVar(&configPath, "config", "", "Config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Adapter: Adapter{
			Address:        adapterAddress,
			BasePath:       basePath,
			RequestTimeout: requestTimeout,
		},
		UI: UI{
			Theme:           theme,
			DisableMarkdown: noMarkdown,
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: serverRequestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		ConfigFilePath: configPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
