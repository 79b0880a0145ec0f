// Package mcpserver exposes the Stack Overflow tools over the Model Context
// Protocol, on stdio or streamable HTTP.
package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json5 "github.com/yosuke-furukawa/json5/encoding/json5"
	"gopkg.in/yaml.v3"

	"github.com/beeper/stackoverflow-mcp/pkg/stackexchange"
)

// Server identity reported during the MCP handshake and on /health.
const (
	ServerName = "stackoverflow-mcp"
	Version    = "1.0.0"
)

// Transports the server can be exposed over.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// DefaultListenAddr is used by the HTTP transport when no address is set.
const DefaultListenAddr = ":8080"

// Config ties together server identity, transport selection and upstream
// API settings.
type Config struct {
	Name          string               `yaml:"name" json:"name"`
	Transport     string               `yaml:"transport" json:"transport"`
	Listen        string               `yaml:"listen" json:"listen"`
	StackExchange stackexchange.Config `yaml:"stack_exchange" json:"stack_exchange"`
	Logging       LogConfig            `yaml:"logging" json:"logging"`
}

// LogConfig controls log level and output format.
type LogConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// WithDefaults fills unset fields with working defaults.
func (c Config) WithDefaults() Config {
	if c.Name == "" {
		c.Name = ServerName
	}
	if c.Transport == "" {
		c.Transport = TransportStdio
	}
	if c.Listen == "" {
		c.Listen = DefaultListenAddr
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}
	c.StackExchange = c.StackExchange.WithDefaults()
	return c
}

// Validate rejects configurations the server cannot run with.
func (c Config) Validate() error {
	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("unsupported transport %q", c.Transport)
	}
	return nil
}

// LoadConfig reads a config file, picking the parser by extension: JSON5
// for .json and .json5 files, YAML for everything else.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".json5":
		if err = json5.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return cfg, nil
}

// ApplyEnvDefaults fills unset fields from the environment. Values already
// present in cfg win over the environment.
func ApplyEnvDefaults(cfg Config) Config {
	if strings.TrimSpace(cfg.Transport) == "" {
		cfg.Transport = strings.TrimSpace(os.Getenv("STACKOVERFLOW_MCP_TRANSPORT"))
	}
	if strings.TrimSpace(cfg.Listen) == "" {
		cfg.Listen = strings.TrimSpace(os.Getenv("STACKOVERFLOW_MCP_LISTEN"))
	}
	if strings.TrimSpace(cfg.Logging.Level) == "" {
		cfg.Logging.Level = strings.TrimSpace(os.Getenv("STACKOVERFLOW_MCP_LOG_LEVEL"))
	}
	cfg.StackExchange = stackexchange.ApplyEnvDefaults(cfg.StackExchange)
	return cfg
}
