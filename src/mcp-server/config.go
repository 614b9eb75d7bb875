// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/H0llyW00dzZ/gds-mcp-server/src/internal/helper/jsonx"
	"gopkg.in/yaml.v3"
)

const (
	// ConfigFileEnv names the environment variable holding the config file path.
	ConfigFileEnv = "GDS_MCP_CONFIG_FILE"
	// PortEnv overrides server.port.
	PortEnv = "PORT"

	// DefaultProtocolVersion is answered by initialize when the client sends none.
	DefaultProtocolVersion = "2024-11-05"
	// DefaultPort is the listen port when neither the file nor PORT sets one.
	DefaultPort = 10000
	// DefaultMaxBodyBytes caps POST /mcp bodies.
	DefaultMaxBodyBytes int64 = 2 << 20
)

// configFormat represents supported configuration file formats.
type configFormat int

const (
	// configFormatJSON represents JSON configuration format (.json)
	configFormatJSON configFormat = iota
	// configFormatYAML represents YAML configuration format (.yaml, .yml)
	configFormatYAML
)

// Config is the server configuration.
//
// It can be loaded from a JSON or YAML file named by --config or the
// GDS_MCP_CONFIG_FILE environment variable. Supported file extensions: .json, .yaml, .yml
type Config struct {
	// Server: HTTP listener settings
	Server struct {
		Host                   string   `json:"host" yaml:"host"`
		Port                   int      `json:"port" yaml:"port"`
		ShutdownTimeoutSeconds int      `json:"shutdownTimeoutSeconds" yaml:"shutdownTimeoutSeconds"`
		MaxBodyBytes           int64    `json:"maxBodyBytes" yaml:"maxBodyBytes"`
		ConvenienceRoutes      bool     `json:"convenienceRoutes" yaml:"convenienceRoutes"`
		CORSOrigins            []string `json:"corsOrigins,omitempty" yaml:"corsOrigins,omitempty"`
	} `json:"server" yaml:"server"`

	// Protocol: dispatcher behaviour
	Protocol struct {
		// Version: answered by initialize when the client does not send one
		Version string `json:"version" yaml:"version"`
		// EnforceAccept: reject requests whose Accept header lacks JSON or event-stream
		EnforceAccept bool `json:"enforceAccept" yaml:"enforceAccept"`
		// Resources: expose resources/list and resources/read
		Resources bool `json:"resources" yaml:"resources"`
	} `json:"protocol" yaml:"protocol"`

	// Log: structured logger settings
	Log struct {
		Level  string `json:"level" yaml:"level"`
		Format string `json:"format" yaml:"format"`
	} `json:"log" yaml:"log"`
}

// DefaultConfig returns a configuration with every default applied.
func DefaultConfig() *Config {
	c := &Config{}
	c.Server.Host = "0.0.0.0"
	c.Server.Port = DefaultPort
	c.Server.ShutdownTimeoutSeconds = 5
	c.Server.MaxBodyBytes = DefaultMaxBodyBytes
	c.Server.ConvenienceRoutes = true
	c.Protocol.Version = DefaultProtocolVersion
	c.Protocol.EnforceAccept = true
	c.Protocol.Resources = true
	c.Log.Level = "info"
	c.Log.Format = "json"
	return c
}

// Addr returns the host:port pair to listen on.
func (c *Config) Addr() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// detectConfigFormat determines the configuration file format based on file extension.
func detectConfigFormat(configPath string) configFormat {
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".yaml", ".yml":
		return configFormatYAML
	default:
		return configFormatJSON
	}
}

// unmarshalConfig unmarshals configuration data based on the specified format.
//
// Parameters:
//   - data: Raw configuration file contents
//   - config: Pointer to Config struct to populate
//   - format: The configuration format (configFormatJSON or configFormatYAML)
//
// Returns:
//   - error: Any parsing error encountered during unmarshaling
func unmarshalConfig(data []byte, config *Config, format configFormat) error {
	switch format {
	case configFormatYAML:
		if err := yaml.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := jsonx.Unmarshal(data, config); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// LoadConfig loads the server configuration.
//
// Parameters:
//   - configPath: Path to the configuration file (optional, can be empty)
//
// Returns:
//   - *Config: Loaded configuration with defaults applied
//   - error: If the file cannot be read or parsed, or PORT is not a valid port
//
// Configuration Priority:
//  1. Default values are set
//  2. GDS_MCP_CONFIG_FILE is checked if configPath is empty
//  3. Config file values override defaults
//  4. PORT overrides the port from the file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if configPath == "" {
		configPath = os.Getenv(ConfigFileEnv)
	}

	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := unmarshalConfig(data, config, detectConfigFormat(configPath)); err != nil {
			return nil, err
		}
	}

	if raw, ok := os.LookupEnv(PortEnv); ok && strings.TrimSpace(raw) != "" {
		port, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s %q: %w", PortEnv, raw, err)
		}
		config.Server.Port = port
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}
	return config, nil
}

// normalize restores defaults for zeroed values and rejects impossible ones.
func (c *Config) normalize() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 0 and 65535", c.Server.Port)
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.ShutdownTimeoutSeconds <= 0 {
		c.Server.ShutdownTimeoutSeconds = 5
	}
	if c.Server.MaxBodyBytes <= 0 {
		c.Server.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.Protocol.Version == "" {
		c.Protocol.Version = DefaultProtocolVersion
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
	return nil
}
