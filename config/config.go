// Package config loads the YAML configuration shared by the CLI and the
// simulator binaries.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration for YAML fields like "100ms" or "1m30s".
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML renders the duration as a string.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// GatewayConfig holds how to reach the microgrid gateway.
type GatewayConfig struct {
	// Targets are gRPC addresses tried in order. May be empty when etcd
	// discovery is configured.
	Targets []string `yaml:"targets"`

	// CallTimeout is the default deadline for API calls.
	CallTimeout Duration `yaml:"call_timeout"`

	// ConnectionTimeout bounds connection establishment per target.
	ConnectionTimeout Duration `yaml:"connection_timeout"`
}

// EtcdConfig holds endpoint-discovery configuration.
type EtcdConfig struct {
	Endpoints []string `yaml:"endpoints"`
	Prefix    string   `yaml:"prefix"`
}

// HistoryConfig holds the PostgreSQL command-history configuration.
type HistoryConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"` // Use "require" in production
}

// ComponentConfig describes one simulated component.
type ComponentConfig struct {
	ID           uint64 `yaml:"id"`
	Category     string `yaml:"category"` // grid, meter, inverter, battery, ev_charger, chp
	Manufacturer string `yaml:"manufacturer"`
	Model        string `yaml:"model"`
}

// ConnectionConfig describes one simulated electrical connection.
type ConnectionConfig struct {
	Start uint64 `yaml:"start"`
	End   uint64 `yaml:"end"`
}

// SimulatorConfig holds the simulator server configuration.
type SimulatorConfig struct {
	// Name identifies the simulated microgrid in the endpoint registry.
	Name string `yaml:"name"`

	ListenAddr    string `yaml:"listen_addr"`
	AdvertiseAddr string `yaml:"advertise_addr"`

	// MetricsAddr is the HTTP address serving Prometheus metrics.
	// Empty disables the metrics endpoint.
	MetricsAddr string `yaml:"metrics_addr"`

	Components  []ComponentConfig  `yaml:"components"`
	Connections []ConnectionConfig `yaml:"connections"`
}

// Config is the root configuration structure.
type Config struct {
	Version   int             `yaml:"version"`
	Gateway   GatewayConfig   `yaml:"gateway"`
	Etcd      EtcdConfig      `yaml:"etcd"`
	History   HistoryConfig   `yaml:"history"`
	Simulator SimulatorConfig `yaml:"simulator"`
}

// LoadConfig loads and validates configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (expected 1)", c.Version)
	}

	if c.Gateway.CallTimeout < 0 {
		return fmt.Errorf("gateway call_timeout must be positive")
	}
	if c.Gateway.ConnectionTimeout < 0 {
		return fmt.Errorf("gateway connection_timeout must be positive")
	}

	if len(c.Gateway.Targets) == 0 && len(c.Etcd.Endpoints) == 0 {
		return fmt.Errorf("either gateway targets or etcd endpoints must be configured")
	}

	if c.History.Enabled {
		if c.History.Host == "" {
			return fmt.Errorf("history host is required when history is enabled")
		}
		if c.History.Port <= 0 {
			return fmt.Errorf("history port must be positive")
		}
		if c.History.Database == "" {
			return fmt.Errorf("history database is required when history is enabled")
		}
	}

	seen := make(map[uint64]bool)
	for i, comp := range c.Simulator.Components {
		if comp.ID == 0 {
			return fmt.Errorf("simulator component %d: id is required", i)
		}
		if seen[comp.ID] {
			return fmt.Errorf("simulator component %d: duplicate id %d", i, comp.ID)
		}
		seen[comp.ID] = true
	}
	for i, conn := range c.Simulator.Connections {
		if conn.Start == 0 || conn.End == 0 {
			return fmt.Errorf("simulator connection %d: start and end are required", i)
		}
	}

	return nil
}

// GetCallTimeout returns the configured call timeout or fallback when unset.
func (c *Config) GetCallTimeout(fallback time.Duration) time.Duration {
	if c.Gateway.CallTimeout > 0 {
		return time.Duration(c.Gateway.CallTimeout)
	}
	return fallback
}

// GetConnectionTimeout returns the configured connection timeout or fallback
// when unset.
func (c *Config) GetConnectionTimeout(fallback time.Duration) time.Duration {
	if c.Gateway.ConnectionTimeout > 0 {
		return time.Duration(c.Gateway.ConnectionTimeout)
	}
	return fallback
}
