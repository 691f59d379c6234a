// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigDir is the directory name for kindred configuration.
	DefaultConfigDir = ".kindred"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultDatabaseFile is the default SQLite database file name.
	DefaultDatabaseFile = "kindred.db"
)

// Config holds static infrastructure configuration (read-only after init).
type Config struct {
	SQLite  SQLiteConfig  `yaml:"sqlite,omitempty"`
	Server  ServerConfig  `yaml:"server,omitempty"`
	Tree    TreeConfig    `yaml:"tree,omitempty"`
	Lineage LineageConfig `yaml:"lineage,omitempty"`
}

// SQLiteConfig holds configuration for the SQLite relational database.
type SQLiteConfig struct {
	// Path is the file path to the SQLite database. Empty means the default
	// location inside the config directory.
	Path string `yaml:"path,omitempty"`
}

// ServerConfig holds configuration for the HTTP read API.
type ServerConfig struct {
	Host string `yaml:"host,omitempty"`
	Port int    `yaml:"port,omitempty"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// TreeConfig holds configuration for subgraph extraction.
type TreeConfig struct {
	// MaxNodes caps the number of persons a single extraction may return.
	MaxNodes int `yaml:"max_nodes,omitempty"`
}

// LineageConfig holds configuration for lineage queries.
type LineageConfig struct {
	// DefaultSurname is used by lineage queries when no target family name
	// is given.
	DefaultSurname string `yaml:"default_surname,omitempty"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8000,
		},
		Tree: TreeConfig{
			MaxNodes: 200,
		},
	}
}

// Load loads configuration from the .kindred directory in the given path.
func Load(basePath string) (*Config, error) {
	configFile := ConfigFilePath(basePath)

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s (run 'kindred init' first)", configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Start with defaults
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvOverrides()

	if cfg.SQLite.Path == "" {
		cfg.SQLite.Path = DatabasePath(basePath)
	}

	return cfg, nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("KINDRED_DB"); path != "" {
		c.SQLite.Path = path
	}
	if host := os.Getenv("KINDRED_HOST"); host != "" {
		c.Server.Host = host
	}
}

// ConfigDir returns the path to the .kindred config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// DatabasePath returns the default SQLite database path.
func DatabasePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultDatabaseFile)
}

// Exists checks if a kindred config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
