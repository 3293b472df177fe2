package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables that override the config file.
const (
	EnvBaseURL = "PDMAFIA_BASE_URL"
	EnvStorage = "PDMAFIA_STORAGE"
	EnvDSN     = "PDMAFIA_DSN"
	EnvLog     = "PDMAFIA_LOG_LEVEL"
)

// StorageConfig selects where crawled records are written.
type StorageConfig struct {
	Type string `yaml:"type"`
	DSN  string `yaml:"dsn"`
}

// LogConfig controls the crawler's logger. An empty File logs to stderr.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Config represents the structure of ~/.pdmafia/config.yaml.
type Config struct {
	BaseURL   string        `yaml:"base_url"`
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
	Storage   StorageConfig `yaml:"storage"`
	Log       LogConfig     `yaml:"log"`
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		BaseURL:   "http://pdmafia.com",
		Timeout:   30 * time.Second,
		UserAgent: "pdmafia/1.0 (game archive crawler)",
		Storage: StorageConfig{
			Type: "file",
			DSN:  "data",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Path returns the location of the config file.
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".pdmafia", "config.yaml"), nil
}

// LoadConfigFile loads configuration from ~/.pdmafia/config.yaml. Returns
// nil if the file doesn't exist (not an error). Returns error if the file
// exists but cannot be parsed.
func LoadConfigFile() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadConfigFileFrom(configPath)
}

// LoadConfigFileFrom is LoadConfigFile for an explicit path.
func LoadConfigFileFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, nil
}

// Merge overlays the non-empty fields of other onto c. A nil other is a
// no-op.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	setString(&c.BaseURL, other.BaseURL)
	setString(&c.UserAgent, other.UserAgent)
	setString(&c.Storage.Type, other.Storage.Type)
	setString(&c.Storage.DSN, other.Storage.DSN)
	setString(&c.Log.Level, other.Log.Level)
	setString(&c.Log.File, other.Log.File)
	if other.Timeout > 0 {
		c.Timeout = other.Timeout
	}
}

// ApplyEnv overrides fields from environment variables read via getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	setString(&c.BaseURL, getenv(EnvBaseURL))
	setString(&c.Storage.Type, getenv(EnvStorage))
	setString(&c.Storage.DSN, getenv(EnvDSN))
	setString(&c.Log.Level, getenv(EnvLog))
}

// Load resolves the effective configuration: defaults, then the config
// file, then environment variables.
func Load() (*Config, error) {
	cfg := Default()

	fileCfg, err := LoadConfigFile()
	if err != nil {
		return nil, err
	}
	cfg.Merge(fileCfg)
	cfg.ApplyEnv(os.Getenv)

	return cfg, nil
}

func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
