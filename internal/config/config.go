// Package config holds the kundendash.yaml configuration: backend address,
// display defaults and the audit trail location. Environment variables (also
// loadable from .env) override the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where commands look for the config file.
const DefaultPath = "kundendash.yaml"

// Config is the top-level kundendash.yaml configuration.
type Config struct {
	Backend BackendConfig `yaml:"backend"`
	Display DisplayConfig `yaml:"display"`
	User    UserConfig    `yaml:"user"`
	Audit   AuditConfig   `yaml:"audit"`
}

// BackendConfig locates the external REST backend.
type BackendConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// DisplayConfig holds table display defaults.
type DisplayConfig struct {
	PageSize int `yaml:"page_size"`
}

// UserConfig identifies the operator for audit stamping.
type UserConfig struct {
	Name string `yaml:"name"`
}

// AuditConfig controls the booking audit trail.
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Load reads a kundendash.yaml file and applies environment overrides.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyEnv()
	return &cfg, nil
}

// LoadOrDefault behaves like Load but falls back to Default when the file
// does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = Default()
		cfg.applyEnv()
		return cfg, nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Backend: BackendConfig{
			BaseURL:        "http://localhost:8080/api",
			TimeoutSeconds: 30,
		},
		Display: DisplayConfig{
			PageSize: 10,
		},
		Audit: AuditConfig{
			Enabled: true,
			Path:    "logs/audit-log.csv",
		},
	}
}

// Timeout returns the backend call timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.Backend.TimeoutSeconds) * time.Second
}

func (c *Config) applyEnv() {
	if v := os.Getenv("KUNDENDASH_BACKEND_URL"); v != "" {
		c.Backend.BaseURL = v
	}
	if v := os.Getenv("KUNDENDASH_USER"); v != "" {
		c.User.Name = v
	}
	if v := os.Getenv("KUNDENDASH_AUDIT_PATH"); v != "" {
		c.Audit.Path = v
	}
}
