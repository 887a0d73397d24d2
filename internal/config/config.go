// Package config provides configuration management for jig.
// Configuration is loaded with the following precedence:
// embedded defaults → global file → env vars
package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/config.yaml
var defaultsFS embed.FS

// JiraConfig identifies the Jira instance and account.
type JiraConfig struct {
	URL     string `yaml:"url"`
	Email   string `yaml:"email"`
	Project string `yaml:"project"`
}

// RescueConfig controls the field written during transition rescue.
type RescueConfig struct {
	Field string `yaml:"field"`
}

// ReportConfig holds reporting settings.
type ReportConfig struct {
	Concurrency int `yaml:"concurrency"`
}

// Config holds all settings for jig. Aliases is the user half of the status
// alias map; built-in aliases live in the workflow package and user entries
// take precedence on collision.
type Config struct {
	Jira    JiraConfig        `yaml:"jira"`
	Rescue  RescueConfig      `yaml:"rescue"`
	Report  ReportConfig      `yaml:"report"`
	Aliases map[string]string `yaml:"aliases"`

	configDir string
	sources   []string // ordered list of sources that contributed to this config
}

// Sources returns where configuration values came from, in load order.
func (c *Config) Sources() []string {
	return c.sources
}

// Path returns the global config file path.
func (c *Config) Path() string {
	return filepath.Join(c.configDir, "config.yaml")
}

// Load loads configuration from the default location, installing the default
// config file on first run.
func Load() (*Config, error) {
	return LoadWithDir(DefaultConfigDir())
}

// LoadWithDir loads configuration with an explicit config directory.
func LoadWithDir(configDir string) (*Config, error) {
	if err := InstallDefaults(configDir); err != nil {
		return nil, fmt.Errorf("install defaults: %w", err)
	}

	cfg, err := loadEmbedded()
	if err != nil {
		return nil, fmt.Errorf("load embedded defaults: %w", err)
	}
	cfg.sources = append(cfg.sources, "embedded")

	path := filepath.Join(configDir, "config.yaml")
	if fileCfg, err := loadFile(path); err == nil {
		cfg.mergeFrom(fileCfg)
		cfg.sources = append(cfg.sources, path)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg.applyEnv()
	cfg.configDir = configDir

	return cfg, nil
}

// DefaultConfigDir returns the default configuration directory path.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "jig")
	}
	return filepath.Join(home, ".config", "jig")
}

// InstallDefaults creates the config directory and installs the default
// config file if not present.
func InstallDefaults(configDir string) error {
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		data, err := defaultsFS.ReadFile("defaults/config.yaml")
		if err != nil {
			return fmt.Errorf("read embedded config: %w", err)
		}
		if err := os.WriteFile(configPath, data, 0o600); err != nil {
			return fmt.Errorf("write config file: %w", err)
		}
	}

	return nil
}

func loadEmbedded() (*Config, error) {
	data, err := defaultsFS.ReadFile("defaults/config.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded defaults: %w", err)
	}
	return parseConfig(data)
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user's config file
	if err != nil {
		return nil, err
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return &cfg, nil
}

// applyEnv applies environment variable overrides, the highest precedence.
func (c *Config) applyEnv() {
	if v := os.Getenv("JIRA_URL"); v != "" {
		c.Jira.URL = v
		c.sources = append(c.sources, "env:JIRA_URL")
	}
	if v := os.Getenv("JIRA_EMAIL"); v != "" {
		c.Jira.Email = v
		c.sources = append(c.sources, "env:JIRA_EMAIL")
	}
	if v := os.Getenv("JIG_PROJECT"); v != "" {
		c.Jira.Project = v
		c.sources = append(c.sources, "env:JIG_PROJECT")
	}
	if v := os.Getenv("JIG_RESCUE_FIELD"); v != "" {
		c.Rescue.Field = v
		c.sources = append(c.sources, "env:JIG_RESCUE_FIELD")
	}
	if v := os.Getenv("JIG_REPORT_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Report.Concurrency = n
			c.sources = append(c.sources, "env:JIG_REPORT_CONCURRENCY")
		}
	}
}

// mergeFrom merges non-empty values from src into c.
func (c *Config) mergeFrom(src *Config) {
	if src.Jira.URL != "" {
		c.Jira.URL = src.Jira.URL
	}
	if src.Jira.Email != "" {
		c.Jira.Email = src.Jira.Email
	}
	if src.Jira.Project != "" {
		c.Jira.Project = src.Jira.Project
	}
	if src.Rescue.Field != "" {
		c.Rescue.Field = src.Rescue.Field
	}
	if src.Report.Concurrency > 0 {
		c.Report.Concurrency = src.Report.Concurrency
	}
	if len(src.Aliases) > 0 {
		if c.Aliases == nil {
			c.Aliases = make(map[string]string, len(src.Aliases))
		}
		for k, v := range src.Aliases {
			c.Aliases[k] = v
		}
	}
}

// SetAlias adds or replaces a user alias and persists the config file.
func (c *Config) SetAlias(name, status string) error {
	if c.Aliases == nil {
		c.Aliases = make(map[string]string)
	}
	c.Aliases[name] = status
	return c.save()
}

// RemoveAlias deletes a user alias and persists the config file. Removing an
// unknown alias is not an error.
func (c *Config) RemoveAlias(name string) error {
	delete(c.Aliases, name)
	return c.save()
}

// save writes the file-backed part of the config back to the global file.
// Env-derived values are not written: the file round-trips what the user
// edits, not the resolved view.
func (c *Config) save() error {
	onDisk, err := loadFile(c.Path())
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load config for update: %w", err)
	}
	if onDisk == nil {
		onDisk = &Config{}
	}
	onDisk.Aliases = c.Aliases

	data, err := yaml.Marshal(onDisk)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(c.Path(), data, 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
