// Package config handles TOML configuration loading with environment
// variable substitution.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	LogLevel string         `toml:"log_level"`
	Database DatabaseConfig `toml:"database"`
	Covers   CoversConfig   `toml:"covers"`
	OMDb     OMDbConfig     `toml:"omdb"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
}

type CoversConfig struct {
	Dir string `toml:"dir"`
}

type OMDbConfig struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(dir, "mediacat", "config.toml")
}

// Load reads and parses the configuration file. A missing file is not
// an error: the defaults apply.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Fall through to defaults.
	case err != nil:
		return nil, fmt.Errorf("reading config: %w", err)
	default:
		content := substituteEnvVars(string(data))
		if _, err := toml.Decode(content, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = defaultDataPath("mediacat.db")
	}
	if cfg.Covers.Dir == "" {
		cfg.Covers.Dir = defaultDataPath("covers")
	}
	if cfg.OMDb.BaseURL == "" {
		cfg.OMDb.BaseURL = "https://www.omdbapi.com"
	}
}

func defaultDataPath(name string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return name
	}
	return filepath.Join(dir, "mediacat", name)
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

func substituteEnvVars(content string) string {
	return envVarPattern.ReplaceAllStringFunc(content, func(match string) string {
		varName := match[2 : len(match)-1] // Strip ${ and }
		if value, ok := os.LookupEnv(varName); ok {
			return value
		}
		return match // Leave unchanged if not found
	})
}
