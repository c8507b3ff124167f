package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for mgrep
type Config struct {
	// Query is the substring to search for.
	Query string `yaml:"-"`

	// FilePath is the file whose lines are searched.
	FilePath string `yaml:"-"`

	// IgnoreCase selects case-insensitive matching.
	IgnoreCase bool `yaml:"ignore_case"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		IgnoreCase: false,
	}
}

// Load loads configuration from file and environment. Precedence is
// defaults, then the config file, then the IGNORE_CASE environment
// variable; a /i or /s argument (see ParseCaseToken) beats all of these and
// is applied by the caller.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	// Try to load from config file
	configPath := getConfigPath()
	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Override with environment variables
	loadFromEnv(cfg)

	return cfg, nil
}

// getConfigPath returns the config file path
func getConfigPath() string {
	// Check for explicit config path
	if path := os.Getenv("MGREP_CONFIG"); path != "" {
		return path
	}

	// Check XDG config directory
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "mgrep", "config.yaml")
	}

	// Fall back to home directory
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "mgrep", "config.yaml")
	}

	return ""
}

// loadFromFile loads configuration from a YAML file
func loadFromFile(cfg *Config, path string) error {
	// #nosec G304 - The config file path comes from trusted sources (env var or standard locations)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

// loadFromEnv loads configuration from environment variables. IGNORE_CASE
// enables case-insensitive matching by presence: any value, including the
// empty string, turns it on.
func loadFromEnv(cfg *Config) {
	if _, ok := os.LookupEnv("IGNORE_CASE"); ok {
		cfg.IgnoreCase = true
	}
}

// ParseCaseToken recognizes the positional case-mode tokens: "/i" forces
// case-insensitive matching and "/s" forces case-sensitive matching. The
// second return reports whether arg was a mode token at all.
func ParseCaseToken(arg string) (ignoreCase, ok bool) {
	switch arg {
	case "/i":
		return true, true
	case "/s":
		return false, true
	}
	return false, false
}
