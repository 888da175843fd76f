// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jonathan/picture-match/internal/difficulty"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Sources
	Catalog     string `json:"catalog,omitempty"`      // Path to catalog JSON file
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL, used instead of Catalog when set

	// Server
	Port int `json:"port,omitempty"`

	// Tray sizes
	SimpleTotal      int `json:"simple_total,omitempty"`      // Items presented in simple mode
	AdvancedTotal    int `json:"advanced_total,omitempty"`    // Items presented in advanced mode
	BonusDistractors int `json:"bonus_distractors,omitempty"` // Added when extra items are requested

	// Behavior
	Seed    int64 `json:"seed,omitempty"`    // Fixed random seed, 0 means random
	Verbose bool  `json:"verbose,omitempty"` // Print detailed debug information
}

// DefaultPort is the HTTP port used when none is configured.
const DefaultPort = 8080

// Defaults returns the configuration used when nothing else is set.
func Defaults() Config {
	t := difficulty.DefaultTotals()
	return Config{
		Port:             DefaultPort,
		SimpleTotal:      t.Simple,
		AdvancedTotal:    t.Advanced,
		BonusDistractors: t.BonusDistractors,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from CATALOG_PATH, DATABASE_URL and PORT.
// Unset or malformed variables leave the field empty.
func FromEnv() Config {
	cfg := Config{
		Catalog:     os.Getenv("CATALOG_PATH"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		cfg.Port = port
	}
	return cfg
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate numeric ranges
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.SimpleTotal < 0 {
		return fmt.Errorf("config error: 'simple_total' must be non-negative")
	}
	if c.AdvancedTotal < 0 {
		return fmt.Errorf("config error: 'advanced_total' must be non-negative")
	}
	if c.BonusDistractors < 0 {
		return fmt.Errorf("config error: 'bonus_distractors' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.Catalog != "" {
		if _, err := os.Stat(c.Catalog); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.Catalog)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Catalog == "" {
		result.Catalog = defaults.Catalog
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Int fields: use default if zero
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.SimpleTotal == 0 {
		result.SimpleTotal = defaults.SimpleTotal
	}
	if result.AdvancedTotal == 0 {
		result.AdvancedTotal = defaults.AdvancedTotal
	}
	if result.BonusDistractors == 0 {
		result.BonusDistractors = defaults.BonusDistractors
	}
	if result.Seed == 0 {
		result.Seed = defaults.Seed
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Totals returns the tray sizes, falling back to the defaults for unset values.
func (c *Config) Totals() difficulty.Totals {
	t := difficulty.DefaultTotals()
	if c.SimpleTotal > 0 {
		t.Simple = c.SimpleTotal
	}
	if c.AdvancedTotal > 0 {
		t.Advanced = c.AdvancedTotal
	}
	if c.BonusDistractors > 0 {
		t.BonusDistractors = c.BonusDistractors
	}
	return t
}
