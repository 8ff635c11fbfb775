// Package config loads gridkit configuration from YAML files with
// defaults-then-file-then-validate precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default configuration values exported for documentation and validation
const (
	DefaultColumnWidth    = 12
	MinColumnWidth        = 4
	DefaultRowNumberWidth = 5
	DefaultAutoCopyDelay  = 300 // milliseconds
	DefaultTheme          = "dark"
	DefaultLogDir         = ".gridkit/logs"
)

// Config represents the complete gridkit configuration
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Clipboard ClipboardConfig `yaml:"clipboard"`
	UI        UIConfig        `yaml:"ui"`
	Data      DataConfig      `yaml:"data"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GridConfig controls column sizing behavior.
type GridConfig struct {
	// DefaultColumnWidth is used for columns without a stored width.
	DefaultColumnWidth int `yaml:"default_column_width"`
	// MinColumnWidth is the floor a resize drag can never go below.
	MinColumnWidth int `yaml:"min_column_width"`
	// RowNumberWidth is the width of the row-number gutter.
	RowNumberWidth int `yaml:"row_number_width"`
}

// ClipboardConfig controls copy behavior.
type ClipboardConfig struct {
	// AutoCopy copies the selection to the clipboard after it settles.
	AutoCopy bool `yaml:"auto_copy"`
	// AutoCopyDelayMS is how long the selection must be stable before
	// the automatic copy fires.
	AutoCopyDelayMS int `yaml:"auto_copy_delay_ms"`
}

// UIConfig controls presentation.
type UIConfig struct {
	Theme string `yaml:"theme"` // "dark" or "light"
}

// DataConfig selects the data source for the demo binary.
type DataConfig struct {
	// SQLitePath opens a SQLite database as the backing table.
	SQLitePath string `yaml:"sqlite_path"`
	// SQLiteTable is the table to load from SQLitePath.
	SQLiteTable string `yaml:"sqlite_table"`
	// XLSXPath loads the first sheet of a workbook.
	XLSXPath string `yaml:"xlsx_path"`
}

// LoggingConfig controls structured logging.
type LoggingConfig struct {
	Dir   string `yaml:"dir"`
	Level string `yaml:"level"` // debug, info, warn, error
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Grid: GridConfig{
			DefaultColumnWidth: DefaultColumnWidth,
			MinColumnWidth:     MinColumnWidth,
			RowNumberWidth:     DefaultRowNumberWidth,
		},
		Clipboard: ClipboardConfig{
			AutoCopy:        true,
			AutoCopyDelayMS: DefaultAutoCopyDelay,
		},
		UI: UIConfig{
			Theme: DefaultTheme,
		},
		Logging: LoggingConfig{
			Dir:   DefaultLogDir,
			Level: "info",
		},
	}
}

// Load loads configuration from default locations with proper precedence:
// built-in defaults, then ~/.gridkit/config.yaml, then ./.gridkit/config.yaml.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	if home != "" {
		userConfigPath := filepath.Join(home, ".gridkit", "config.yaml")
		if err := loadAndMerge(cfg, userConfigPath); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("loading user config: %w", err)
		}
	}

	projectConfigPath := filepath.Join(".", ".gridkit", "config.yaml")
	if err := loadAndMerge(cfg, projectConfigPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// LoadFromPath loads configuration from a specific file path
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	if err := loadAndMerge(cfg, path); err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

// loadAndMerge unmarshals the file on top of cfg, leaving fields the
// file does not mention untouched.
func loadAndMerge(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Grid.MinColumnWidth < 1 {
		return fmt.Errorf("grid.min_column_width must be at least 1, got %d", c.Grid.MinColumnWidth)
	}
	if c.Grid.DefaultColumnWidth < c.Grid.MinColumnWidth {
		return fmt.Errorf("grid.default_column_width (%d) must not be below grid.min_column_width (%d)",
			c.Grid.DefaultColumnWidth, c.Grid.MinColumnWidth)
	}
	if c.Grid.RowNumberWidth < 1 {
		return fmt.Errorf("grid.row_number_width must be at least 1, got %d", c.Grid.RowNumberWidth)
	}
	if c.Clipboard.AutoCopyDelayMS < 0 {
		return fmt.Errorf("clipboard.auto_copy_delay_ms must not be negative, got %d", c.Clipboard.AutoCopyDelayMS)
	}
	switch c.UI.Theme {
	case "dark", "light":
	default:
		return fmt.Errorf("ui.theme must be %q or %q, got %q", "dark", "light", c.UI.Theme)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	if c.Data.SQLitePath != "" && c.Data.XLSXPath != "" {
		return fmt.Errorf("data.sqlite_path and data.xlsx_path are mutually exclusive")
	}
	return nil
}
