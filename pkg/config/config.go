// Package config provides configuration management for the scry CLI.
// Configuration is loaded with the following priority (highest to lowest):
//  1. CLI flags
//  2. Local project config: .scry/cli-config.toml
//  3. User-level config: ~/.scry/cli-config.toml
package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// ConfigFileName is the name of the configuration file
	ConfigFileName = "cli-config.toml"
	// ScryDir is the directory name for scry files
	ScryDir = ".scry"
)

// DebugLogPath returns the path for the debug log file and creates its
// directory if needed. The path is relative to the current working directory.
func DebugLogPath() string {
	dir := filepath.Join(ScryDir, "debug")
	if err := os.MkdirAll(dir, 0755); err != nil {
		slog.Warn("Failed to create debug log directory", "path", dir, "error", err)
	}
	return filepath.Join(dir, "debug.log")
}

// Config represents the complete CLI configuration
type Config struct {
	// Category is the default fortune category when no -c flag is given
	Category string `toml:"category"`

	Output    OutputConfig    `toml:"output"`
	Logging   LoggingConfig   `toml:"logging"`
	Analytics AnalyticsConfig `toml:"analytics"`
}

// OutputConfig holds rendering settings
type OutputConfig struct {
	// Color controls whether fortunes are decorated with ANSI colors.
	// Even when enabled, color is dropped if stdout is not a terminal.
	Color *bool `toml:"color"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	// Console enables error/warn/info output to stdout
	Console *bool `toml:"console"`
	// Log enables writing error/warn/info output to .scry/debug/debug.log
	Log *bool `toml:"log"`
	// Debug enables debug-level output (requires Console or Log)
	Debug *bool `toml:"debug"`
	// Silent suppresses all non-error output
	Silent *bool `toml:"silent"`
}

// AnalyticsConfig holds analytics settings
type AnalyticsConfig struct {
	// Enabled controls whether usage analytics are sent
	Enabled *bool `toml:"enabled"`
}

// CLIOverrides holds CLI flag values that override config file settings.
// These are applied after config files are loaded.
type CLIOverrides struct {
	// Rendering
	Category string
	NoColor  bool

	// Logging
	Console bool
	Log     bool
	Debug   bool
	Silent  bool

	// Analytics
	NoAnalytics bool
}

// Load reads configuration from files and CLI flags.
// Priority: CLI flags > local project config > user-level config
func Load(cliOverrides *CLIOverrides) (*Config, error) {
	cfg := &Config{}

	// Load user-level config first (lowest priority)
	userConfigPath := getUserConfigPath()
	if userConfigPath != "" {
		if err := loadTOMLFile(userConfigPath, cfg); err != nil {
			slog.Debug("No user-level config loaded", "path", userConfigPath, "error", err)
		} else {
			slog.Debug("Loaded user-level config", "path", userConfigPath)
		}
	}

	// Load local project config (overwrites user-level)
	localConfigPath := getLocalConfigPath()
	if localConfigPath != "" {
		if err := loadTOMLFile(localConfigPath, cfg); err != nil {
			slog.Debug("No local project config loaded", "path", localConfigPath, "error", err)
		} else {
			slog.Debug("Loaded local project config", "path", localConfigPath)
		}
	}

	// Apply CLI flag overrides (highest priority)
	if cliOverrides != nil {
		applyCLIOverrides(cfg, cliOverrides)
	}

	return cfg, nil
}

// getUserConfigPath returns the path to ~/.scry/cli-config.toml
func getUserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		slog.Debug("Could not determine home directory", "error", err)
		return ""
	}
	return filepath.Join(home, ScryDir, ConfigFileName)
}

// getLocalConfigPath returns the path to .scry/cli-config.toml in the current directory
func getLocalConfigPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		slog.Debug("Could not determine current directory", "error", err)
		return ""
	}
	return filepath.Join(cwd, ScryDir, ConfigFileName)
}

// loadTOMLFile reads a TOML file and decodes it into the config struct.
// Fields are merged (later calls overwrite earlier values).
func loadTOMLFile(path string, cfg *Config) error {
	_, err := toml.DecodeFile(path, cfg)
	return err
}

// applyCLIOverrides applies CLI flag overrides to the config.
func applyCLIOverrides(cfg *Config, o *CLIOverrides) {
	if o.Category != "" {
		cfg.Category = o.Category
	}

	// --no-color sets color to false
	if o.NoColor {
		disabled := false
		cfg.Output.Color = &disabled
	}

	// Logging flags only override if explicitly set (true)
	if o.Console {
		enabled := true
		cfg.Logging.Console = &enabled
	}
	if o.Log {
		enabled := true
		cfg.Logging.Log = &enabled
	}
	if o.Debug {
		enabled := true
		cfg.Logging.Debug = &enabled
	}
	if o.Silent {
		enabled := true
		cfg.Logging.Silent = &enabled
	}

	// Analytics (--no-usage-analytics sets enabled to false)
	if o.NoAnalytics {
		disabled := false
		cfg.Analytics.Enabled = &disabled
	}
}

// --- Getter methods ---

// GetCategory returns the fortune category to render.
// Defaults to "all" if not explicitly set.
func (c *Config) GetCategory() string {
	if c.Category != "" {
		return c.Category
	}
	return "all"
}

// IsColorEnabled returns whether color decoration is enabled.
// Defaults to true if not explicitly set.
func (c *Config) IsColorEnabled() bool {
	if c.Output.Color != nil {
		return *c.Output.Color
	}
	return true // default enabled
}

// IsConsoleEnabled returns whether console logging is enabled.
// Defaults to false if not explicitly set.
func (c *Config) IsConsoleEnabled() bool {
	if c.Logging.Console != nil {
		return *c.Logging.Console
	}
	return false // default disabled
}

// IsLogEnabled returns whether file logging is enabled.
// Defaults to false if not explicitly set.
func (c *Config) IsLogEnabled() bool {
	if c.Logging.Log != nil {
		return *c.Logging.Log
	}
	return false // default disabled
}

// IsDebugEnabled returns whether debug logging is enabled.
// Defaults to false if not explicitly set.
func (c *Config) IsDebugEnabled() bool {
	if c.Logging.Debug != nil {
		return *c.Logging.Debug
	}
	return false // default disabled
}

// IsSilentEnabled returns whether silent mode is enabled.
// Defaults to false if not explicitly set.
func (c *Config) IsSilentEnabled() bool {
	if c.Logging.Silent != nil {
		return *c.Logging.Silent
	}
	return false // default disabled
}

// IsAnalyticsEnabled returns whether analytics are enabled.
// Defaults to true if not explicitly set.
func (c *Config) IsAnalyticsEnabled() bool {
	if c.Analytics.Enabled != nil {
		return *c.Analytics.Enabled
	}
	return true // default enabled
}
