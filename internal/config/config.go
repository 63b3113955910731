package config

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/MeKo-Tech/scandefaults/internal/augcache"
)

// Config represents the complete configuration for the scandefaults
// application. It covers the CLI output and the serve command and is loaded
// from configuration files, environment variables and command-line flags.
type Config struct {
	// Global settings
	LogLevel string `mapstructure:"log_level" yaml:"log_level" json:"log_level"`
	Verbose  bool   `mapstructure:"verbose" yaml:"verbose" json:"verbose"`

	// Output configuration
	Output OutputConfig `mapstructure:"output" yaml:"output" json:"output"`

	// Server configuration (for serve command)
	Server ServerConfig `mapstructure:"server" yaml:"server" json:"server"`

	// Barcode tracking behind /ws/session
	Tracking TrackingConfig `mapstructure:"tracking" yaml:"tracking" json:"tracking"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" json:"format"`
	// Locale translates pick view texts in rendered documents. Empty keeps English.
	Locale string `mapstructure:"locale" yaml:"locale" json:"locale"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host             string `mapstructure:"host" yaml:"host" json:"host"`
	Port             int    `mapstructure:"port" yaml:"port" json:"port"`
	CORSOrigin       string `mapstructure:"cors_origin" yaml:"cors_origin" json:"cors_origin"`
	TimeoutSec       int    `mapstructure:"timeout_sec" yaml:"timeout_sec" json:"timeout_sec"`
	ShutdownTimeout  int    `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout" json:"shutdown_timeout"`
	WebSocketEnabled bool   `mapstructure:"websocket_enabled" yaml:"websocket_enabled" json:"websocket_enabled"`
}

// TrackingConfig contains augmentation cache settings.
type TrackingConfig struct {
	DeletionDelayMs int `mapstructure:"deletion_delay_ms" yaml:"deletion_delay_ms" json:"deletion_delay_ms"`
	Capacity        int `mapstructure:"capacity" yaml:"capacity" json:"capacity"`
}

// DeletionDelay returns the configured delay as a duration.
func (t TrackingConfig) DeletionDelay() time.Duration {
	return time.Duration(t.DeletionDelayMs) * time.Millisecond
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Verbose:  false,
		Output: OutputConfig{
			Format: "json",
			Locale: "",
		},
		Server: ServerConfig{
			Host:             "localhost",
			Port:             8080,
			CORSOrigin:       "*",
			TimeoutSec:       30,
			ShutdownTimeout:  10,
			WebSocketEnabled: true,
		},
		Tracking: TrackingConfig{
			DeletionDelayMs: int(augcache.DefaultDeletionDelay / time.Millisecond),
			Capacity:        augcache.DefaultCapacity,
		},
	}
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, c.LogLevel) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	validFormats := []string{"text", "json", "yaml"}
	if c.Output.Format != "" && !contains(validFormats, c.Output.Format) {
		return fmt.Errorf("invalid output format: %s (must be one of: %s)", c.Output.Format, strings.Join(validFormats, ", "))
	}

	if c.Output.Locale != "" {
		if _, err := language.Parse(c.Output.Locale); err != nil {
			return fmt.Errorf("invalid output locale %q: %w", c.Output.Locale, err)
		}
	}

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d (must be between 1 and 65535)", c.Server.Port)
	}
	if c.Server.TimeoutSec <= 0 {
		return fmt.Errorf("invalid timeout: %d (must be positive)", c.Server.TimeoutSec)
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("invalid shutdown timeout: %d (must not be negative)", c.Server.ShutdownTimeout)
	}

	if c.Tracking.DeletionDelayMs < 0 {
		return fmt.Errorf("invalid tracking deletion delay: %d (must not be negative)", c.Tracking.DeletionDelayMs)
	}
	if c.Tracking.Capacity <= 0 {
		return fmt.Errorf("invalid tracking capacity: %d (must be positive)", c.Tracking.Capacity)
	}

	return nil
}

// contains reports whether item is in slice.
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
