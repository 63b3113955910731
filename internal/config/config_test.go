package config

import (
	"strings"
	"testing"
	"time"
)

const (
	infoLevel  = "info"
	debugLevel = "debug"
)

// TestDefaultConfig verifies that DefaultConfig returns expected values.
func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.LogLevel != infoLevel {
		t.Errorf("Expected log_level '%s', got %s", infoLevel, cfg.LogLevel)
	}
	if cfg.Verbose {
		t.Error("Expected verbose to be false")
	}

	// Output defaults
	if cfg.Output.Format != "json" {
		t.Errorf("Expected output format 'json', got %s", cfg.Output.Format)
	}
	if cfg.Output.Locale != "" {
		t.Errorf("Expected empty locale, got %s", cfg.Output.Locale)
	}

	// Server defaults
	if cfg.Server.Host != "localhost" {
		t.Errorf("Expected server host 'localhost', got %s", cfg.Server.Host)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Expected server port 8080, got %d", cfg.Server.Port)
	}
	if !cfg.Server.WebSocketEnabled {
		t.Error("Expected websocket to be enabled by default")
	}

	// Tracking defaults
	if cfg.Tracking.DeletionDelay() != 2*time.Second {
		t.Errorf("Expected deletion delay 2s, got %s", cfg.Tracking.DeletionDelay())
	}
	if cfg.Tracking.Capacity <= 0 {
		t.Errorf("Expected positive tracking capacity, got %d", cfg.Tracking.Capacity)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig() should validate, got %v", err)
	}
}

// TestValidate checks each rule of Validate.
func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"debug level", func(c *Config) { c.LogLevel = debugLevel }, ""},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "invalid log level"},
		{"yaml format", func(c *Config) { c.Output.Format = "yaml" }, ""},
		{"empty format", func(c *Config) { c.Output.Format = "" }, ""},
		{"csv format", func(c *Config) { c.Output.Format = "csv" }, "invalid output format"},
		{"locale", func(c *Config) { c.Output.Locale = "de-CH" }, ""},
		{"bad locale", func(c *Config) { c.Output.Locale = "!!" }, "invalid output locale"},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "invalid server port"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "invalid server port"},
		{"timeout", func(c *Config) { c.Server.TimeoutSec = 0 }, "invalid timeout"},
		{"shutdown", func(c *Config) { c.Server.ShutdownTimeout = -1 }, "invalid shutdown timeout"},
		{"zero delay", func(c *Config) { c.Tracking.DeletionDelayMs = 0 }, ""},
		{"negative delay", func(c *Config) { c.Tracking.DeletionDelayMs = -5 }, "invalid tracking deletion delay"},
		{"capacity", func(c *Config) { c.Tracking.Capacity = 0 }, "invalid tracking capacity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestContains(t *testing.T) {
	if !contains([]string{"a", "b"}, "b") {
		t.Error("contains should find b")
	}
	if contains(nil, "a") {
		t.Error("contains on nil slice should be false")
	}
}
