package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

func newTestLoader() *Loader {
	return NewLoaderWithViper(viper.New())
}

func chdirTemp(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)
	return tmpDir
}

// TestNewLoader tests loader creation.
func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	if loader == nil {
		t.Fatal("NewLoader() returned nil")
	}
	if loader.GetViper() != viper.GetViper() {
		t.Error("NewLoader() should use the global viper instance")
	}
}

// TestLoadWithNoConfigFile tests loading with no config file present.
func TestLoadWithNoConfigFile(t *testing.T) {
	chdirTemp(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := newTestLoader().Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.LogLevel != infoLevel {
		t.Errorf("Expected default log level '%s', got %s", infoLevel, cfg.LogLevel)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("Expected default port 8080, got %d", cfg.Server.Port)
	}
}

// TestLoadFindsFileInWorkingDir tests the search path lookup.
func TestLoadFindsFileInWorkingDir(t *testing.T) {
	dir := chdirTemp(t)
	if err := os.WriteFile(filepath.Join(dir, "scandefaults.yaml"), []byte("log_level: warn\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	loader := newTestLoader()
	cfg, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Expected log level 'warn', got %s", cfg.LogLevel)
	}
	if !strings.HasSuffix(loader.GetConfigFileUsed(), "scandefaults.yaml") {
		t.Errorf("Expected config file to be used, got %q", loader.GetConfigFileUsed())
	}
}

// TestLoadWithValidYAMLFile tests loading from a valid YAML file.
func TestLoadWithValidYAMLFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "scandefaults.yaml")

	yamlContent := `
log_level: debug
verbose: true
output:
  format: yaml
  locale: fr
server:
  host: 0.0.0.0
  port: 9090
tracking:
  deletion_delay_ms: 500
  capacity: 16
`
	if err := os.WriteFile(configFile, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := newTestLoader().LoadWithFile(configFile)
	if err != nil {
		t.Fatalf("LoadWithFile() unexpected error: %v", err)
	}
	if cfg.LogLevel != debugLevel {
		t.Errorf("Expected log level '%s', got %s", debugLevel, cfg.LogLevel)
	}
	if !cfg.Verbose {
		t.Error("Expected verbose to be true")
	}
	if cfg.Output.Format != "yaml" || cfg.Output.Locale != "fr" {
		t.Errorf("Expected yaml/fr output, got %s/%s", cfg.Output.Format, cfg.Output.Locale)
	}
	if cfg.Server.Host != "0.0.0.0" || cfg.Server.Port != 9090 {
		t.Errorf("Expected 0.0.0.0:9090, got %s:%d", cfg.Server.Host, cfg.Server.Port)
	}
	if cfg.Tracking.DeletionDelayMs != 500 || cfg.Tracking.Capacity != 16 {
		t.Errorf("Unexpected tracking config: %+v", cfg.Tracking)
	}
	// Unset keys keep their defaults.
	if cfg.Server.CORSOrigin != "*" {
		t.Errorf("Expected default CORS origin, got %s", cfg.Server.CORSOrigin)
	}
}

// TestLoadWithInvalidYAMLFile tests loading from an invalid YAML file.
func TestLoadWithInvalidYAMLFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "scandefaults.yaml")
	invalidYAML := `
log_level: debug
  invalid indentation
    more bad indentation
`
	if err := os.WriteFile(configFile, []byte(invalidYAML), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := newTestLoader().LoadWithFile(configFile); err == nil {
		t.Error("LoadWithFile() expected error for invalid YAML, got nil")
	}
}

// TestLoadWithNonExistentFile tests loading from a non-existent file.
func TestLoadWithNonExistentFile(t *testing.T) {
	if _, err := newTestLoader().LoadWithFile("/nonexistent/path/to/config.yaml"); err == nil {
		t.Error("LoadWithFile() expected error for non-existent file, got nil")
	}
}

// TestLoadValidation tests that validation runs only when requested.
func TestLoadValidation(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "scandefaults.yaml")
	yamlContent := `
log_level: invalid_level
server:
  port: 0
`
	if err := os.WriteFile(configFile, []byte(yamlContent), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := newTestLoader().LoadWithFile(configFile); err == nil {
		t.Error("LoadWithFile() expected validation error, got nil")
	}

	cfg, err := newTestLoader().LoadWithFileWithoutValidation(configFile)
	if err != nil {
		t.Fatalf("LoadWithFileWithoutValidation() unexpected error: %v", err)
	}
	if cfg.LogLevel != "invalid_level" {
		t.Errorf("Expected raw log level, got %s", cfg.LogLevel)
	}
}

// TestEnvOverridesFile tests precedence of config sources.
func TestEnvOverridesFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "scandefaults.yaml")
	if err := os.WriteFile(configFile, []byte("log_level: warn\nserver:\n  port: 9000\n"), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	t.Setenv("SCANDEFAULTS_LOG_LEVEL", "debug")
	t.Setenv("SCANDEFAULTS_SERVER_PORT", "9191")

	cfg, err := newTestLoader().LoadWithFile(configFile)
	if err != nil {
		t.Fatalf("LoadWithFile() error: %v", err)
	}
	if cfg.LogLevel != debugLevel {
		t.Errorf("Expected log level 'debug' from env, got %s", cfg.LogLevel)
	}
	if cfg.Server.Port != 9191 {
		t.Errorf("Expected port 9191 from env, got %d", cfg.Server.Port)
	}
}

// TestLoadReadsDotEnv tests that prefixed .env entries reach the config.
func TestLoadReadsDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	content := "SCANDEFAULTS_LOG_LEVEL=warn\nSCANDEFAULTS_TRACKING_CAPACITY=64\nUNRELATED_SETTING=1\n"
	if err := os.WriteFile(filepath.Join(dir, DotEnvFile), []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Unsetenv("SCANDEFAULTS_LOG_LEVEL")
		_ = os.Unsetenv("SCANDEFAULTS_TRACKING_CAPACITY")
	})

	cfg, err := newTestLoader().Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("Expected log level 'warn' from .env, got %s", cfg.LogLevel)
	}
	if cfg.Tracking.Capacity != 64 {
		t.Errorf("Expected capacity 64 from .env, got %d", cfg.Tracking.Capacity)
	}
	if _, set := os.LookupEnv("UNRELATED_SETTING"); set {
		t.Error("Unprefixed .env entries should not be exported")
	}
}

// TestEnvironmentBeatsDotEnv tests that real variables are not overridden.
func TestEnvironmentBeatsDotEnv(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("SCANDEFAULTS_LOG_LEVEL", "error")
	if err := os.WriteFile(filepath.Join(dir, DotEnvFile), []byte("SCANDEFAULTS_LOG_LEVEL=warn\n"), 0o644); err != nil {
		t.Fatalf("Failed to write .env: %v", err)
	}

	cfg, err := newTestLoader().Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.LogLevel != "error" {
		t.Errorf("Expected log level 'error' from the environment, got %s", cfg.LogLevel)
	}
}

// TestGenerateDefaultConfigFile writes and re-reads the defaults file.
func TestGenerateDefaultConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := GenerateDefaultConfigFile(path); err != nil {
		t.Fatalf("GenerateDefaultConfigFile() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading generated file: %v", err)
	}
	var parsed map[string]any
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("generated file is not YAML: %v", err)
	}
	if parsed["log_level"] != infoLevel {
		t.Errorf("Expected log_level info in generated file, got %v", parsed["log_level"])
	}

	cfg, err := newTestLoader().LoadWithFile(path)
	if err != nil {
		t.Fatalf("generated file should load: %v", err)
	}
	if *cfg != DefaultConfig() {
		t.Errorf("Round-tripped config differs: %+v", *cfg)
	}
}

func TestGetConfigSearchPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	paths := GetConfigSearchPaths()
	if paths[0] != "." {
		t.Errorf("Expected '.' first, got %s", paths[0])
	}
	want := []string{filepath.Join("/xdg", "scandefaults"), "/etc/scandefaults"}
	for _, w := range want {
		found := false
		for _, p := range paths {
			if p == w {
				found = true
			}
		}
		if !found {
			t.Errorf("Expected %s in search paths %v", w, paths)
		}
	}
}

func TestPrintConfigInfo(t *testing.T) {
	var buf bytes.Buffer
	newTestLoader().PrintConfigInfo(&buf)
	out := buf.String()
	if !strings.Contains(out, "(none)") || !strings.Contains(out, EnvPrefix) {
		t.Errorf("Unexpected config info output: %s", out)
	}
}
