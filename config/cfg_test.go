package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return configPath
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Selector.Combinators != CombinatorPolicyPermissive || cfg.Selector.Strict() {
		t.Errorf("Default combinator policy = %s, want permissive", cfg.Selector.Combinators)
	}
	if !cfg.Selector.Verify {
		t.Error("Expected verification to be enabled by default")
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("Default console level = %q, want normal", cfg.Logging.ConsoleLogger.Level)
	}
	if !strings.HasSuffix(cfg.Logging.FileLogger.Destination, "cssel.log") {
		t.Errorf("Default log destination = %q", cfg.Logging.FileLogger.Destination)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	configPath := writeConfig(t, `version: 1
selector:
  combinators: strict
  verify: false
logging:
  console:
    level: debug
  file:
    level: debug
    destination: `+filepath.Join(t.TempDir(), "test.log")+`
    mode: append
`)

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	if !cfg.Selector.Strict() {
		t.Errorf("Combinators = %s, want strict", cfg.Selector.Combinators)
	}
	if cfg.Selector.Verify {
		t.Error("Expected verification to be disabled")
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("File logger mode = %q, want append", cfg.Logging.FileLogger.Mode)
	}
	// not overwritten by file, comes from template
	if cfg.Reporting.Destination == "" {
		t.Error("Expected default report destination")
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid yaml", "version: 1\nselector:\n  verify: true\n  invalid indent\n"},
		{"unknown field", "version: 1\nunknown_field: value\n"},
		{"unknown policy", "version: 1\nselector:\n  combinators: lenient\n"},
		{"invalid version", "version: 2\n"},
		{"invalid level", "version: 1\nlogging:\n  console:\n    level: verbose\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
	}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if len(data) == 0 {
		t.Error("Prepare() returned empty data")
	}

	if _, err = unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Selector.Combinators = CombinatorPolicyStrict

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(string(data), "combinators: strict") {
		t.Errorf("Dump() output missing policy:\n%s", data)
	}

	// dumped configuration must load back
	loaded, err := LoadConfiguration(writeConfig(t, string(data)))
	if err != nil {
		t.Fatalf("LoadConfiguration() of dumped data error = %v", err)
	}
	if !loaded.Selector.Strict() {
		t.Error("Policy lost in round trip")
	}
}
