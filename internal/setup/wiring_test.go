package setup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/povarna/generative-ai-agents/validation-agent/internal/models"
	"github.com/rs/zerolog"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("VALIDATOR_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("VALIDATION_LEVEL", "")
	t.Setenv("ALERT_THRESHOLD", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if cfg.ValidationLevel != "standard" {
		t.Errorf("Expected level standard, got %s", cfg.ValidationLevel)
	}
	if cfg.AlertThreshold != 0.7 {
		t.Errorf("Expected threshold 0.7, got %f", cfg.AlertThreshold)
	}
	if cfg.APIPort != "18082" {
		t.Errorf("Expected port 18082, got %s", cfg.APIPort)
	}
	if cfg.Stream.Name != "validation-requests" {
		t.Errorf("Expected default stream, got %s", cfg.Stream.Name)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "validator.yaml")
	content := "validation:\n  level: basic\n  alert_threshold: 0.5\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv("VALIDATOR_CONFIG_PATH", path)
	t.Setenv("VALIDATION_LEVEL", "strict")
	t.Setenv("ALERT_THRESHOLD", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if cfg.ValidationLevel != "strict" {
		t.Errorf("Expected env level strict, got %s", cfg.ValidationLevel)
	}
	if cfg.AlertThreshold != 0.5 {
		t.Errorf("Expected file threshold 0.5, got %f", cfg.AlertThreshold)
	}
}

func TestLoadConfig_ZeroThresholdFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "validator.yaml")
	if err := os.WriteFile(path, []byte("validation:\n  alert_threshold: 0\n"), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv("VALIDATOR_CONFIG_PATH", path)
	t.Setenv("ALERT_THRESHOLD", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if cfg.AlertThreshold != 0 {
		t.Errorf("Expected threshold 0 from file, got %f", cfg.AlertThreshold)
	}
}

func TestLoadConfig_InvalidThreshold(t *testing.T) {
	t.Setenv("VALIDATOR_CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("ALERT_THRESHOLD", "1.5")

	if _, err := LoadConfig(); err == nil {
		t.Error("Expected error for threshold out of range")
	}
}

func TestWire(t *testing.T) {
	logger := zerolog.Nop()

	deps, err := Wire(&Config{ValidationLevel: "STRICT", AlertThreshold: 0.7}, &logger)
	if err != nil {
		t.Fatalf("Wire() failed: %v", err)
	}
	if deps.Validator.Level() != models.LevelStrict {
		t.Errorf("Expected strict level, got %s", deps.Validator.Level())
	}

	if _, err := Wire(&Config{ValidationLevel: "paranoid"}, &logger); err == nil {
		t.Error("Expected error for unknown level")
	}
}
