package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/povarna/generative-ai-agents/validation-agent/internal/models"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath     = "configs/validator.yaml"
	DefaultAlertThreshold = 0.7
)

// Path returns the config file location, honoring VALIDATOR_CONFIG_PATH.
func Path() string {
	path := os.Getenv("VALIDATOR_CONFIG_PATH")
	if path == "" {
		path = DefaultConfigPath
	}
	return path
}

func LoadValidatorConfig() (*ValidatorConfig, error) {
	path := Path()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg ValidatorConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *ValidatorConfig {
	cfg := &ValidatorConfig{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *ValidatorConfig) {
	if cfg.Validation.Level == "" {
		cfg.Validation.Level = string(models.LevelStandard)
	}
	if cfg.Validation.AlertThreshold == nil {
		threshold := DefaultAlertThreshold
		cfg.Validation.AlertThreshold = &threshold
	}
	if cfg.Stream.Name == "" {
		cfg.Stream.Name = "validation-requests"
	}
	if cfg.Stream.Group == "" {
		cfg.Stream.Group = "validator-group"
	}
	if cfg.Stream.ResultsStream == "" {
		cfg.Stream.ResultsStream = "validation-verdicts"
	}
	if cfg.Batch.Workers == 0 {
		cfg.Batch.Workers = 5
	}
}

func (c *ValidatorConfig) Validate() error {
	var errs []error

	if _, err := models.ParseValidationLevel(c.Validation.Level); err != nil {
		errs = append(errs, fmt.Errorf("invalid validation level %q: %w", c.Validation.Level, err))
	}
	if threshold := c.Validation.Threshold(); threshold < 0 || threshold > 1 {
		errs = append(errs, fmt.Errorf("invalid alert_threshold %.2f: must be between 0 and 1", threshold))
	}
	if c.Stream.Name == "" || c.Stream.Group == "" || c.Stream.ResultsStream == "" {
		errs = append(errs, errors.New("stream name, group and results_stream are required"))
	}
	if c.Batch.Workers < 0 {
		errs = append(errs, fmt.Errorf("invalid batch workers %d: must be positive", c.Batch.Workers))
	}

	return errors.Join(errs...)
}
