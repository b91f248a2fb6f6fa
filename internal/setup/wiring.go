package setup

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/povarna/generative-ai-agents/validation-agent/internal/aggregator"
	"github.com/povarna/generative-ai-agents/validation-agent/internal/config"
	"github.com/povarna/generative-ai-agents/validation-agent/internal/executor"
	"github.com/povarna/generative-ai-agents/validation-agent/internal/history"
	"github.com/povarna/generative-ai-agents/validation-agent/internal/models"
	"github.com/povarna/generative-ai-agents/validation-agent/internal/prechecks"
	"github.com/rs/zerolog"
)

type Config struct {
	ValidationLevel string
	AlertThreshold  float64
	LogLevel        string
	APIPort         string
	RedisAddr       string
	RedisPassword   string
	StreamProvider  string
	Stream          config.StreamConfig
	BatchWorkers    int
}

type Dependencies struct {
	Validator *executor.Validator
	Logger    *zerolog.Logger
	Config    *Config
}

// LoadConfig reads the YAML file (or its defaults when absent) and applies environment overrides.
func LoadConfig() (*Config, error) {
	fileCfg, err := config.LoadValidatorConfig()
	if errors.Is(err, fs.ErrNotExist) {
		fileCfg = config.Default()
	} else if err != nil {
		return nil, err
	}

	cfg := &Config{
		ValidationLevel: getEnv("VALIDATION_LEVEL", fileCfg.Validation.Level),
		AlertThreshold:  getEnvFloat("ALERT_THRESHOLD", fileCfg.Validation.Threshold()),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		APIPort:         getEnv("VALIDATOR_API_PORT", "18082"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		StreamProvider:  getEnv("STREAM_PROVIDER", "redis"),
		Stream:          fileCfg.Stream,
		BatchWorkers:    fileCfg.Batch.Workers,
	}

	if cfg.AlertThreshold < 0 || cfg.AlertThreshold > 1 {
		return nil, fmt.Errorf("invalid ALERT_THRESHOLD %.2f: must be between 0 and 1", cfg.AlertThreshold)
	}

	return cfg, nil
}

func Wire(cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	level, err := models.ParseValidationLevel(cfg.ValidationLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse validation level %q: %w", cfg.ValidationLevel, err)
	}

	validator := executor.NewValidator(
		level,
		prechecks.NewStageRunner(),
		aggregator.NewAggregator(aggregator.DefaultPenalties, logger),
		history.New(),
		cfg.AlertThreshold,
		logger,
	)

	logger.Info().
		Str("validation_level", string(level)).
		Float64("alert_threshold", cfg.AlertThreshold).
		Msg("Validator wired")

	return &Dependencies{
		Validator: validator,
		Logger:    logger,
		Config:    cfg,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		value = defaultValue
	}

	return value
}
