package config

// ValidatorConfig represents the complete validator configuration file
type ValidatorConfig struct {
	Validation ValidationConfig `yaml:"validation"`
	Stream     StreamConfig     `yaml:"stream"`
	Batch      BatchConfig      `yaml:"batch"`
}

// ValidationConfig selects the validation level and the caller-side alert policy
// AlertThreshold is a pointer so an explicit 0 (alerts off) is not mistaken for an unset key.
type ValidationConfig struct {
	Level          string   `yaml:"level"`
	AlertThreshold *float64 `yaml:"alert_threshold"`
}

// Threshold returns the configured alert threshold or the default when unset.
func (v ValidationConfig) Threshold() float64 {
	if v.AlertThreshold == nil {
		return DefaultAlertThreshold
	}
	return *v.AlertThreshold
}

// StreamConfig names the Redis streams used by the streaming consumer
type StreamConfig struct {
	Name          string `yaml:"name"`
	Group         string `yaml:"group"`
	ResultsStream string `yaml:"results_stream"`
}

type BatchConfig struct {
	Workers int `yaml:"workers"`
}
