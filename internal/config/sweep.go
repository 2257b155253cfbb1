package config

import "fmt"

// SweepConfig holds scheduled team reconciliation configuration.
type SweepConfig struct {
	// Enabled toggles the scheduled sweep.
	Enabled bool
	// Schedule is a cron expression for the sweep (default: daily at midnight UTC).
	Schedule string
}

// LoadSweepConfigFromEnv loads sweep configuration from environment variables.
func LoadSweepConfigFromEnv() SweepConfig {
	return SweepConfig{
		Enabled:  GetEnvBool("SWEEP_ENABLED", true),
		Schedule: GetEnv("SWEEP_SCHEDULE", "0 0 * * *"),
	}
}

// Validate validates sweep configuration.
func (c SweepConfig) Validate() error {
	if c.Enabled && c.Schedule == "" {
		return fmt.Errorf("SWEEP_SCHEDULE must be set when sweep is enabled")
	}
	return nil
}
