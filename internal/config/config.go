package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Port int `envconfig:"PORT" default:"8080"`
	}

	Expiration struct {
		// Quotes in a non-terminal state with no activity for this many
		// days are swept into EXPIRED.
		ThresholdDays int           `envconfig:"QUOTE_EXPIRATION_DAYS" default:"30"`
		SweepInterval time.Duration `envconfig:"SWEEP_INTERVAL" default:"1h"`
	}

	Signature struct {
		// Captures of the same type on the same quote inside this window
		// get a DUPLICATE_CAPTURE warning.
		DuplicateWindow time.Duration `envconfig:"SIGNATURE_DUPLICATE_WINDOW" default:"10s"`
	}
}

func (c *Config) ExpirationThreshold() time.Duration {
	return time.Duration(c.Expiration.ThresholdDays) * 24 * time.Hour
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}
	return &cfg, nil
}
