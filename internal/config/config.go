package config

import (
	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

const Prefix = "TODO_"

type Config struct {
	Logger  Logger  `envPrefix:"LOGGER_"`
	HTTP    HTTP    `envPrefix:"HTTP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Sentry  Sentry  `envPrefix:"SENTRY_"`
}

var (
	ErrMissingDSN             = errors.New("database dsn must not be empty")
	ErrInvalidRateLimit       = errors.New("rate limit interval and burst must be positive")
	ErrMissingMetricsPassword = errors.New("metrics password must be set along with the metrics username")
)

// Validate checks the settings that the environment parser cannot check on its own.
func (c *Config) Validate() error {
	if c.Storage.Database.DSN == "" {
		return errors.WithStack(ErrMissingDSN)
	}

	if rl := c.HTTP.RateLimit; rl.Enabled && (rl.Interval <= 0 || rl.MaxBurst <= 0) {
		return errors.WithStack(ErrInvalidRateLimit)
	}

	if c.HTTP.Metrics.Username != "" && c.HTTP.Metrics.Password == "" {
		return errors.WithStack(ErrMissingMetricsPassword)
	}

	return nil
}

func Parse() (*Config, error) {
	conf, err := env.ParseAsWithOptions[Config](env.Options{
		Prefix: Prefix,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := conf.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return &conf, nil
}
