package config

import "log/slog"

const redacted = "[REDACTED]"

// loggableConfig has no LogValue method and is logged field by field.
type loggableConfig Config

// LogValue implements slog.LogValuer. Session keys, the metrics password
// and the Sentry DSN are masked.
func (c Config) LogValue() slog.Value {
	safe := c

	safe.HTTP.Session.Keys = make([]string, len(c.HTTP.Session.Keys))
	for i := range c.HTTP.Session.Keys {
		safe.HTTP.Session.Keys[i] = redacted
	}

	safe.HTTP.Metrics.Password = redact(c.HTTP.Metrics.Password)
	safe.Sentry.DSN = redact(c.Sentry.DSN)

	return slog.AnyValue(loggableConfig(safe))
}

func redact(secret string) string {
	if secret == "" {
		return ""
	}

	return redacted
}
