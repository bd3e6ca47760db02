package config

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestConfigLogValue(t *testing.T) {
	t.Setenv("TODO_HTTP_SESSION_KEYS", "first-session-key,second-session-key")
	t.Setenv("TODO_HTTP_METRICS_USERNAME", "prometheus")
	t.Setenv("TODO_HTTP_METRICS_PASSWORD", "metrics-password")
	t.Setenv("TODO_SENTRY_DSN", "https://public-key@sentry.example.com/1")

	conf, err := Parse()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	var buff bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buff, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.Debug("using configuration", slog.Any("config", conf))

	output := buff.String()

	for _, secret := range []string{"first-session-key", "second-session-key", "metrics-password", "public-key"} {
		if strings.Contains(output, secret) {
			t.Errorf("output: expected '%s' to be redacted, got %s", secret, output)
		}
	}

	for _, expected := range []string{redacted, "prometheus", ":3000"} {
		if !strings.Contains(output, expected) {
			t.Errorf("output: expected to contain '%s', got %s", expected, output)
		}
	}

	if e, g := "first-session-key", conf.HTTP.Session.Keys[0]; e != g {
		t.Errorf("conf.HTTP.Session.Keys[0]: expected %s, got %s", e, g)
	}
}
