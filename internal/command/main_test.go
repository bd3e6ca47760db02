package command

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
)

func TestNewLogger(t *testing.T) {
	var buff bytes.Buffer

	logger, err := NewLogger(&buff, "warn", LogFormatJSON)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	ctx := slogx.WithAttrs(context.Background(), slog.String("user_id", "alice"))

	logger.InfoContext(ctx, "ignored")
	logger.WarnContext(ctx, "todo deleted")

	lines := strings.Split(strings.TrimSpace(buff.String()), "\n")
	if e, g := 1, len(lines); e != g {
		t.Fatalf("len(lines): expected %d, got %d", e, g)
	}

	var record map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &record); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := "todo deleted", record["msg"]; e != g {
		t.Errorf("record[\"msg\"]: expected %v, got %v", e, g)
	}

	if e, g := "alice", record["user_id"]; e != g {
		t.Errorf("record[\"user_id\"]: expected %v, got %v", e, g)
	}
}

func TestNewLoggerInvalid(t *testing.T) {
	var buff bytes.Buffer

	if _, err := NewLogger(&buff, "verbose", LogFormatText); err == nil {
		t.Errorf("err: expected an error for an unknown level")
	}

	if _, err := NewLogger(&buff, "info", "xml"); err == nil {
		t.Errorf("err: expected an error for an unknown format")
	}
}
