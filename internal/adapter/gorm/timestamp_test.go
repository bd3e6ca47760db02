package gorm

import (
	"sort"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func TestTimestampTextOrder(t *testing.T) {
	base := time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

	times := []time.Time{
		base.Add(1500 * time.Millisecond),
		base.Add(120 * time.Millisecond),
		base.Add(time.Second),
		base,
		base.Add(100 * time.Millisecond),
		base.Add(100*time.Millisecond + time.Nanosecond),
	}

	texts := make([]string, 0, len(times))
	for _, tm := range times {
		value, err := NewTimestamp(tm).Value()
		if err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		text, ok := value.(string)
		if !ok {
			t.Fatalf("value: expected a string, got %T", value)
		}

		if e, g := len(timestampLayout), len(text); e != g {
			t.Errorf("len(%s): expected %d, got %d", text, e, g)
		}

		texts = append(texts, text)
	}

	sort.Strings(texts)
	sort.Slice(times, func(i, j int) bool { return times[i].Before(times[j]) })

	for i, text := range texts {
		var ts Timestamp
		if err := ts.Scan(text); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if e, g := times[i], ts.Time(); !e.Equal(g) {
			t.Errorf("texts[%d]: expected %v, got %v", i, e, g)
		}
	}
}

func TestTimestampScan(t *testing.T) {
	expected := time.Date(2024, time.March, 1, 10, 0, 0, 120000000, time.FixedZone("CET", 3600))

	values := []any{
		expected,
		"2024-03-01T09:00:00.12Z",
		[]byte("2024-03-01T09:00:00.120000000Z"),
	}

	for _, value := range values {
		var ts Timestamp
		if err := ts.Scan(value); err != nil {
			t.Fatalf("%+v", errors.WithStack(err))
		}

		if !ts.Time().Equal(expected) {
			t.Errorf("ts.Time(): expected %v, got %v", expected, ts.Time())
		}

		if e, g := time.UTC, ts.Time().Location(); e != g {
			t.Errorf("ts.Time().Location(): expected %v, got %v", e, g)
		}
	}

	var ts Timestamp
	if err := ts.Scan(42); err == nil {
		t.Errorf("ts.Scan(42): expected an error")
	}
}
