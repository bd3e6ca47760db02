package gorm

import (
	"database/sql/driver"
	"time"

	"github.com/pkg/errors"
)

// timestampLayout has a fixed width, so SQLite text ordering of stored
// timestamps is chronological ordering.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

// Timestamp is a UTC time stored as fixed width text.
type Timestamp time.Time

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp(t.UTC())
}

func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// GormDataType implements schema.GormDataTypeInterface.
func (Timestamp) GormDataType() string {
	return "datetime"
}

// Value implements driver.Valuer.
func (t Timestamp) Value() (driver.Value, error) {
	return time.Time(t).UTC().Format(timestampLayout), nil
}

// Scan implements sql.Scanner.
func (t *Timestamp) Scan(value any) error {
	switch v := value.(type) {
	case time.Time:
		*t = NewTimestamp(v)
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return errors.Errorf("could not scan timestamp from %T", value)
	}

	return nil
}

func (t *Timestamp) parse(s string) error {
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return errors.WithStack(err)
	}

	*t = NewTimestamp(parsed)

	return nil
}
