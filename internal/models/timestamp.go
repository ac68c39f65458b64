package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// DisplayLayout is the wire format for creation timestamps, e.g.
// "March 26, 2025, 01:05:09 PM". Existing API clients parse this exact
// shape, so it is part of the contract.
const DisplayLayout = "January 2, 2006, 03:04:05 PM"

// DisplayTime is a time.Time stored as a regular timestamp column but
// serialized to JSON in the human-readable display format.
type DisplayTime time.Time

// NewDisplayTime returns a DisplayTime truncated to whole seconds, the
// resolution the display format can represent.
func NewDisplayTime(t time.Time) DisplayTime {
	return DisplayTime(t.UTC().Truncate(time.Second))
}

// Time returns the underlying time.Time.
func (t DisplayTime) Time() time.Time {
	return time.Time(t)
}

// IsZero reports whether the timestamp is unset.
func (t DisplayTime) IsZero() bool {
	return time.Time(t).IsZero()
}

// MarshalJSON renders the timestamp in the display format.
func (t DisplayTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(t).Format(DisplayLayout) + `"`), nil
}

// UnmarshalJSON accepts the display format as well as RFC 3339, so cached
// JSON copies round-trip regardless of which representation was stored.
func (t *DisplayTime) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid timestamp %q", s)
	}
	s = s[1 : len(s)-1]

	if parsed, err := time.Parse(DisplayLayout, s); err == nil {
		*t = DisplayTime(parsed)
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q", s)
	}
	*t = DisplayTime(parsed)
	return nil
}

// Value implements driver.Valuer so GORM stores the raw timestamp.
func (t DisplayTime) Value() (driver.Value, error) {
	return time.Time(t), nil
}

// Scan implements sql.Scanner.
func (t *DisplayTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*t = DisplayTime(v)
		return nil
	case nil:
		*t = DisplayTime{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DisplayTime", src)
	}
}

// GormDBDataType maps DisplayTime to the dialect's timestamp column type.
func (DisplayTime) GormDBDataType(db *gorm.DB, _ *schema.Field) string {
	switch db.Dialector.Name() {
	case "postgres":
		return "timestamptz"
	default:
		return "datetime"
	}
}
