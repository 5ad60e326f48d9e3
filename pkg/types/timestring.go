package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString represents a time of day in "HH:MM" format (24-hour, zero-padded).
// It is stored as a plain string so it can be used directly in JSON payloads
// and SQL parameters without timezone conversions.
type TimeString string

const timeStringLayout = "15:04"

// ErrInvalidTimeString is returned when a value does not match the HH:MM format.
var ErrInvalidTimeString = errors.New("invalid time string format, expected HH:MM")

// NewTimeString creates a TimeString from a time.Time, truncating to minutes.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	t, err := time.Parse(timeStringLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	// Re-format to normalize values like "9:05" to "09:05"
	return TimeString(t.Format(timeStringLayout)), nil
}

// String returns the underlying "HH:MM" representation.
func (ts TimeString) String() string {
	return string(ts)
}

// IsZero returns true if the value is empty.
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// Validate checks that the value is canonical zero-padded "HH:MM".
// Non-canonical forms like "9:00" are rejected: slot labels are compared
// as strings, so a single representation per time of day is required.
func (ts TimeString) Validate() error {
	t, err := time.Parse(timeStringLayout, string(ts))
	if err != nil || t.Format(timeStringLayout) != string(ts) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return nil
}

// Minutes returns the number of minutes since midnight.
func (ts TimeString) Minutes() (int, error) {
	t, err := time.Parse(timeStringLayout, string(ts))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return t.Hour()*60 + t.Minute(), nil
}

// AddMinutes returns a new TimeString shifted forward by the given number of
// minutes. The result wraps around midnight.
func (ts TimeString) AddMinutes(minutes int) (TimeString, error) {
	t, err := time.Parse(timeStringLayout, string(ts))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return TimeString(t.Add(time.Duration(minutes) * time.Minute).Format(timeStringLayout)), nil
}

// IsBefore reports whether ts is strictly earlier in the day than other.
// Invalid values compare as not-before.
func (ts TimeString) IsBefore(other TimeString) bool {
	a, errA := ts.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether ts is strictly later in the day than other.
func (ts TimeString) IsAfter(other TimeString) bool {
	a, errA := ts.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// Value implements driver.Valuer so TimeString can be used as an SQL parameter.
func (ts TimeString) Value() (driver.Value, error) {
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return string(ts), nil
}

// Scan implements sql.Scanner. Accepts TEXT, TIME and NULL columns.
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
		return nil
	case string:
		return ts.scanString(v)
	case []byte:
		return ts.scanString(string(v))
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeString, src)
	}
}

func (ts *TimeString) scanString(s string) error {
	// TIME columns come back as "HH:MM:SS"; keep only hours and minutes.
	if len(s) > 5 {
		s = s[:5]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
