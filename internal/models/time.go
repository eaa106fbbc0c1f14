package models

import (
	"bytes"
	"errors"
	"fmt"
	"time"
)

const (
	// DateLayout is the ISO calendar date layout used on the wire.
	DateLayout = "2006-01-02"
	// LocalDateTimeLayout is the ISO local date-time layout used on the wire.
	// Fractional seconds are optional when parsing.
	LocalDateTimeLayout = "2006-01-02T15:04:05.999999"
)

var jsonNull = []byte("null")

// ErrZeroDate is returned for 0001-01-01, which would be indistinguishable from an unset date.
var ErrZeroDate = errors.New("date 0001-01-01 is not supported, use null for an unset date")

// Date is a calendar date without a time of day. The zero value is encoded as JSON null.
type Date struct {
	time.Time
}

// NewDate returns the Date for the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return jsonNull, nil
	}
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	value, ok, err := unquote(data)
	if err != nil || !ok {
		d.Time = time.Time{}
		return err
	}

	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", value, err)
	}
	if parsed.IsZero() {
		return fmt.Errorf("%w: %s", ErrZeroDate, value)
	}
	d.Time = parsed

	return nil
}

// Ptr returns nil for the zero Date, which is how an unset date is stored.
func (d Date) Ptr() *time.Time {
	if d.IsZero() {
		return nil
	}
	t := d.Time
	return &t
}

// DateFromPtr converts a nullable database value into a Date.
func DateFromPtr(t *time.Time) Date {
	if t == nil {
		return Date{}
	}
	return Date{Time: *t}
}

// LocalDateTime is a timestamp without a zone offset.
type LocalDateTime struct {
	time.Time
}

// NewLocalDateTime drops precision below a microsecond so that values read back
// from the store compare equal to the values written.
func NewLocalDateTime(t time.Time) LocalDateTime {
	return LocalDateTime{Time: t.Truncate(time.Microsecond)}
}

// MarshalJSON implements json.Marshaler.
func (l LocalDateTime) MarshalJSON() ([]byte, error) {
	if l.IsZero() {
		return jsonNull, nil
	}
	return []byte(`"` + l.Format(LocalDateTimeLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (l *LocalDateTime) UnmarshalJSON(data []byte) error {
	value, ok, err := unquote(data)
	if err != nil || !ok {
		l.Time = time.Time{}
		return err
	}

	parsed, err := time.Parse("2006-01-02T15:04:05", value)
	if err != nil {
		parsed, err = time.Parse(time.RFC3339Nano, value)
		if err != nil {
			return fmt.Errorf("invalid date-time %q, expected YYYY-MM-DDTHH:MM:SS: %w", value, err)
		}
	}
	l.Time = parsed

	return nil
}

// unquote returns the string content of a JSON string token.
// ok is false for null and for the empty string.
func unquote(data []byte) (string, bool, error) {
	if bytes.Equal(data, jsonNull) {
		return "", false, nil
	}
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return "", false, fmt.Errorf("expected a JSON string, got %s", data)
	}
	value := string(data[1 : len(data)-1])

	return value, value != "", nil
}
