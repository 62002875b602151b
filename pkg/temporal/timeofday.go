package temporal

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	dErrors "chrono/pkg/domain-errors"
)

// TimeOfDay is an immutable wall-clock reading: hour and minute only.
// Seconds are out of scope, and a time of day without a date carries no
// offset, so none is stored.
//
// The wire form is the compact integer hour*100+minute (14:30 -> 1430),
// emitted as a bare JSON number.
type TimeOfDay struct {
	hour   int
	minute int
}

// NewTimeOfDay validates hour 0..23 and minute 0..59.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 {
		return TimeOfDay{}, dErrors.Newf(dErrors.CodeInvalidInput, "hour out of range: %d", hour)
	}
	if minute < 0 || minute > 59 {
		return TimeOfDay{}, dErrors.Newf(dErrors.CodeInvalidInput, "minute out of range: %d", minute)
	}
	return TimeOfDay{hour: hour, minute: minute}, nil
}

// TimeOfDayFromJSON decodes the compact integer form from a raw JSON value.
// An integer or a numeric string is accepted; floats, booleans, null, arrays,
// and objects are rejected. Decoded fields are still range-checked, so 2400
// and 1260 fail even though they decode cleanly.
func TimeOfDayFromJSON(data []byte) (TimeOfDay, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		return TimeOfDay{}, dErrors.Wrap(err, dErrors.CodeInvalidInput, "malformed time of day")
	}

	var literal string
	switch v := tok.(type) {
	case json.Number:
		literal = v.String()
	case string:
		literal = v
	default:
		return TimeOfDay{}, dErrors.Newf(dErrors.CodeInvalidInput, "time of day must be an integer or numeric string, got %T", tok)
	}

	// strconv.Atoi rejects fractional and exponent literals like "1.5".
	code, err := strconv.Atoi(literal)
	if err != nil {
		return TimeOfDay{}, dErrors.Newf(dErrors.CodeInvalidInput, "time of day is not an integer: %q", literal)
	}
	if code < 0 {
		return TimeOfDay{}, dErrors.Newf(dErrors.CodeInvalidInput, "time of day cannot be negative: %d", code)
	}
	return NewTimeOfDay(code/100, code%100)
}

// Hour returns the hour, 0..23.
func (t TimeOfDay) Hour() int { return t.hour }

// Minute returns the minute, 0..59.
func (t TimeOfDay) Minute() int { return t.minute }

// Compare orders lexicographically on (hour, minute).
func (t TimeOfDay) Compare(other TimeOfDay) int {
	if t.hour != other.hour {
		return cmpInt(t.hour, other.hour)
	}
	return cmpInt(t.minute, other.minute)
}

// Before reports whether t is earlier in the day than other.
func (t TimeOfDay) Before(other TimeOfDay) bool { return t.Compare(other) < 0 }

// After reports whether t is later in the day than other.
func (t TimeOfDay) After(other TimeOfDay) bool { return t.Compare(other) > 0 }

// String renders the zero-padded "HH:mm" form.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.hour, t.minute)
}

// MarshalJSON emits the bare integer hour*100+minute.
func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(t.hour*100 + t.minute)), nil
}

// UnmarshalJSON accepts the integer or numeric-string form.
func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	parsed, err := TimeOfDayFromJSON(data)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
