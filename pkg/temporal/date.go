package temporal

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	dErrors "chrono/pkg/domain-errors"
)

// Date is an immutable proleptic-Gregorian calendar date. Unlike the epoch
// constructors on Timestamp, Date validates calendar existence strictly:
// Feb 30 or Apr 31 never construct.
type Date struct {
	year  int
	month int
	day   int
}

// monthDays holds days per month for non-leap years, 1-indexed.
var monthDays = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// NewDate validates ranges (year 0..9999, month 1..12) and real calendar
// existence before constructing.
func NewDate(year, month, day int) (Date, error) {
	if year < 0 || year > 9999 {
		return Date{}, dErrors.Newf(dErrors.CodeInvalidInput, "year out of range: %d", year)
	}
	if month < 1 || month > 12 {
		return Date{}, dErrors.Newf(dErrors.CodeInvalidInput, "month out of range: %d", month)
	}
	if day < 1 || day > DaysInMonth(year, month) {
		return Date{}, dErrors.Newf(dErrors.CodeInvalidInput, "day out of range: %04d-%02d-%02d", year, month, day)
	}
	return Date{year: year, month: month, day: day}, nil
}

// IsLeapYear applies the Gregorian rule: divisible by 4, except centuries
// unless divisible by 400.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the day count for a month, leap-aware for February.
// Months outside 1..12 report zero days.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 0
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month]
}

// ParseDate parses "yyyy-MM-dd". The text must split on "-" into exactly
// three digit-only segments forming a real calendar date; there is no
// partial recovery.
func ParseDate(s string) (Date, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return Date{}, dErrors.Newf(dErrors.CodeInvalidInput, "malformed date: %q", s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, ok := parseDigits(p)
		if !ok {
			return Date{}, dErrors.Newf(dErrors.CodeInvalidInput, "malformed date segment: %q", p)
		}
		nums[i] = n
	}
	return NewDate(nums[0], nums[1], nums[2])
}

// Today reads the host wall clock and returns its local calendar date.
func Today() Date {
	now := time.Now()
	return Date{year: now.Year(), month: int(now.Month()), day: now.Day()}
}

// Year returns the calendar year.
func (d Date) Year() int { return d.year }

// Month returns the calendar month, 1..12.
func (d Date) Month() int { return d.month }

// Day returns the day of month.
func (d Date) Day() int { return d.day }

// AddDays shifts the date by n calendar days, crossing month, year, and
// leap-day boundaries. The result comes from a valid decomposition and is
// constructed without revalidation.
func (d Date) AddDays(n int) Date {
	t := time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, n)
	return Date{year: t.Year(), month: int(t.Month()), day: t.Day()}
}

// Weekday returns the ISO weekday: 1=Monday .. 7=Sunday.
func (d Date) Weekday() int {
	wd := int(time.Date(d.year, time.Month(d.month), d.day, 0, 0, 0, 0, time.UTC).Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// Compare orders lexicographically on (year, month, day).
func (d Date) Compare(other Date) int {
	switch {
	case d.year != other.year:
		return cmpInt(d.year, other.year)
	case d.month != other.month:
		return cmpInt(d.month, other.month)
	default:
		return cmpInt(d.day, other.day)
	}
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is later than other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// String renders the fixed 4-2-2 zero-padded form; ParseDate round-trips it
// exactly.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// MarshalJSON emits the "yyyy-MM-dd" string form.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts the "yyyy-MM-dd" string form.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInvalidInput, "date must be a JSON string")
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// parseDigits parses a non-empty, digit-only segment.
func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
		if n > 99999999 {
			return 0, false
		}
	}
	return n, true
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
