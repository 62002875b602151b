package temporal

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	dErrors "chrono/pkg/domain-errors"
)

// Timestamp is an absolute UTC instant at microsecond resolution plus a
// presentation zone. The zone only flavors derived calendar fields and text
// output; it never participates in equality, ordering, or the epoch value.
//
// The internal state is always the bare instant integer plus a TimeZone.
// time.Time appears only transiently, at the FromTime/Time boundary and
// inside calendar decomposition.
type Timestamp struct {
	micros int64
	zone   TimeZone
}

const microsPerMinute = 60 * 1_000_000

// Of interprets the given fields as a local clock reading in zone and derives
// the UTC instant by subtracting the zone offset, rolling the date across
// boundaries where needed (midnight KST lands on the previous UTC day).
// Calendar fields are validated strictly.
func Of(year, month, day, hour, minute, second, millisecond int, zone TimeZone) (Timestamp, error) {
	if _, err := NewDate(year, month, day); err != nil {
		return Timestamp{}, err
	}
	if _, err := NewTimeOfDay(hour, minute); err != nil {
		return Timestamp{}, err
	}
	if second < 0 || second > 59 {
		return Timestamp{}, dErrors.Newf(dErrors.CodeInvalidInput, "second out of range: %d", second)
	}
	if millisecond < 0 || millisecond > 999 {
		return Timestamp{}, dErrors.Newf(dErrors.CodeInvalidInput, "millisecond out of range: %d", millisecond)
	}
	local := composeMicros(year, month, day, hour, minute, second, int64(millisecond)*1000)
	return Timestamp{micros: local - int64(zone.offsetMinutes)*microsPerMinute, zone: zone}, nil
}

// Now captures the current host instant. The zone tags presentation only and
// never alters the captured instant.
func Now(zone TimeZone) Timestamp {
	return Timestamp{micros: time.Now().UnixMicro(), zone: zone}
}

// Parse reads an RFC 3339 profile with deliberate input tolerance:
//
//   - "T" or a single space between date and clock
//   - 0 to 9 fractional-second digits; digits beyond 6 are truncated, never
//     rounded, so nanosecond input silently loses precision
//   - offset suffix "Z", "+HH:MM", "+HHMM", or "+HH" (and negative forms);
//     "-00:00", "+00:00", and "Z" are all UTC
//   - leading and trailing whitespace is trimmed first
//
// Text with no offset suffix is tagged UTC. That asymmetry is intentional and
// must not be reinterpreted as host-local time.
//
// The scanner is a single fixed-position pass, so cost is linear in input
// length regardless of content.
func Parse(input string) (Timestamp, error) {
	s := strings.TrimSpace(input)
	if len(s) < 19 {
		return Timestamp{}, dErrors.New(dErrors.CodeInvalidInput, "timestamp too short")
	}
	if s[4] != '-' || s[7] != '-' || (s[10] != 'T' && s[10] != ' ') || s[13] != ':' || s[16] != ':' {
		return Timestamp{}, dErrors.New(dErrors.CodeInvalidInput, "malformed timestamp")
	}
	year, ok1 := parseDigits(s[0:4])
	month, ok2 := twoDigits(s[5:7])
	day, ok3 := twoDigits(s[8:10])
	hour, ok4 := twoDigits(s[11:13])
	minute, ok5 := twoDigits(s[14:16])
	second, ok6 := twoDigits(s[17:19])
	if !(ok1 && ok2 && ok3 && ok4 && ok5 && ok6) {
		return Timestamp{}, dErrors.New(dErrors.CodeInvalidInput, "malformed timestamp")
	}

	rest := s[19:]
	var fracMicros int64
	if rest != "" && rest[0] == '.' {
		j := 1
		for j < len(rest) && rest[j] >= '0' && rest[j] <= '9' {
			j++
		}
		digits := rest[1:j]
		if len(digits) == 0 || len(digits) > 9 {
			return Timestamp{}, dErrors.New(dErrors.CodeInvalidInput, "malformed fractional seconds")
		}
		// Keep at most 6 digits, right-pad to microseconds.
		if len(digits) > 6 {
			digits = digits[:6]
		}
		for i := 0; i < 6; i++ {
			fracMicros *= 10
			if i < len(digits) {
				fracMicros += int64(digits[i] - '0')
			}
		}
		rest = rest[j:]
	}

	zone := UTC
	if rest != "" {
		parsed, err := ParseOffset(rest)
		if err != nil {
			return Timestamp{}, err
		}
		zone = parsed
	}

	if _, err := NewDate(year, month, day); err != nil {
		return Timestamp{}, err
	}
	if _, err := NewTimeOfDay(hour, minute); err != nil {
		return Timestamp{}, err
	}
	if second > 59 {
		return Timestamp{}, dErrors.Newf(dErrors.CodeInvalidInput, "second out of range: %d", second)
	}

	local := composeMicros(year, month, day, hour, minute, second, fracMicros)
	return Timestamp{micros: local - int64(zone.offsetMinutes)*microsPerMinute, zone: zone}, nil
}

// FromEpochMilliseconds builds a Timestamp directly from epoch milliseconds.
// No calendar-range validation happens here: out-of-range values flow through
// the decomposition arithmetic as-is. This asymmetry with Date is intentional.
func FromEpochMilliseconds(ms int64, zone TimeZone) Timestamp {
	return Timestamp{micros: ms * 1000, zone: zone}
}

// FromEpochMicroseconds builds a Timestamp directly from epoch microseconds,
// with the same no-validation contract as FromEpochMilliseconds.
func FromEpochMicroseconds(us int64, zone TimeZone) Timestamp {
	return Timestamp{micros: us, zone: zone}
}

// FromTime converts a native time.Time, normalizing to UTC first (its
// original location tag is discarded) and attaching zone as presentation.
// Sub-microsecond precision is truncated.
func FromTime(t time.Time, zone TimeZone) Timestamp {
	return Timestamp{micros: t.UnixMicro(), zone: zone}
}

// Time returns the UTC instant as the host-native type, flagged UTC.
func (t Timestamp) Time() time.Time {
	return time.UnixMicro(t.micros).UTC()
}

// local decomposes the instant shifted by the presentation offset as a
// UTC-flavored calendar value. Pure and idempotent; recomputed on demand.
func (t Timestamp) local() time.Time {
	return time.UnixMicro(t.micros + int64(t.zone.offsetMinutes)*microsPerMinute).UTC()
}

// Zone returns the presentation zone.
func (t Timestamp) Zone() TimeZone { return t.zone }

// UnixMicro returns the instant as epoch microseconds, zone-independent.
func (t Timestamp) UnixMicro() int64 { return t.micros }

// UnixMilli returns the instant as epoch milliseconds, zone-independent.
func (t Timestamp) UnixMilli() int64 { return t.Time().UnixMilli() }

// Year returns the zone-local calendar year.
func (t Timestamp) Year() int { return t.local().Year() }

// Month returns the zone-local month, 1..12.
func (t Timestamp) Month() int { return int(t.local().Month()) }

// Day returns the zone-local day of month.
func (t Timestamp) Day() int { return t.local().Day() }

// Hour returns the zone-local hour.
func (t Timestamp) Hour() int { return t.local().Hour() }

// Minute returns the zone-local minute.
func (t Timestamp) Minute() int { return t.local().Minute() }

// Second returns the zone-local second.
func (t Timestamp) Second() int { return t.local().Second() }

// Millisecond returns the zone-local millisecond component, 0..999.
func (t Timestamp) Millisecond() int { return t.local().Nanosecond() / 1_000_000 }

// Microsecond returns the sub-millisecond microsecond component, 0..999.
func (t Timestamp) Microsecond() int { return (t.local().Nanosecond() / 1000) % 1000 }

// Weekday returns the zone-local ISO weekday: 1=Monday .. 7=Sunday.
func (t Timestamp) Weekday() int {
	wd := int(t.local().Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// InZone returns the same instant viewed through another zone. O(1), and the
// instant is bit-for-bit stable through any chain of zone changes.
func (t Timestamp) InZone(zone TimeZone) Timestamp {
	return Timestamp{micros: t.micros, zone: zone}
}

// Date extracts the zone-local calendar date through the validating
// constructor. It only fails when the instant decomposes outside Date's
// year range, which requires an unvalidated epoch constructor input.
func (t Timestamp) Date() (Date, error) {
	l := t.local()
	return NewDate(l.Year(), int(l.Month()), l.Day())
}

// TimeOfDay extracts the zone-local wall-clock reading. The decomposition
// always yields in-range fields.
func (t Timestamp) TimeOfDay() TimeOfDay {
	l := t.local()
	return TimeOfDay{hour: l.Hour(), minute: l.Minute()}
}

// Add shifts the instant by d, preserving the presentation zone.
func (t Timestamp) Add(d time.Duration) Timestamp {
	return Timestamp{micros: t.micros + d.Microseconds(), zone: t.zone}
}

// Sub returns the signed duration between two instants, zone-independent.
func (t Timestamp) Sub(other Timestamp) time.Duration {
	return time.Duration(t.micros-other.micros) * time.Microsecond
}

// Compare orders strictly by instant.
func (t Timestamp) Compare(other Timestamp) int {
	switch {
	case t.micros < other.micros:
		return -1
	case t.micros > other.micros:
		return 1
	default:
		return 0
	}
}

// Before reports whether t's instant precedes other's.
func (t Timestamp) Before(other Timestamp) bool { return t.micros < other.micros }

// After reports whether t's instant follows other's.
func (t Timestamp) After(other Timestamp) bool { return t.micros > other.micros }

// Equal is instant equality. Two Timestamps differing only in presentation
// zone are equal and interchangeable as keys on UnixMicro.
func (t Timestamp) Equal(other Timestamp) bool { return t.micros == other.micros }

// String renders the one canonical wire form:
// YYYY-MM-DDTHH:mm:ss.SSS±HH:MM, always three fractional digits and always a
// signed numeric offset (UTC is "+00:00", never a bare "Z"). Deliberately
// stricter than what Parse accepts.
func (t Timestamp) String() string {
	l := t.local()
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%03d%s",
		l.Year(), int(l.Month()), l.Day(),
		l.Hour(), l.Minute(), l.Second(), l.Nanosecond()/1_000_000,
		t.zone.ISOOffset())
}

// Format substitutes exactly seven tokens — yyyy, MM, dd, HH, mm, ss, SSS —
// over the zone-local fields. Every other character passes through unchanged.
// This is plain text replacement in one pass, so pattern length alone bounds
// the cost.
func (t Timestamp) Format(pattern string) string {
	l := t.local()
	var b strings.Builder
	b.Grow(len(pattern))
	for i := 0; i < len(pattern); {
		rest := pattern[i:]
		switch {
		case strings.HasPrefix(rest, "yyyy"):
			fmt.Fprintf(&b, "%04d", l.Year())
			i += 4
		case strings.HasPrefix(rest, "SSS"):
			fmt.Fprintf(&b, "%03d", l.Nanosecond()/1_000_000)
			i += 3
		case strings.HasPrefix(rest, "MM"):
			fmt.Fprintf(&b, "%02d", int(l.Month()))
			i += 2
		case strings.HasPrefix(rest, "dd"):
			fmt.Fprintf(&b, "%02d", l.Day())
			i += 2
		case strings.HasPrefix(rest, "HH"):
			fmt.Fprintf(&b, "%02d", l.Hour())
			i += 2
		case strings.HasPrefix(rest, "mm"):
			fmt.Fprintf(&b, "%02d", l.Minute())
			i += 2
		case strings.HasPrefix(rest, "ss"):
			fmt.Fprintf(&b, "%02d", l.Second())
			i += 2
		default:
			b.WriteByte(pattern[i])
			i++
		}
	}
	return b.String()
}

// MarshalJSON emits the canonical string form.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts any text Parse accepts, as a JSON string.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInvalidInput, "timestamp must be a JSON string")
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// composeMicros flattens validated calendar fields into epoch microseconds,
// UTC-flavored.
func composeMicros(year, month, day, hour, minute, second int, fracMicros int64) int64 {
	return time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC).UnixMicro() + fracMicros
}
