package temporal

import (
	"fmt"
	"time"

	dErrors "chrono/pkg/domain-errors"
)

// TimeZone is an immutable fixed UTC offset with a display name.
//
// Identity is the offset alone: two zones with different names but the same
// offset are interchangeable, and the registry deliberately carries two
// entries named "CST" with different offsets. Compare zones with Equal, not
// with ==.
type TimeZone struct {
	name          string
	offsetMinutes int
}

// Legal offset window: -12:00 through +14:00 inclusive.
const (
	minOffsetMinutes = -12 * 60
	maxOffsetMinutes = 14 * 60
)

// Named zone registry. An ordered list, not a map: names are not unique
// (see the two CST entries), and offset lookups prefer the earliest entry.
var (
	UTC = TimeZone{name: "UTC", offsetMinutes: 0}
	GMT = TimeZone{name: "GMT", offsetMinutes: 0}

	NST  = TimeZone{name: "NST", offsetMinutes: -3*60 - 30}
	AST  = TimeZone{name: "AST", offsetMinutes: -4 * 60}
	EST  = TimeZone{name: "EST", offsetMinutes: -5 * 60}
	EDT  = TimeZone{name: "EDT", offsetMinutes: -4 * 60}
	CST  = TimeZone{name: "CST", offsetMinutes: -6 * 60}
	CDT  = TimeZone{name: "CDT", offsetMinutes: -5 * 60}
	MST  = TimeZone{name: "MST", offsetMinutes: -7 * 60}
	MDT  = TimeZone{name: "MDT", offsetMinutes: -6 * 60}
	PST  = TimeZone{name: "PST", offsetMinutes: -8 * 60}
	PDT  = TimeZone{name: "PDT", offsetMinutes: -7 * 60}
	AKST = TimeZone{name: "AKST", offsetMinutes: -9 * 60}
	HST  = TimeZone{name: "HST", offsetMinutes: -10 * 60}

	WET  = TimeZone{name: "WET", offsetMinutes: 0}
	BST  = TimeZone{name: "BST", offsetMinutes: 60}
	CET  = TimeZone{name: "CET", offsetMinutes: 60}
	CEST = TimeZone{name: "CEST", offsetMinutes: 2 * 60}
	EET  = TimeZone{name: "EET", offsetMinutes: 2 * 60}
	EEST = TimeZone{name: "EEST", offsetMinutes: 3 * 60}
	MSK  = TimeZone{name: "MSK", offsetMinutes: 3 * 60}

	IST = TimeZone{name: "IST", offsetMinutes: 5*60 + 30}
	ICT = TimeZone{name: "ICT", offsetMinutes: 7 * 60}
	SGT = TimeZone{name: "SGT", offsetMinutes: 8 * 60}
	HKT = TimeZone{name: "HKT", offsetMinutes: 8 * 60}
	// CSTChina shares the "CST" name with US Central time. Name collisions
	// are legal; only the offset is identity.
	CSTChina = TimeZone{name: "CST", offsetMinutes: 8 * 60}
	KST      = TimeZone{name: "KST", offsetMinutes: 9 * 60}
	JST      = TimeZone{name: "JST", offsetMinutes: 9 * 60}

	AWST = TimeZone{name: "AWST", offsetMinutes: 8 * 60}
	ACST = TimeZone{name: "ACST", offsetMinutes: 9*60 + 30}
	AEST = TimeZone{name: "AEST", offsetMinutes: 10 * 60}
	AEDT = TimeZone{name: "AEDT", offsetMinutes: 11 * 60}
	NZST = TimeZone{name: "NZST", offsetMinutes: 12 * 60}
)

// registry is the closed, compiled-in set of named zones. Order matters:
// FromName and offset resolution both return the earliest match, which is why
// KST precedes JST.
var registry = []TimeZone{
	UTC, GMT,
	NST, AST, EST, EDT, CST, CDT, MST, MDT, PST, PDT, AKST, HST,
	WET, BST, CET, CEST, EET, EEST, MSK,
	IST, ICT, SGT, HKT, CSTChina, KST, JST,
	AWST, ACST, AEST, AEDT, NZST,
}

// Zones returns the named zone registry in order. The returned slice is a
// copy; the registry itself is not runtime-extensible.
func Zones() []TimeZone {
	out := make([]TimeZone, len(registry))
	copy(out, registry)
	return out
}

// NewTimeZone builds a zone from clock-style offset parts. The minutes part
// follows the sign of the hours part, so NewTimeZone(-3, 30) is -03:30.
// Returns a registry entry when one carries the same offset.
func NewTimeZone(hours, minutes int) (TimeZone, error) {
	if minutes < 0 || minutes > 59 {
		return TimeZone{}, dErrors.Newf(dErrors.CodeInvalidInput, "offset minutes out of range: %d", minutes)
	}
	total := hours * 60
	if hours < 0 {
		total -= minutes
	} else {
		total += minutes
	}
	if total < minOffsetMinutes || total > maxOffsetMinutes {
		return TimeZone{}, dErrors.Newf(dErrors.CodeInvalidInput, "offset outside [-12:00, +14:00]: %+03d:%02d", hours, minutes)
	}
	return zoneForOffset(total), nil
}

// FromName resolves a registry entry by exact, case-sensitive name.
// Where names collide (the two CST entries) the earliest entry wins.
func FromName(name string) (TimeZone, error) {
	for _, z := range registry {
		if z.name == name {
			return z, nil
		}
	}
	return TimeZone{}, dErrors.Newf(dErrors.CodeInvalidInput, "unknown timezone name: %q", name)
}

// ParseOffset parses an offset literal: "Z", "+HH:MM", "+HHMM", or "+HH" and
// their negative forms. A registry entry with the same offset is returned
// when one exists, so ParseOffset("+09:00") yields KST; otherwise an
// anonymous zone labeled after its offset is synthesized.
func ParseOffset(s string) (TimeZone, error) {
	if s == "Z" {
		return UTC, nil
	}
	if len(s) < 3 || (s[0] != '+' && s[0] != '-') {
		return TimeZone{}, dErrors.New(dErrors.CodeInvalidInput, "malformed offset literal")
	}
	hours, ok := twoDigits(s[1:3])
	if !ok {
		return TimeZone{}, dErrors.New(dErrors.CodeInvalidInput, "malformed offset hour")
	}
	var mins int
	switch rest := s[3:]; {
	case rest == "":
		// "+HH": minutes default to zero.
	case len(rest) == 2:
		mins, ok = twoDigits(rest)
	case len(rest) == 3 && rest[0] == ':':
		mins, ok = twoDigits(rest[1:])
	default:
		ok = false
	}
	if !ok {
		return TimeZone{}, dErrors.New(dErrors.CodeInvalidInput, "malformed offset minute")
	}
	if mins > 59 {
		return TimeZone{}, dErrors.Newf(dErrors.CodeInvalidInput, "offset minute out of range: %d", mins)
	}
	total := hours*60 + mins
	if s[0] == '-' {
		total = -total
	}
	if total < minOffsetMinutes || total > maxOffsetMinutes {
		return TimeZone{}, dErrors.Newf(dErrors.CodeInvalidInput, "offset outside [-12:00, +14:00]: %s", s)
	}
	return zoneForOffset(total), nil
}

// zoneForOffset prefers the earliest registry entry with a matching offset
// and falls back to an anonymous zone carrying a generated label.
func zoneForOffset(totalMinutes int) TimeZone {
	for _, z := range registry {
		if z.offsetMinutes == totalMinutes {
			return z
		}
	}
	return TimeZone{
		name:          "UTC" + isoOffset(totalMinutes),
		offsetMinutes: totalMinutes,
	}
}

// Name returns the display name ("KST", or "UTC+05:45" for anonymous zones).
func (z TimeZone) Name() string {
	return z.name
}

// OffsetMinutes returns the signed total offset in minutes.
func (z TimeZone) OffsetMinutes() int {
	return z.offsetMinutes
}

// Offset returns the offset as a signed duration.
func (z TimeZone) Offset() time.Duration {
	return time.Duration(z.offsetMinutes) * time.Minute
}

// ISOOffset renders the offset as ±HH:MM with the sign always present;
// UTC renders as "+00:00", never as a bare "Z".
func (z TimeZone) ISOOffset() string {
	return isoOffset(z.offsetMinutes)
}

// Equal reports offset identity. Names never participate.
func (z TimeZone) Equal(other TimeZone) bool {
	return z.offsetMinutes == other.offsetMinutes
}

func (z TimeZone) String() string {
	return z.name
}

func isoOffset(totalMinutes int) string {
	sign := "+"
	if totalMinutes < 0 {
		sign = "-"
		totalMinutes = -totalMinutes
	}
	return fmt.Sprintf("%s%02d:%02d", sign, totalMinutes/60, totalMinutes%60)
}

// twoDigits parses exactly two ASCII digits.
func twoDigits(s string) (int, bool) {
	if len(s) != 2 || s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}
