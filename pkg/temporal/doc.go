// Package temporal provides timezone-aware instant, date, and time-of-day
// value types for exchanging timestamps across heterogeneous backends.
//
// The four types and their roles:
//
//   - TimeZone: an immutable fixed UTC offset plus a display name, with a
//     closed 33-entry named registry. Identity is the offset only.
//   - Date: a strictly validated proleptic-Gregorian calendar date.
//   - TimeOfDay: an hour/minute wall-clock reading with a compact integer
//     wire form.
//   - Timestamp: a UTC instant at microsecond resolution plus a presentation
//     zone, owning RFC 3339 parsing/formatting, arithmetic, and comparison.
//
// All four are immutable values: constructors validate at trust boundaries
// (a failed construction yields no object), and no instance is ever mutated
// afterwards, so concurrent use needs no locking. The only operations that
// touch the outside world are Now and Today, which read the host wall clock.
//
// Offsets are fixed at construction or parse time and never re-resolved
// against a timezone database; historical and DST rule lookups are out of
// scope.
package temporal
