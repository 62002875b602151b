package temporal

import (
	"encoding/json"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "chrono/pkg/domain-errors"
)

func mustParse(t *testing.T, s string) Timestamp {
	t.Helper()
	ts, err := Parse(s)
	require.NoError(t, err, s)
	return ts
}

func TestFromEpoch_Decomposition(t *testing.T) {
	t.Run("epoch zero is 1970-01-01 UTC", func(t *testing.T) {
		ts := FromEpochMilliseconds(0, UTC)
		assert.Equal(t, 1970, ts.Year())
		assert.Equal(t, 1, ts.Month())
		assert.Equal(t, 1, ts.Day())
		assert.Equal(t, 0, ts.Hour())
		assert.Equal(t, 0, ts.Minute())
		assert.Equal(t, 0, ts.Second())
		assert.Equal(t, 4, ts.Weekday(), "epoch was a Thursday")
	})

	t.Run("negative instants decompose", func(t *testing.T) {
		ts := FromEpochMicroseconds(-1, UTC)
		assert.Equal(t, 1969, ts.Year())
		assert.Equal(t, 12, ts.Month())
		assert.Equal(t, 31, ts.Day())
		assert.Equal(t, 23, ts.Hour())
		assert.Equal(t, 59, ts.Minute())
		assert.Equal(t, 59, ts.Second())
		assert.Equal(t, 999, ts.Millisecond())
		assert.Equal(t, 999, ts.Microsecond())
	})

	t.Run("no calendar-range validation", func(t *testing.T) {
		// Nine thousand years of microseconds: far outside Date's range,
		// still a legal Timestamp. The asymmetry with Date is deliberate.
		far := FromEpochMicroseconds(9_000*365*24*3600*1_000_000, UTC)
		assert.Greater(t, far.Year(), 9999)
		_, err := far.Date()
		require.Error(t, err, "Date extraction is where the range finally bites")
	})
}

func TestOf_LocalFieldsInZone(t *testing.T) {
	t.Run("midnight KST is the previous UTC day", func(t *testing.T) {
		ts, err := Of(2025, 1, 1, 0, 0, 0, 0, KST)
		require.NoError(t, err)

		utc := ts.Time()
		assert.Equal(t, 2024, utc.Year())
		assert.Equal(t, time.December, utc.Month())
		assert.Equal(t, 31, utc.Day())
		assert.Equal(t, 15, utc.Hour())
		assert.Equal(t, 0, utc.Minute())
		assert.Equal(t, 0, utc.Second())

		// Derived fields still read as the local clock that was given.
		assert.Equal(t, 2025, ts.Year())
		assert.Equal(t, 0, ts.Hour())
	})

	t.Run("UTC zone is a passthrough", func(t *testing.T) {
		ts, err := Of(2025, 6, 15, 12, 30, 45, 123, UTC)
		require.NoError(t, err)
		assert.Equal(t, "2025-06-15T12:30:45.123+00:00", ts.String())
	})

	t.Run("validates calendar fields", func(t *testing.T) {
		_, err := Of(2025, 2, 29, 0, 0, 0, 0, UTC)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))

		_, err = Of(2025, 1, 1, 24, 0, 0, 0, UTC)
		require.Error(t, err)

		_, err = Of(2025, 1, 1, 0, 0, 60, 0, UTC)
		require.Error(t, err)

		_, err = Of(2025, 1, 1, 0, 0, 0, 1000, UTC)
		require.Error(t, err)
	})
}

func TestParse_Tolerances(t *testing.T) {
	base := mustParse(t, "2025-01-01T03:00:00Z")

	t.Run("space separator", func(t *testing.T) {
		assert.True(t, base.Equal(mustParse(t, "2025-01-01 03:00:00Z")))
	})

	t.Run("surrounding whitespace trimmed", func(t *testing.T) {
		assert.True(t, base.Equal(mustParse(t, "  2025-01-01T03:00:00Z\n")))
	})

	t.Run("offset forms are equivalent", func(t *testing.T) {
		for _, s := range []string{
			"2025-01-01T03:00:00+00:00",
			"2025-01-01T03:00:00-00:00",
			"2025-01-01T03:00:00+0000",
			"2025-01-01T03:00:00+00",
		} {
			assert.True(t, base.Equal(mustParse(t, s)), s)
		}
	})

	t.Run("missing offset is tagged UTC, not host-local", func(t *testing.T) {
		ts := mustParse(t, "2025-01-01T03:00:00")
		assert.True(t, base.Equal(ts))
		assert.Equal(t, UTC, ts.Zone())
	})

	t.Run("fractional digits 0 through 9", func(t *testing.T) {
		assert.Equal(t, int64(0), mustParse(t, "2025-01-01T00:00:00Z").UnixMicro()%1_000_000)
		assert.Equal(t, int64(120_000), mustParse(t, "2025-01-01T00:00:00.12Z").UnixMicro()%1_000_000)
		assert.Equal(t, int64(123_000), mustParse(t, "2025-01-01T00:00:00.123Z").UnixMicro()%1_000_000)
		assert.Equal(t, int64(123_456), mustParse(t, "2025-01-01T00:00:00.123456Z").UnixMicro()%1_000_000)
	})

	t.Run("digits beyond six truncate, never round", func(t *testing.T) {
		ts := mustParse(t, "2025-01-01T00:00:00.123456789Z")
		assert.Equal(t, int64(123_456), ts.UnixMicro()%1_000_000)

		up := mustParse(t, "2025-01-01T00:00:00.9999999Z")
		assert.Equal(t, int64(999_999), up.UnixMicro()%1_000_000, "no carry into the next second")
	})
}

func TestParse_SameMomentAcrossZones(t *testing.T) {
	a := mustParse(t, "2025-01-01T03:00:00Z")
	b := mustParse(t, "2025-01-01T12:00:00+09:00")
	c := mustParse(t, "2024-12-31T22:00:00-05:00")

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(c))
	assert.True(t, a.Equal(c))
	assert.Equal(t, a.UnixMicro(), b.UnixMicro())
	assert.Equal(t, a.UnixMicro(), c.UnixMicro())
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"non-date text", "not a timestamp"},
		{"date only", "2025-01-01"},
		{"missing seconds", "2025-01-01T03:00"},
		{"bad month", "2025-13-01T00:00:00Z"},
		{"bad calendar day", "2025-02-29T00:00:00Z"},
		{"bad hour", "2025-01-01T24:00:00Z"},
		{"bad minute", "2025-01-01T00:60:00Z"},
		{"bad second", "2025-01-01T00:00:60Z"},
		{"dot without digits", "2025-01-01T00:00:00.Z"},
		{"ten fractional digits", "2025-01-01T00:00:00.0123456789Z"},
		{"repeated offset suffix", "2025-01-01T00:00:00Z+09:00"},
		{"double offset", "2025-01-01T00:00:00+09:00+09:00"},
		{"embedded control character", "2025-01-01T00:00:00\x00Z"},
		{"double space separator", "2025-01-01  03:00:00Z"},
		{"offset out of range", "2025-01-01T00:00:00+15:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		})
	}

	t.Run("oversized garbage fails fast", func(t *testing.T) {
		start := time.Now()
		_, err := Parse(strings.Repeat("x", 10_000))
		require.Error(t, err)
		assert.Less(t, time.Since(start), time.Second, "linear scan, no backtracking")
	})
}

func TestTimestamp_CanonicalRoundTrip(t *testing.T) {
	inputs := []string{
		"2025-01-01T03:00:00.000+00:00",
		"2025-01-01T12:00:00.500+09:00",
		"2024-12-31T22:15:30.999-05:00",
		"2024-02-29T23:59:59.001+05:45",
	}
	for _, s := range inputs {
		ts := mustParse(t, s)
		assert.Equal(t, s, ts.String(), "canonical output reproduces canonical input")

		back := mustParse(t, ts.String())
		assert.True(t, ts.Equal(back))
		assert.Equal(t, ts.Zone().OffsetMinutes(), back.Zone().OffsetMinutes())
	}
}

func TestTimestamp_InZone(t *testing.T) {
	ts := mustParse(t, "2025-01-01T03:00:00Z")

	t.Run("instant is preserved", func(t *testing.T) {
		assert.Equal(t, ts.UnixMicro(), ts.InZone(KST).UnixMicro())
		assert.Equal(t, ts.UnixMicro(), ts.InZone(PST).UnixMicro())
	})

	t.Run("local fields shift", func(t *testing.T) {
		kst := ts.InZone(KST)
		assert.Equal(t, 12, kst.Hour())
		assert.Equal(t, "2025-01-01T12:00:00.000+09:00", kst.String())

		pst := ts.InZone(PST)
		assert.Equal(t, 2024, pst.Year())
		assert.Equal(t, 31, pst.Day())
		assert.Equal(t, 19, pst.Hour())
	})

	t.Run("chaining returns to the same instant", func(t *testing.T) {
		chained := ts.InZone(KST).InZone(NST).InZone(AEDT).InZone(UTC)
		assert.Equal(t, ts, chained)
	})

	t.Run("equality ignores the zone", func(t *testing.T) {
		assert.True(t, ts.Equal(ts.InZone(KST)))
		assert.Equal(t, 0, ts.Compare(ts.InZone(KST)))
	})
}

func TestTimestamp_Extraction(t *testing.T) {
	ts, err := Of(2025, 1, 1, 0, 30, 0, 0, KST)
	require.NoError(t, err)

	d, err := ts.Date()
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", d.String(), "extraction uses local fields")

	tod := ts.TimeOfDay()
	assert.Equal(t, "00:30", tod.String())

	utcView := ts.InZone(UTC)
	d2, err := utcView.Date()
	require.NoError(t, err)
	assert.Equal(t, "2024-12-31", d2.String(), "same instant, different calendar day")
}

func TestTimestamp_Arithmetic(t *testing.T) {
	ts := mustParse(t, "2025-01-01T12:00:00+09:00")

	t.Run("add preserves zone", func(t *testing.T) {
		later := ts.Add(90 * time.Minute)
		assert.Equal(t, "2025-01-01T13:30:00.000+09:00", later.String())
		assert.Equal(t, KST.OffsetMinutes(), later.Zone().OffsetMinutes())
	})

	t.Run("negative durations subtract", func(t *testing.T) {
		earlier := ts.Add(-24 * time.Hour)
		assert.Equal(t, "2024-12-31T12:00:00.000+09:00", earlier.String())
	})

	t.Run("difference is zone independent", func(t *testing.T) {
		other := mustParse(t, "2025-01-01T03:30:00Z")
		assert.Equal(t, -30*time.Minute, ts.Sub(other))
		assert.Equal(t, 30*time.Minute, other.Sub(ts))
		assert.Equal(t, time.Duration(0), ts.Sub(ts.InZone(PST)))
	})

	t.Run("microsecond resolution survives arithmetic", func(t *testing.T) {
		precise := FromEpochMicroseconds(1, UTC)
		assert.Equal(t, int64(2), precise.Add(time.Microsecond).UnixMicro())
	})
}

func TestTimestamp_SortByInstant(t *testing.T) {
	kst, err := Of(2025, 1, 1, 21, 0, 0, 0, KST) // 12:00Z
	require.NoError(t, err)
	utc, err := Of(2025, 1, 1, 10, 0, 0, 0, UTC) // 10:00Z
	require.NoError(t, err)
	pst, err := Of(2025, 1, 1, 5, 0, 0, 0, PST) // 13:00Z
	require.NoError(t, err)

	ordered := []Timestamp{kst, utc, pst}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Before(ordered[j]) })

	assert.True(t, ordered[0].Equal(utc))
	assert.True(t, ordered[1].Equal(kst))
	assert.True(t, ordered[2].Equal(pst))
}

func TestTimestamp_Format(t *testing.T) {
	ts := mustParse(t, "2025-03-07T09:05:02.041+09:00")

	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{"full pattern", "yyyy-MM-dd HH:mm:ss.SSS", "2025-03-07 09:05:02.041"},
		{"reordered", "dd/MM/yyyy", "07/03/2025"},
		{"literal passthrough", "at HH:mm o'clock", "at 09:05 o'clock"},
		{"no tokens", "just words", "just words"},
		{"empty pattern", "", ""},
		{"lowercase hh is not a token", "hh:mm", "hh:05"},
		{"repeated tokens", "yyyyyyyy", "20252025"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ts.Format(tt.pattern))
		})
	}

	t.Run("long patterns stay linear", func(t *testing.T) {
		pattern := strings.Repeat("yyyy.", 2000)
		start := time.Now()
		out := ts.Format(pattern)
		assert.Less(t, time.Since(start), time.Second)
		assert.Equal(t, 2000*5, len(out))
	})
}

func TestTimestamp_NativeBoundary(t *testing.T) {
	t.Run("native output is flagged UTC", func(t *testing.T) {
		ts := mustParse(t, "2025-01-01T12:00:00+09:00")
		native := ts.Time()
		assert.Equal(t, time.UTC, native.Location())
		assert.Equal(t, 3, native.Hour())
	})

	t.Run("native input is normalized to UTC first", func(t *testing.T) {
		loc := time.FixedZone("whatever", -7*3600)
		native := time.Date(2025, 1, 1, 5, 0, 0, 0, loc)
		ts := FromTime(native, KST)
		assert.Equal(t, native.UnixMicro(), ts.UnixMicro(), "original zone tag discarded, instant kept")
		assert.Equal(t, "KST", ts.Zone().Name())
	})

	t.Run("sub-microsecond precision truncates", func(t *testing.T) {
		native := time.Date(2025, 1, 1, 0, 0, 0, 1500, time.UTC) // 1.5us
		assert.Equal(t, int64(1), FromTime(native, UTC).UnixMicro()%1_000_000)
	})

	t.Run("round trip", func(t *testing.T) {
		ts := FromEpochMicroseconds(1_735_689_600_123_456, UTC)
		assert.True(t, ts.Equal(FromTime(ts.Time(), UTC)))
	})
}

func TestTimestamp_Now(t *testing.T) {
	before := time.Now().UnixMicro()
	ts := Now(KST)
	after := time.Now().UnixMicro()

	assert.GreaterOrEqual(t, ts.UnixMicro(), before)
	assert.LessOrEqual(t, ts.UnixMicro(), after)
	assert.Equal(t, "KST", ts.Zone().Name(), "zone tags presentation only")

	drift := Now(UTC).UnixMicro() - ts.UnixMicro()
	assert.Less(t, drift, int64(5_000_000), "zone does not alter the captured instant")
}

func TestTimestamp_JSON(t *testing.T) {
	ts := mustParse(t, "2025-01-01T12:00:00.250+09:00")

	raw, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-01T12:00:00.250+09:00"`, string(raw))

	var back Timestamp
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, ts.Equal(back))
	assert.Equal(t, ts.Zone().OffsetMinutes(), back.Zone().OffsetMinutes())

	t.Run("rejects non-string", func(t *testing.T) {
		var ts Timestamp
		require.Error(t, json.Unmarshal([]byte(`12345`), &ts))
	})
}

func TestTimestamp_EpochAccessors(t *testing.T) {
	ts := FromEpochMilliseconds(1_735_689_600_123, UTC)
	assert.Equal(t, int64(1_735_689_600_123), ts.UnixMilli())
	assert.Equal(t, int64(1_735_689_600_123_000), ts.UnixMicro())
}
