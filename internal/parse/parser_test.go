package parse_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/timebanner/timebanner/internal/core/domain"
	"github.com/timebanner/timebanner/internal/parse"
	"github.com/timebanner/timebanner/internal/tz"
)

func newParser(t *testing.T) *parse.Parser {
	t.Helper()
	resolver, err := tz.NewResolver()
	require.NoError(t, err)
	return parse.NewParser(resolver, "", "")
}

var testNow = time.Unix(1752170474, 0).UTC()

func TestParse_RelativeZeroOffset(t *testing.T) {
	p := newParser(t)

	spec, err := p.Parse("+0", domain.Qualifiers{}, testNow)
	require.NoError(t, err)

	assert.Equal(t, domain.ModeRelative, spec.Mode)
	assert.Equal(t, testNow, spec.Instant)
	assert.Equal(t, "UTC", spec.Zone.Name)
}

func TestParse_RelativeSeconds(t *testing.T) {
	p := newParser(t)

	spec, err := p.Parse("-3600", domain.Qualifiers{}, testNow)
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(-time.Hour), spec.Instant)
	assert.Equal(t, domain.ModeRelative, spec.Mode)

	spec, err = p.Parse("+90", domain.Qualifiers{}, testNow)
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(90*time.Second), spec.Instant)
}

func TestParse_RelativeDuration(t *testing.T) {
	p := newParser(t)

	spec, err := p.Parse("-3h30m", domain.Qualifiers{}, testNow)
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(-3*time.Hour-30*time.Minute), spec.Instant)

	// One year carries leap compensation.
	spec, err = p.Parse("+1y", domain.Qualifiers{}, testNow)
	require.NoError(t, err)
	assert.Equal(t, testNow.Add(365*24*time.Hour+6*time.Hour), spec.Instant)
}

func TestParse_RelativeGarbageFails(t *testing.T) {
	p := newParser(t)

	for _, raw := range []string{"+", "-", "+abc", "+1x", "+2d1y", "+1y garbage"} {
		_, err := p.Parse(raw, domain.Qualifiers{}, testNow)
		assert.True(t, errors.Is(err, domain.ErrMalformedToken), "token %q: %v", raw, err)
	}
}

func TestParse_Epoch(t *testing.T) {
	p := newParser(t)

	spec, err := p.Parse("1752170474", domain.Qualifiers{}, testNow)
	require.NoError(t, err)

	assert.Equal(t, domain.ModeAbsolute, spec.Mode)
	assert.Equal(t, testNow, spec.Instant)
	assert.Equal(t, "UTC", spec.Zone.Name)
	assert.Equal(t, domain.DefaultFormat, spec.Format)
}

func TestParse_CalendarWithMeridiemAndZoneSuffix(t *testing.T) {
	p := newParser(t)

	spec, err := p.Parse("2023-06-14-3PM-CST", domain.Qualifiers{}, testNow)
	require.NoError(t, err)

	assert.Equal(t, domain.ModeAbsolute, spec.Mode)
	assert.Equal(t, "America/Chicago", spec.Zone.Name)

	// 3PM in America/Chicago on that date is 20:00 UTC (CDT, -05:00).
	want := time.Date(2023, 6, 14, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, want, spec.Instant)
}

func TestParse_CalendarDateOnly(t *testing.T) {
	p := newParser(t)

	spec, err := p.Parse("2023-06-14", domain.Qualifiers{}, testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 6, 14, 0, 0, 0, 0, time.UTC), spec.Instant)
}

func TestParse_CalendarMixedSectionSeparators(t *testing.T) {
	p := newParser(t)

	// Date and time sections may use different separators from each other.
	spec, err := p.Parse("2023.06.14 15:30:05", domain.Qualifiers{}, testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 6, 14, 15, 30, 5, 0, time.UTC), spec.Instant)
}

func TestParse_CalendarFractionalSeconds(t *testing.T) {
	p := newParser(t)

	spec, err := p.Parse("2023.06.14 15:30:05.25", domain.Qualifiers{}, testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 6, 14, 15, 30, 5, 250000000, time.UTC), spec.Instant)
}

func TestParse_InconsistentSeparatorsFail(t *testing.T) {
	p := newParser(t)

	_, err := p.Parse("2023-06.14", domain.Qualifiers{}, testNow)
	assert.True(t, errors.Is(err, domain.ErrInconsistentSeparators))

	_, err = p.Parse("2023-06-14-15:30.05-16", domain.Qualifiers{}, testNow)
	assert.Error(t, err)
}

func TestParse_MissingHourFailsClosed(t *testing.T) {
	p := newParser(t)

	_, err := p.Parse("2023-06-14-45", domain.Qualifiers{}, testNow)
	assert.True(t, errors.Is(err, domain.ErrMissingHour), "got %v", err)
}

func TestParse_FieldOutOfRange(t *testing.T) {
	p := newParser(t)

	cases := []string{
		"2023-13-14",       // month
		"2023-02-30",       // day not valid for month
		"2023-06-14-99",    // hour (too large to be a lone minute)
		"2023-06-14-12:75", // minute
		"2023-06-14-13PM",  // meridiem hour
	}
	for _, raw := range cases {
		_, err := p.Parse(raw, domain.Qualifiers{}, testNow)
		assert.True(t, errors.Is(err, domain.ErrFieldOutOfRange), "token %q: %v", raw, err)
	}

	// Leap day is valid in a leap year.
	_, err := p.Parse("2024-02-29", domain.Qualifiers{}, testNow)
	assert.NoError(t, err)
}

func TestParse_InvalidZoneSuffix(t *testing.T) {
	p := newParser(t)

	_, err := p.Parse("2023-06-14-XYZ", domain.Qualifiers{}, testNow)
	assert.True(t, errors.Is(err, domain.ErrInvalidTimezoneSuffix))
}

func TestParse_QualifierZoneOverridesSuffix(t *testing.T) {
	p := newParser(t)

	spec, err := p.Parse("2023-06-14-12:00-CST", domain.Qualifiers{Zone: "JST"}, testNow)
	require.NoError(t, err)
	assert.Equal(t, "Asia/Tokyo", spec.Zone.Name)

	// Noon JST is 03:00 UTC.
	assert.Equal(t, time.Date(2023, 6, 14, 3, 0, 0, 0, time.UTC), spec.Instant)
}

func TestParse_DateOrderQualifier(t *testing.T) {
	p := newParser(t)

	spec, err := p.Parse("14-06-2023", domain.Qualifiers{Order: domain.OrderDMY}, testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 6, 14, 0, 0, 0, 0, time.UTC), spec.Instant)

	spec, err = p.Parse("06-14-2023", domain.Qualifiers{Order: domain.OrderMDY}, testNow)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 6, 14, 0, 0, 0, 0, time.UTC), spec.Instant)
}

func TestParse_ModeQualifierOverride(t *testing.T) {
	p := newParser(t)

	spec, err := p.Parse("+0", domain.Qualifiers{Mode: domain.ModeAbsolute}, testNow)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeAbsolute, spec.Mode)

	spec, err = p.Parse("1752170474", domain.Qualifiers{Mode: domain.ModeRelative}, testNow)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeRelative, spec.Mode)
}

func TestParse_FormatQualifier(t *testing.T) {
	p := newParser(t)

	spec, err := p.Parse("1752170474", domain.Qualifiers{Format: "%H:%M"}, testNow)
	require.NoError(t, err)
	assert.Equal(t, "%H:%M", spec.Format)

	_, err = p.Parse("1752170474", domain.Qualifiers{Format: "%H:%Q"}, testNow)
	assert.True(t, errors.Is(err, domain.ErrUnsupportedFormatDirective))
}

func TestParse_Deterministic(t *testing.T) {
	p := newParser(t)

	for _, raw := range []string{"+0", "-3h30m", "1752170474", "2023-06-14-3PM-CST"} {
		first, err1 := p.Parse(raw, domain.Qualifiers{}, testNow)
		second, err2 := p.Parse(raw, domain.Qualifiers{}, testNow)
		require.NoError(t, err1)
		require.NoError(t, err2)
		assert.Equal(t, first, second, raw)
	}
}
