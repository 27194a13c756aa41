package drawcal

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func brt(year int, month time.Month, day, hour, min, sec int) time.Time {
	return FromLocalFields(year, month, day, hour, min, sec)
}

func TestLocalFieldsRoundTrip(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		day   int
		hour  int
	}{
		{2025, time.March, 3, 0},
		{2025, time.March, 3, 23},
		{2025, time.December, 31, 22}, // crosses into Jan 1 UTC
		{2024, time.February, 29, 12}, // leap day
		{2025, time.January, 1, 2},
	}
	for _, tc := range cases {
		instant := FromLocalFields(tc.year, tc.month, tc.day, tc.hour, 30, 15)
		f := ToLocalFields(instant)
		assert.Equal(t, tc.year, f.Year)
		assert.Equal(t, tc.month, f.Month)
		assert.Equal(t, tc.day, f.Day)
	}
}

func TestLocalFieldsOffsetShift(t *testing.T) {
	// 01:00 UTC on Jan 1 is still Dec 31 in BRT.
	instant := time.Date(2026, time.January, 1, 1, 0, 0, 0, time.UTC)
	f := ToLocalFields(instant)
	assert.Equal(t, 2025, f.Year)
	assert.Equal(t, time.December, f.Month)
	assert.Equal(t, 31, f.Day)
}

func TestStartOfDayAndAddDays(t *testing.T) {
	late := brt(2025, time.March, 3, 23, 59, 59)
	start := StartOfDay(late)
	assert.Equal(t, brt(2025, time.March, 3, 0, 0, 0), start)
	assert.Equal(t, brt(2025, time.March, 5, 0, 0, 0), AddDays(late, 2))
	assert.Equal(t, brt(2025, time.March, 1, 0, 0, 0), AddDays(late, -2))
	assert.True(t, SameLocalDay(late, start))
	assert.False(t, SameLocalDay(late, AddDays(late, 1)))
}

func TestIsNonDrawDay(t *testing.T) {
	cal := New()

	assert.True(t, cal.IsNonDrawDay(brt(2025, time.March, 2, 12, 0, 0)), "Sunday")
	assert.False(t, cal.IsNonDrawDay(brt(2025, time.March, 3, 12, 0, 0)), "Monday")
	assert.False(t, cal.IsNonDrawDay(brt(2025, time.March, 8, 12, 0, 0)), "Saturday draws")
	assert.True(t, cal.IsNonDrawDay(brt(2025, time.December, 25, 12, 0, 0)), "Christmas")
	assert.True(t, cal.IsNonDrawDay(brt(2026, time.January, 1, 12, 0, 0)), "New Year")
	assert.False(t, cal.IsNonDrawDay(brt(2025, time.December, 24, 12, 0, 0)), "Dec 24 draws early")
}

func TestCutoffPolicyLookup(t *testing.T) {
	cal := New()

	assert.Equal(t, ClockTime{Hour: 20}, cal.CutoffTime(brt(2025, time.March, 3, 9, 0, 0)))
	assert.Equal(t, ClockTime{Hour: 16}, cal.CutoffTime(brt(2025, time.December, 24, 9, 0, 0)))
	assert.Equal(t, ClockTime{Hour: 16}, cal.CutoffTime(brt(2025, time.December, 31, 9, 0, 0)))

	assert.Equal(t, brt(2025, time.March, 3, 20, 0, 0), cal.CutoffInstant(brt(2025, time.March, 3, 9, 0, 0)))
	assert.Equal(t, brt(2025, time.December, 24, 16, 0, 0), cal.CutoffInstant(brt(2025, time.December, 24, 23, 0, 0)))
}

func TestCutoffPolicyOverride(t *testing.T) {
	// A recalibrated table replaces the early-cutoff hour without code changes.
	cal := NewWithPolicy(DefaultHolidays(), CutoffPolicy{"12-24": {Hour: 17}})
	assert.Equal(t, ClockTime{Hour: 17}, cal.CutoffTime(brt(2025, time.December, 24, 9, 0, 0)))
	assert.Equal(t, ClockTime{Hour: 20}, cal.CutoffTime(brt(2025, time.December, 31, 9, 0, 0)))
}

// closedCalendar builds a calendar whose holiday table blankets more days
// than the scan horizon, starting at the given date.
func closedCalendar(t *testing.T, from time.Time) *Calendar {
	t.Helper()
	var holidays []string
	probe := StartOfDay(from)
	for i := 0; i < ScanHorizonDays+10; i++ {
		f := ToLocalFields(probe)
		holidays = append(holidays, fmt.Sprintf("%02d-%02d", int(f.Month), f.Day))
		probe = AddDays(probe, 1)
	}
	return NewWithPolicy(holidays, DefaultPolicy())
}

func TestResolverFailsClosedPastHorizon(t *testing.T) {
	start := brt(2025, time.March, 3, 10, 0, 0)
	cal := closedCalendar(t, start)

	_, ok := cal.TicketDrawDay(start)
	require.False(t, ok)
	_, ok = cal.FirstDrawDayAfter(start)
	require.False(t, ok)
}
