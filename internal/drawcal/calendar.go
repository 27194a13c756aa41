// Package drawcal implements the Brazil-local draw calendar: fixed UTC-3
// wall-clock arithmetic, non-draw days (Sundays plus holiday closures) and
// per-day registration cutoff times. All instants are plain UTC time.Time
// values; the BRT offset is applied only when extracting or building
// wall-clock fields. The model has no DST transitions, so day arithmetic is
// plain 24-hour stepping.
package drawcal

import (
	"fmt"
	"time"
)

// BRTOffset is the fixed Brazil offset from UTC. No DST.
const BRTOffset = 3 * time.Hour

const dayDuration = 24 * time.Hour

// LocalFields is the BRT wall-clock date of an instant.
type LocalFields struct {
	Year    int
	Month   time.Month
	Day     int
	Weekday time.Weekday
}

// ClockTime is a wall-clock time of day.
type ClockTime struct {
	Hour   int
	Minute int
	Second int
}

// DefaultCutoff is the regular registration cutoff for a draw day.
var DefaultCutoff = ClockTime{Hour: 20}

// CutoffPolicy maps "MM-DD" keys to cutoff times that differ from
// DefaultCutoff. Early-cutoff dates are calibration data, not code: source
// calibrations for Dec-24/Dec-31 disagreed (20:00 vs 17:00 vs 16:00), so the
// hour must stay swappable without touching the resolver.
type CutoffPolicy map[string]ClockTime

// DefaultPolicy returns the cutoff calibration currently in production:
// 16:00 on Dec-24 and Dec-31, 20:00 otherwise.
func DefaultPolicy() CutoffPolicy {
	return CutoffPolicy{
		"12-24": {Hour: 16},
		"12-31": {Hour: 16},
	}
}

// DefaultHolidays are the fixed no-draw dates ("MM-DD").
func DefaultHolidays() []string {
	return []string{"12-25", "01-01"}
}

// Calendar answers draw-day and cutoff questions for BRT instants.
type Calendar struct {
	holidays map[string]bool
	policy   CutoffPolicy
}

// New returns a Calendar with the default holidays and cutoff policy.
func New() *Calendar {
	return NewWithPolicy(DefaultHolidays(), DefaultPolicy())
}

// NewWithPolicy returns a Calendar with explicit holiday and cutoff tables.
func NewWithPolicy(holidays []string, policy CutoffPolicy) *Calendar {
	set := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		set[h] = true
	}
	if policy == nil {
		policy = CutoffPolicy{}
	}
	return &Calendar{holidays: set, policy: policy}
}

// ToLocalFields extracts the BRT wall-clock date of t.
func ToLocalFields(t time.Time) LocalFields {
	shifted := t.Add(-BRTOffset).UTC()
	return LocalFields{
		Year:    shifted.Year(),
		Month:   shifted.Month(),
		Day:     shifted.Day(),
		Weekday: shifted.Weekday(),
	}
}

// FromLocalFields builds the instant whose BRT wall clock reads the given
// fields.
func FromLocalFields(year int, month time.Month, day, hour, minute, second int) time.Time {
	return time.Date(year, month, day, hour, minute, second, 0, time.UTC).Add(BRTOffset)
}

// StartOfDay returns the instant at BRT midnight of t's local date.
func StartOfDay(t time.Time) time.Time {
	f := ToLocalFields(t)
	return FromLocalFields(f.Year, f.Month, f.Day, 0, 0, 0)
}

// AddDays steps n days from the start of t's local day.
func AddDays(t time.Time, n int) time.Time {
	return StartOfDay(t).Add(time.Duration(n) * dayDuration)
}

// SameLocalDay reports whether a and b fall on the same BRT calendar date.
func SameLocalDay(a, b time.Time) bool {
	fa, fb := ToLocalFields(a), ToLocalFields(b)
	return fa.Year == fb.Year && fa.Month == fb.Month && fa.Day == fb.Day
}

// FormatLocalDate renders t's BRT calendar date as "YYYY-MM-DD".
func FormatLocalDate(t time.Time) string {
	f := ToLocalFields(t)
	return fmt.Sprintf("%04d-%02d-%02d", f.Year, int(f.Month), f.Day)
}

// ParseLocalDate parses a "YYYY-MM-DD" string as a BRT calendar day,
// returning the instant at BRT midnight.
func ParseLocalDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, err
	}
	return FromLocalFields(t.Year(), t.Month(), t.Day(), 0, 0, 0), nil
}

func monthDayKey(t time.Time) string {
	f := ToLocalFields(t)
	return fmt.Sprintf("%02d-%02d", int(f.Month), f.Day)
}

// IsNonDrawDay reports whether t's local date has no draw: Sundays and
// holiday closures.
func (c *Calendar) IsNonDrawDay(t time.Time) bool {
	f := ToLocalFields(t)
	if f.Weekday == time.Sunday {
		return true
	}
	return c.holidays[monthDayKey(t)]
}

// CutoffTime returns the registration cutoff wall-clock time for t's local
// date.
func (c *Calendar) CutoffTime(t time.Time) ClockTime {
	if ct, ok := c.policy[monthDayKey(t)]; ok {
		return ct
	}
	return DefaultCutoff
}

// CutoffInstant returns the registration cutoff instant on t's local date.
func (c *Calendar) CutoffInstant(t time.Time) time.Time {
	f := ToLocalFields(t)
	ct := c.CutoffTime(t)
	return FromLocalFields(f.Year, f.Month, f.Day, ct.Hour, ct.Minute, ct.Second)
}
