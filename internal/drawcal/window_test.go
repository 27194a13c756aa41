package drawcal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEligibleWindowBeforeCutoff(t *testing.T) {
	cal := New()

	// Monday recharge at 19:00, one hour before cutoff.
	w := cal.EligibleWindow(brt(2025, time.March, 3, 19, 0, 0))

	assert.Equal(t, brt(2025, time.March, 3, 0, 0, 0), w.E1)
	assert.True(t, w.E1Usable)
	assert.Equal(t, brt(2025, time.March, 3, 20, 0, 0), w.E1Cutoff)
	assert.Equal(t, brt(2025, time.March, 4, 0, 0, 0), w.E2)
}

func TestEligibleWindowAfterCutoff(t *testing.T) {
	cal := New()

	// Recharge at 21:00 lands after the 20:00 cutoff: the same day stays E1
	// but is unusable, E2 carries the eligibility.
	w := cal.EligibleWindow(brt(2025, time.March, 3, 21, 0, 0))

	assert.Equal(t, brt(2025, time.March, 3, 0, 0, 0), w.E1)
	assert.False(t, w.E1Usable)
	assert.Equal(t, brt(2025, time.March, 4, 0, 0, 0), w.E2)
}

func TestEligibleWindowSkipsSunday(t *testing.T) {
	cal := New()

	// Saturday recharge: E1 Saturday, E2 skips Sunday to Monday.
	w := cal.EligibleWindow(brt(2025, time.March, 8, 10, 0, 0))
	assert.Equal(t, brt(2025, time.March, 8, 0, 0, 0), w.E1)
	assert.Equal(t, brt(2025, time.March, 10, 0, 0, 0), w.E2)

	// Sunday recharge: E1 pushes to Monday, E2 Tuesday.
	w = cal.EligibleWindow(brt(2025, time.March, 9, 10, 0, 0))
	assert.Equal(t, brt(2025, time.March, 10, 0, 0, 0), w.E1)
	assert.True(t, w.E1Usable)
	assert.Equal(t, brt(2025, time.March, 11, 0, 0, 0), w.E2)
}

func TestEligibleWindowEarlyCutoffDay(t *testing.T) {
	cal := New()

	// Dec 24 at 10:00: the early 16:00 cutoff still lies ahead, so E1 is
	// usable; E2 skips Christmas to Dec 26.
	w := cal.EligibleWindow(brt(2025, time.December, 24, 10, 0, 0))
	assert.Equal(t, brt(2025, time.December, 24, 0, 0, 0), w.E1)
	assert.Equal(t, brt(2025, time.December, 24, 16, 0, 0), w.E1Cutoff)
	assert.True(t, w.E1Usable)
	assert.Equal(t, brt(2025, time.December, 26, 0, 0, 0), w.E2)

	// Dec 24 at 17:00 is past the early cutoff.
	w = cal.EligibleWindow(brt(2025, time.December, 24, 17, 0, 0))
	assert.False(t, w.E1Usable)
}

func TestWindowCovers(t *testing.T) {
	cal := New()
	w := cal.EligibleWindow(brt(2025, time.March, 3, 19, 0, 0))

	covered, viaE2 := w.Covers(brt(2025, time.March, 3, 0, 0, 0))
	assert.True(t, covered)
	assert.False(t, viaE2)

	covered, viaE2 = w.Covers(brt(2025, time.March, 4, 0, 0, 0))
	assert.True(t, covered)
	assert.True(t, viaE2)

	covered, _ = w.Covers(brt(2025, time.March, 5, 0, 0, 0))
	assert.False(t, covered)
	assert.True(t, w.ExpiredFor(brt(2025, time.March, 5, 0, 0, 0)))
	assert.False(t, w.ExpiredFor(brt(2025, time.March, 4, 0, 0, 0)))
}

func TestWindowCoversRequiresUsableE1(t *testing.T) {
	cal := New()
	w := cal.EligibleWindow(brt(2025, time.March, 3, 21, 0, 0))

	covered, _ := w.Covers(brt(2025, time.March, 3, 0, 0, 0))
	assert.False(t, covered, "unusable E1 must not fund its own day")

	covered, viaE2 := w.Covers(brt(2025, time.March, 4, 0, 0, 0))
	assert.True(t, covered)
	assert.True(t, viaE2)
}
