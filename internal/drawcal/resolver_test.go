package drawcal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicketDrawDay(t *testing.T) {
	cal := New()

	t.Run("before cutoff stays on same day", func(t *testing.T) {
		day, ok := cal.TicketDrawDay(brt(2025, time.March, 3, 19, 30, 0))
		require.True(t, ok)
		assert.Equal(t, brt(2025, time.March, 3, 0, 0, 0), day)
	})

	t.Run("exactly at cutoff is still timely", func(t *testing.T) {
		day, ok := cal.TicketDrawDay(brt(2025, time.March, 3, 20, 0, 0))
		require.True(t, ok)
		assert.Equal(t, brt(2025, time.March, 3, 0, 0, 0), day)
	})

	t.Run("one second past cutoff rolls to next day", func(t *testing.T) {
		day, ok := cal.TicketDrawDay(brt(2025, time.March, 3, 20, 0, 1))
		require.True(t, ok)
		assert.Equal(t, brt(2025, time.March, 4, 0, 0, 0), day)
	})

	t.Run("Saturday evening rolls past Sunday to Monday", func(t *testing.T) {
		day, ok := cal.TicketDrawDay(brt(2025, time.March, 8, 21, 0, 0))
		require.True(t, ok)
		assert.Equal(t, brt(2025, time.March, 10, 0, 0, 0), day)
	})

	t.Run("Sunday registration belongs to Monday", func(t *testing.T) {
		day, ok := cal.TicketDrawDay(brt(2025, time.March, 9, 10, 0, 0))
		require.True(t, ok)
		assert.Equal(t, brt(2025, time.March, 10, 0, 0, 0), day)
	})

	t.Run("Dec 24 after early cutoff skips Christmas", func(t *testing.T) {
		day, ok := cal.TicketDrawDay(brt(2025, time.December, 24, 17, 0, 0))
		require.True(t, ok)
		assert.Equal(t, brt(2025, time.December, 26, 0, 0, 0), day)
	})
}

func TestFirstDrawDayAfter(t *testing.T) {
	cal := New()

	t.Run("before cutoff keeps the same day", func(t *testing.T) {
		day, ok := cal.FirstDrawDayAfter(brt(2025, time.March, 3, 19, 59, 59))
		require.True(t, ok)
		assert.Equal(t, brt(2025, time.March, 3, 0, 0, 0), day)
	})

	t.Run("exactly at cutoff moves on", func(t *testing.T) {
		// Strict comparison: the recharge-side scan excludes a day whose
		// cutoff equals the instant.
		day, ok := cal.FirstDrawDayAfter(brt(2025, time.March, 3, 20, 0, 0))
		require.True(t, ok)
		assert.Equal(t, brt(2025, time.March, 4, 0, 0, 0), day)
	})

	t.Run("agrees with ticket side on day-skip policy", func(t *testing.T) {
		day, ok := cal.FirstDrawDayAfter(brt(2025, time.March, 8, 21, 0, 0))
		require.True(t, ok)
		assert.Equal(t, brt(2025, time.March, 10, 0, 0, 0), day)
	})
}
