package drawcal

import "time"

// ScanHorizonDays bounds every day-by-day scan. A resolution that walks this
// far without landing on a draw day fails closed.
const ScanHorizonDays = 60

// TicketDrawDay resolves the draw a ticket registered at ticketTime is timely
// for: the first draw day whose cutoff is at or after the registration
// instant. A ticket registered exactly at the cutoff still belongs to that
// day's draw. Returns ok=false if no draw day is found within the horizon.
func (c *Calendar) TicketDrawDay(ticketTime time.Time) (time.Time, bool) {
	probe := StartOfDay(ticketTime)
	for i := 0; i < ScanHorizonDays; i++ {
		if !c.IsNonDrawDay(probe) {
			cutoff := c.CutoffInstant(probe)
			if !cutoff.Before(ticketTime) {
				return probe, true
			}
		}
		probe = AddDays(probe, 1)
	}
	return time.Time{}, false
}

// FirstDrawDayAfter resolves the first draw day whose cutoff is strictly
// after t. Used on the recharge side: the recharge's own day counts only
// while its cutoff has not passed yet.
func (c *Calendar) FirstDrawDayAfter(t time.Time) (time.Time, bool) {
	probe := StartOfDay(t)
	for i := 0; i < ScanHorizonDays; i++ {
		if !c.IsNonDrawDay(probe) {
			if c.CutoffInstant(probe).After(t) {
				return probe, true
			}
		}
		probe = AddDays(probe, 1)
	}
	return time.Time{}, false
}
