package drawcal

import "time"

// Window is the pair of draw days a recharge may fund a ticket on.
//
// E1 is the recharge's own day, pushed forward past non-draw days. It funds a
// ticket only while E1Usable holds, i.e. the recharge happened before E1's
// cutoff. E2 is the next draw day after E1 and is always usable: it is the
// guaranteed follow-up draw for recharges that landed after cutoff.
type Window struct {
	E1       time.Time
	E1Cutoff time.Time
	E1Usable bool
	E2       time.Time
	E2Cutoff time.Time
}

// EligibleWindow computes the eligibility window for a recharge made at
// rechargeTime.
func (c *Calendar) EligibleWindow(rechargeTime time.Time) Window {
	e1 := StartOfDay(rechargeTime)
	for i := 0; i < ScanHorizonDays && c.IsNonDrawDay(e1); i++ {
		e1 = AddDays(e1, 1)
	}
	e1Cutoff := c.CutoffInstant(e1)

	e2 := AddDays(e1, 1)
	for i := 0; i < ScanHorizonDays && c.IsNonDrawDay(e2); i++ {
		e2 = AddDays(e2, 1)
	}

	return Window{
		E1:       e1,
		E1Cutoff: e1Cutoff,
		E1Usable: e1Cutoff.After(rechargeTime),
		E2:       e2,
		E2Cutoff: c.CutoffInstant(e2),
	}
}

// Covers reports whether the window makes a ticket drawn on drawDay eligible,
// and whether the match used the second day (the cutoff-shift case).
func (w Window) Covers(drawDay time.Time) (covered, viaE2 bool) {
	if w.E1Usable && SameLocalDay(drawDay, w.E1) {
		return true, false
	}
	if SameLocalDay(drawDay, w.E2) {
		return true, true
	}
	return false, false
}

// ExpiredFor reports whether drawDay lies past the window entirely.
func (w Window) ExpiredFor(drawDay time.Time) bool {
	return drawDay.After(w.E2)
}
