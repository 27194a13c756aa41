package drawcal

import "time"

// Schedule describes one draw day as presented to players: the day itself,
// the last timely registration instant, and when registration for that draw
// opened.
type Schedule struct {
	DrawDate          time.Time `json:"drawDate"`
	Cutoff            time.Time `json:"cutoff"`
	RegistrationStart time.Time `json:"registrationStart"`
	Contest           int       `json:"contest"`
}

// ContestRef anchors contest numbering: the draw on Date carried Number.
type ContestRef struct {
	Date   time.Time
	Number int
}

// ScheduleFor builds the schedule for the draw on day's local date.
// Registration opens one second after the previous day's cutoff.
func (c *Calendar) ScheduleFor(day time.Time) Schedule {
	start := StartOfDay(day)
	prev := AddDays(start, -1)
	return Schedule{
		DrawDate:          start,
		Cutoff:            c.CutoffInstant(start),
		RegistrationStart: c.CutoffInstant(prev).Add(time.Second),
	}
}

// CurrentSchedule resolves the draw an entry submitted at now would target:
// today's draw while today is a draw day and the cutoff has not passed,
// otherwise the next draw day. ok=false if no draw day exists within the
// horizon.
func (c *Calendar) CurrentSchedule(now time.Time) (Schedule, bool) {
	today := StartOfDay(now)
	if !c.IsNonDrawDay(today) && !now.After(c.CutoffInstant(today)) {
		return c.ScheduleFor(today), true
	}
	probe := today
	for i := 0; i < ScanHorizonDays; i++ {
		probe = AddDays(probe, 1)
		if !c.IsNonDrawDay(probe) {
			return c.ScheduleFor(probe), true
		}
	}
	return Schedule{}, false
}

// ContestNumber computes the contest number of the draw on drawDate by
// counting draw days between the reference draw and drawDate. Dates before
// the reference count backwards.
func (c *Calendar) ContestNumber(ref ContestRef, drawDate time.Time) int {
	target := StartOfDay(drawDate)
	cursor := StartOfDay(ref.Date)
	step := 1
	if target.Before(cursor) {
		step = -1
	}
	n := ref.Number
	for !SameLocalDay(cursor, target) {
		cursor = AddDays(cursor, step)
		if !c.IsNonDrawDay(cursor) {
			n += step
		}
	}
	return n
}
