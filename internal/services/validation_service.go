package services

import (
	"sort"

	"github.com/popsorte/backend/internal/drawcal"
	"github.com/popsorte/backend/internal/models"
	"golang.org/x/exp/slog"
)

// Validator binds tickets to the recharges that funded them and classifies
// every ticket as VALID, INVALID (with a reason code) or UNKNOWN.
//
// Validate is a pure function of its input snapshot: all run state (the
// consumption set in particular) is rebuilt from scratch on every call, so
// reprocessing the same snapshot yields identical results and concurrent runs
// on different snapshots are independent.
type Validator struct {
	cal *drawcal.Calendar
}

// NewValidator creates a Validator using the given draw calendar.
func NewValidator(cal *drawcal.Calendar) *Validator {
	return &Validator{cal: cal}
}

// rechargeCandidate is one recharge of a player with its precomputed
// eligibility window, in time-ascending scan order.
type rechargeCandidate struct {
	recharge models.Recharge
	window   drawcal.Window
}

// Validate runs the full allocation over the snapshot. Tickets are processed
// per player in registration order; each ticket consumes the first
// unconsumed, time-eligible recharge whose window covers its draw day
// (first-ticket-wins, at most one ticket per recharge).
func (v *Validator) Validate(recharges []models.Recharge, tickets []models.Ticket) []models.ValidatedTicket {
	if len(recharges) == 0 {
		// Not assessable at all: distinct from a definite rejection.
		out := make([]models.ValidatedTicket, 0, len(tickets))
		for _, t := range tickets {
			out = append(out, models.ValidatedTicket{
				Ticket:     t,
				Validity:   models.ValidityUnknown,
				ReasonCode: models.ReasonNoRechargeData,
			})
		}
		slog.Warn("validation run with no recharge data", "tickets", len(tickets))
		return out
	}

	rechargesByPlayer := make(map[string][]models.Recharge)
	for _, r := range recharges {
		rechargesByPlayer[r.GameID] = append(rechargesByPlayer[r.GameID], r)
	}
	ticketsByPlayer := make(map[string][]models.Ticket)
	for _, t := range tickets {
		ticketsByPlayer[t.GameID] = append(ticketsByPlayer[t.GameID], t)
	}

	players := make([]string, 0, len(ticketsByPlayer))
	for id := range ticketsByPlayer {
		players = append(players, id)
	}
	sort.Strings(players)

	out := make([]models.ValidatedTicket, 0, len(tickets))
	for _, player := range players {
		out = append(out, v.validatePlayer(rechargesByPlayer[player], ticketsByPlayer[player])...)
	}
	return out
}

func (v *Validator) validatePlayer(recharges []models.Recharge, tickets []models.Ticket) []models.ValidatedTicket {
	sort.SliceStable(recharges, func(i, j int) bool {
		return recharges[i].Time.Before(recharges[j].Time)
	})
	sort.SliceStable(tickets, func(i, j int) bool {
		return tickets[i].RegistrationTime.Before(tickets[j].RegistrationTime)
	})

	candidates := make([]rechargeCandidate, 0, len(recharges))
	for _, r := range recharges {
		if r.Time.IsZero() {
			continue // unparseable recharge timestamp, never bindable
		}
		candidates = append(candidates, rechargeCandidate{
			recharge: r,
			window:   v.cal.EligibleWindow(r.Time),
		})
	}

	consumed := make(map[string]bool)
	out := make([]models.ValidatedTicket, 0, len(tickets))
	for _, ticket := range tickets {
		out = append(out, v.validateTicket(ticket, candidates, consumed))
	}
	return out
}

func (v *Validator) validateTicket(ticket models.Ticket, candidates []rechargeCandidate, consumed map[string]bool) models.ValidatedTicket {
	if ticket.RegistrationTime.IsZero() {
		return invalid(ticket, models.ReasonInvalidTicketTime)
	}
	t := ticket.RegistrationTime

	drawDay, ok := v.cal.TicketDrawDay(t)
	if !ok {
		// Resolution exhausted the scan horizon: fail closed.
		return invalid(ticket, models.ReasonNoEligibleRecharge)
	}

	hasRechargeBefore := false
	for _, c := range candidates {
		if t.After(c.recharge.Time) {
			hasRechargeBefore = true
			break
		}
	}

	expiredCandidate := false
	consumedCandidate := false
	for _, c := range candidates {
		// Ticket must be strictly after the recharge. Earlier tickets are
		// neither consumed nor counted as expired candidates.
		if !t.After(c.recharge.Time) {
			continue
		}
		covered, viaE2 := c.window.Covers(drawDay)
		if !covered {
			if c.window.ExpiredFor(drawDay) {
				expiredCandidate = true
			}
			continue
		}
		if consumed[c.recharge.RechargeID] {
			consumedCandidate = true
			continue
		}

		consumed[c.recharge.RechargeID] = true
		vt := models.ValidatedTicket{
			Ticket:              ticket,
			Validity:            models.ValidityValid,
			BoundRechargeID:     c.recharge.RechargeID,
			BoundRechargeTime:   c.recharge.Time,
			BoundRechargeAmount: c.recharge.Amount,
			CutoffFlag:          viaE2,
		}
		if c.recharge.Status != models.RechargeStatusValid {
			vt.Validity = models.ValidityInvalid
			vt.ReasonCode = models.ReasonRechargeInvalidated
		}
		return vt
	}

	switch {
	case !hasRechargeBefore:
		return invalid(ticket, models.ReasonTicketBeforeRecharge)
	case expiredCandidate:
		return invalid(ticket, models.ReasonWindowExpired)
	case consumedCandidate:
		return invalid(ticket, models.ReasonNotFirstTicket)
	default:
		return invalid(ticket, models.ReasonNoEligibleRecharge)
	}
}

func invalid(ticket models.Ticket, reason models.ReasonCode) models.ValidatedTicket {
	return models.ValidatedTicket{
		Ticket:     ticket,
		Validity:   models.ValidityInvalid,
		ReasonCode: reason,
	}
}

// Stats summarizes a validation run.
func Stats(totalRecharges int, validated []models.ValidatedTicket) models.ValidationStats {
	stats := models.ValidationStats{
		TotalRecharges: totalRecharges,
		TotalTickets:   len(validated),
		InvalidReasons: make(map[models.ReasonCode]int),
	}
	for _, vt := range validated {
		switch vt.Validity {
		case models.ValidityValid:
			stats.ValidTickets++
		case models.ValidityInvalid:
			stats.InvalidTickets++
		case models.ValidityUnknown:
			stats.UnknownTickets++
		}
		if vt.CutoffFlag {
			stats.CutoffShiftCases++
		}
		if vt.ReasonCode != "" {
			stats.InvalidReasons[vt.ReasonCode]++
		}
	}
	return stats
}
