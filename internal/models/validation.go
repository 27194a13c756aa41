package models

import "time"

// Validity is the outcome of validating one ticket against the recharge pool.
type Validity string

const (
	ValidityValid   Validity = "VALID"
	ValidityInvalid Validity = "INVALID"
	// ValidityUnknown means "not yet assessable" (no recharge data loaded),
	// not "assessed and rejected".
	ValidityUnknown Validity = "UNKNOWN"
)

// ReasonCode classifies why a ticket was rejected or left unassessed. These
// strings are consumed by the admin UI and CSV exports and must not be
// renamed.
type ReasonCode string

const (
	ReasonNoRechargeData        ReasonCode = "NO_RECHARGE_DATA"
	ReasonNoEligibleRecharge    ReasonCode = "NO_ELIGIBLE_RECHARGE"
	ReasonTicketBeforeRecharge  ReasonCode = "INVALID_TICKET_BEFORE_RECHARGE"
	ReasonNotFirstTicket        ReasonCode = "INVALID_NOT_FIRST_TICKET_AFTER_RECHARGE"
	ReasonWindowExpired         ReasonCode = "INVALID_RECHARGE_WINDOW_EXPIRED"
	ReasonRechargeInvalidated   ReasonCode = "RECHARGE_INVALIDATED"
	ReasonInvalidTicketTime     ReasonCode = "INVALID_TICKET_TIME"
)

// ReasonText maps a reason code to its operator-facing description.
func ReasonText(code ReasonCode) string {
	switch code {
	case ReasonNoRechargeData:
		return "No recharge data uploaded"
	case ReasonNoEligibleRecharge:
		return "No recharge window covers this ticket"
	case ReasonTicketBeforeRecharge:
		return "Ticket time is before or equal to recharge time"
	case ReasonNotFirstTicket:
		return "Recharge already consumed by a previous ticket"
	case ReasonWindowExpired:
		return "Recharge expired after its second eligible draw day"
	case ReasonRechargeInvalidated:
		return "Bound recharge was invalidated"
	case ReasonInvalidTicketTime:
		return "Ticket registration time could not be parsed"
	default:
		return "Unknown reason"
	}
}

// ValidatedTicket is a Ticket with its derived validation outcome. Recomputed
// on every run from the (recharges, tickets) snapshot; never persisted as
// ground truth.
type ValidatedTicket struct {
	Ticket              `json:",inline"`
	Validity            Validity   `json:"validity"`
	ReasonCode          ReasonCode `json:"invalidReasonCode,omitempty"`
	BoundRechargeID     string     `json:"boundRechargeId,omitempty"`
	BoundRechargeTime   time.Time  `json:"boundRechargeTime,omitempty"`
	BoundRechargeAmount float64    `json:"boundRechargeAmount,omitempty"`
	// CutoffFlag marks a ticket that rolled to the draw after the recharge
	// day (bound via the second eligible day).
	CutoffFlag bool `json:"cutoffFlag"`
}

// ValidationStats summarizes one validation run for the admin dashboard.
type ValidationStats struct {
	TotalRecharges   int                `json:"totalRecharges"`
	TotalTickets     int                `json:"totalTickets"`
	ValidTickets     int                `json:"validTickets"`
	InvalidTickets   int                `json:"invalidTickets"`
	UnknownTickets   int                `json:"unknownTickets"`
	CutoffShiftCases int                `json:"cutoffShiftCases"`
	InvalidReasons   map[ReasonCode]int `json:"invalidReasons"`
}
