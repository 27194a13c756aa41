package services

import (
	"sort"
	"strings"

	"github.com/popsorte/backend/internal/models"
	"golang.org/x/exp/slog"
)

// DefaultPrizePool is the fixed pool split among the top-tier winners of a
// contest, in currency units.
const DefaultPrizePool = 1000.0

// Ticket statuses allowed into winner computation. Anything else (pending,
// generated, rejected) is excluded before matching is even attempted.
var allowedWinnerStatuses = map[string]bool{
	"VALID":     true,
	"VALIDATED": true,
	"VALIDADO":  true,
}

// PrizeService matches validated tickets against published results and
// computes per-contest winners.
type PrizeService struct {
	pool float64
}

// NewPrizeService creates a PrizeService with the given prize pool. A zero or
// negative pool falls back to DefaultPrizePool.
func NewPrizeService(pool float64) *PrizeService {
	if pool <= 0 {
		pool = DefaultPrizePool
	}
	return &PrizeService{pool: pool}
}

// MatchNumbers intersects the chosen numbers with the winning numbers. The
// matched list follows the chosen order.
func MatchNumbers(chosen, winning []int) (int, []int) {
	winningSet := make(map[int]bool, len(winning))
	for _, n := range winning {
		winningSet[n] = true
	}
	var matched []int
	for _, n := range chosen {
		if winningSet[n] {
			matched = append(matched, n)
		}
	}
	return len(matched), matched
}

// TierFor maps a match count to its prize tier.
func TierFor(matchCount int) models.PrizeTier {
	switch matchCount {
	case 5:
		return models.TierGrandPrize
	case 4:
		return models.TierSecond
	case 3:
		return models.TierThird
	case 2:
		return models.TierConsolation
	default:
		return models.TierNone
	}
}

// eligibleStatus reports whether a raw sheet status admits the ticket to
// winner computation.
func eligibleStatus(status string) bool {
	return allowedWinnerStatuses[strings.ToUpper(strings.TrimSpace(status))]
}

type scoredTicket struct {
	ticket  models.ValidatedTicket
	matches int
	matched []int
}

// ComputeWinners finds, per (contest, drawDate), the tickets tied at the
// highest match count and splits the pool evenly among them. Draws whose best
// match count is zero produce no winners. The returned list is ordered by
// contest ascending, then match count descending.
func (s *PrizeService) ComputeWinners(validated []models.ValidatedTicket, results []models.DrawResult) []models.Winner {
	resultByKey := make(map[string]models.DrawResult, len(results))
	for _, r := range results {
		resultByKey[r.Contest+"_"+r.DrawDate] = r
	}

	groups := make(map[string][]scoredTicket)
	for _, vt := range validated {
		if !eligibleStatus(vt.Status) {
			continue
		}
		key := vt.Contest + "_" + vt.DrawDate
		result, ok := resultByKey[key]
		if !ok {
			slog.Debug("no winning numbers for contest", "contest", vt.Contest, "drawDate", vt.DrawDate)
			continue
		}
		count, matched := MatchNumbers(vt.ChosenNumbers, result.WinningNumbers)
		groups[key] = append(groups[key], scoredTicket{ticket: vt, matches: count, matched: matched})
	}

	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var winners []models.Winner
	for _, key := range keys {
		group := groups[key]
		level := 0
		for _, st := range group {
			if st.matches > level {
				level = st.matches
			}
		}
		if level == 0 {
			continue
		}

		var tied []scoredTicket
		for _, st := range group {
			if st.matches == level {
				tied = append(tied, st)
			}
		}
		share := s.pool / float64(len(tied))
		for _, st := range tied {
			winners = append(winners, models.Winner{
				Ticket:         st.ticket.Ticket,
				Contest:        st.ticket.Contest,
				DrawDate:       st.ticket.DrawDate,
				Matches:        st.matches,
				MatchedNumbers: st.matched,
				PrizeTier:      TierFor(st.matches),
				PrizeShare:     share,
			})
		}
	}

	sort.SliceStable(winners, func(i, j int) bool {
		if winners[i].Contest != winners[j].Contest {
			return winners[i].Contest < winners[j].Contest
		}
		return winners[i].Matches > winners[j].Matches
	})
	return winners
}

// Report buckets winners by tier.
func (s *PrizeService) Report(winners []models.Winner) models.WinnersReport {
	report := models.WinnersReport{TotalWinners: len(winners)}
	for _, w := range winners {
		switch w.Matches {
		case 5:
			report.GrandPrize = append(report.GrandPrize, w)
		case 4:
			report.SecondPrize = append(report.SecondPrize, w)
		case 3:
			report.ThirdPrize = append(report.ThirdPrize, w)
		case 2:
			report.Consolation = append(report.Consolation, w)
		}
	}
	return report
}
