package services

import (
	"context"
	"errors"
	"time"

	"github.com/popsorte/backend/internal/models"
	"github.com/popsorte/backend/internal/repositories"
	"golang.org/x/exp/slog"
)

// ErrInvalidWinningNumbers is returned when a published result does not
// carry exactly five numbers in range.
var ErrInvalidWinningNumbers = errors.New("winning numbers must be five distinct values between 1 and 80")

// ResultsService handles result publication and winner computation
type ResultsService struct {
	resultRepo repositories.ResultRepository
	ticketRepo repositories.TicketRepository
	winnerRepo repositories.WinnerRepository
	prizes     *PrizeService
}

// NewResultsService creates a new ResultsService
func NewResultsService(
	resultRepo repositories.ResultRepository,
	ticketRepo repositories.TicketRepository,
	winnerRepo repositories.WinnerRepository,
	prizes *PrizeService,
) *ResultsService {
	return &ResultsService{
		resultRepo: resultRepo,
		ticketRepo: ticketRepo,
		winnerRepo: winnerRepo,
		prizes:     prizes,
	}
}

// PublishResult stores the winning numbers of a contest, replacing any
// earlier publication for the same draw.
func (s *ResultsService) PublishResult(ctx context.Context, result *models.DrawResult) error {
	if !validWinningNumbers(result.WinningNumbers) {
		return ErrInvalidWinningNumbers
	}
	return s.resultRepo.Upsert(ctx, result)
}

// GetResults returns every published result, contest ascending
func (s *ResultsService) GetResults(ctx context.Context) ([]*models.DrawResult, error) {
	return s.resultRepo.FindAll(ctx)
}

// GetResult returns the result of one draw
func (s *ResultsService) GetResult(ctx context.Context, contest, drawDate string) (*models.DrawResult, error) {
	return s.resultRepo.FindByContestAndDate(ctx, contest, drawDate)
}

// ComputeWinners matches every stored ticket against the published results
// and replaces the winner export for each contest that produced winners.
// Only tickets whose sheet status marks them validated participate.
func (s *ResultsService) ComputeWinners(ctx context.Context) ([]models.Winner, error) {
	tickets, err := s.ticketRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	results, err := s.resultRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	candidates := make([]models.ValidatedTicket, 0, len(tickets))
	for _, t := range tickets {
		candidates = append(candidates, models.ValidatedTicket{Ticket: *t})
	}
	drawResults := make([]models.DrawResult, 0, len(results))
	for _, r := range results {
		drawResults = append(drawResults, *r)
	}

	winners := s.prizes.ComputeWinners(candidates, drawResults)

	now := time.Now()
	byContest := make(map[string][]*models.Winner)
	for i := range winners {
		winners[i].CreatedAt = now
		byContest[winners[i].Contest] = append(byContest[winners[i].Contest], &winners[i])
	}

	for contest, batch := range byContest {
		if err := s.winnerRepo.DeleteByContest(ctx, contest); err != nil {
			return nil, err
		}
		if err := s.winnerRepo.CreateMany(ctx, batch); err != nil {
			return nil, err
		}
		slog.Info("winner export replaced", "contest", contest, "winners", len(batch))
	}

	return winners, nil
}

// WinnersReport buckets the stored winners of one contest by prize tier.
// Pass an empty contest for all contests.
func (s *ResultsService) WinnersReport(ctx context.Context, contest string) (*models.WinnersReport, error) {
	var (
		stored []*models.Winner
		err    error
	)
	if contest == "" {
		stored, err = s.winnerRepo.FindAll(ctx)
	} else {
		stored, err = s.winnerRepo.FindByContest(ctx, contest)
	}
	if err != nil {
		return nil, err
	}

	winners := make([]models.Winner, 0, len(stored))
	for _, w := range stored {
		winners = append(winners, *w)
	}
	report := s.prizes.Report(winners)
	return &report, nil
}

func validWinningNumbers(numbers []int) bool {
	if len(numbers) != 5 {
		return false
	}
	seen := make(map[int]bool, 5)
	for _, n := range numbers {
		if n < 1 || n > MaxNumber || seen[n] {
			return false
		}
		seen[n] = true
	}
	return true
}
