package services

import (
	"context"
	"testing"

	"github.com/popsorte/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type memResultRepo struct {
	results []*models.DrawResult
}

func (m *memResultRepo) Upsert(ctx context.Context, result *models.DrawResult) error {
	for i, r := range m.results {
		if r.Contest == result.Contest && r.DrawDate == result.DrawDate {
			m.results[i] = result
			return nil
		}
	}
	m.results = append(m.results, result)
	return nil
}

func (m *memResultRepo) FindByContestAndDate(ctx context.Context, contest, drawDate string) (*models.DrawResult, error) {
	for _, r := range m.results {
		if r.Contest == contest && r.DrawDate == drawDate {
			return r, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (m *memResultRepo) FindAll(ctx context.Context) ([]*models.DrawResult, error) {
	return m.results, nil
}

type memWinnerRepo struct {
	winners []*models.Winner
}

func (m *memWinnerRepo) CreateMany(ctx context.Context, winners []*models.Winner) error {
	m.winners = append(m.winners, winners...)
	return nil
}

func (m *memWinnerRepo) DeleteByContest(ctx context.Context, contest string) error {
	var kept []*models.Winner
	for _, w := range m.winners {
		if w.Contest != contest {
			kept = append(kept, w)
		}
	}
	m.winners = kept
	return nil
}

func (m *memWinnerRepo) FindByContest(ctx context.Context, contest string) ([]*models.Winner, error) {
	var out []*models.Winner
	for _, w := range m.winners {
		if w.Contest == contest {
			out = append(out, w)
		}
	}
	return out, nil
}

func (m *memWinnerRepo) FindAll(ctx context.Context) ([]*models.Winner, error) {
	return m.winners, nil
}

func newResultsFixture() (*ResultsService, *memTicketRepo, *memResultRepo, *memWinnerRepo) {
	tickets := &memTicketRepo{}
	results := &memResultRepo{}
	winners := &memWinnerRepo{}
	s := NewResultsService(results, tickets, winners, NewPrizeService(1000))
	return s, tickets, results, winners
}

func TestPublishResultValidatesNumbers(t *testing.T) {
	s, _, results, _ := newResultsFixture()
	ctx := context.Background()

	err := s.PublishResult(ctx, &models.DrawResult{
		Contest: "2100", DrawDate: "2025-03-03", WinningNumbers: []int{5, 12, 23, 44},
	})
	assert.ErrorIs(t, err, ErrInvalidWinningNumbers)

	err = s.PublishResult(ctx, &models.DrawResult{
		Contest: "2100", DrawDate: "2025-03-03", WinningNumbers: []int{5, 12, 23, 44, 44},
	})
	assert.ErrorIs(t, err, ErrInvalidWinningNumbers)

	err = s.PublishResult(ctx, &models.DrawResult{
		Contest: "2100", DrawDate: "2025-03-03", WinningNumbers: []int{5, 12, 23, 44, 70},
	})
	require.NoError(t, err)
	assert.Len(t, results.results, 1)
}

func TestPublishResultReplacesSameDraw(t *testing.T) {
	s, _, results, _ := newResultsFixture()
	ctx := context.Background()

	require.NoError(t, s.PublishResult(ctx, &models.DrawResult{
		Contest: "2100", DrawDate: "2025-03-03", WinningNumbers: []int{1, 2, 3, 4, 5},
	}))
	require.NoError(t, s.PublishResult(ctx, &models.DrawResult{
		Contest: "2100", DrawDate: "2025-03-03", WinningNumbers: []int{5, 12, 23, 44, 70},
	}))

	require.Len(t, results.results, 1)
	assert.Equal(t, []int{5, 12, 23, 44, 70}, results.results[0].WinningNumbers)
}

func TestComputeWinnersStoresAndReplaces(t *testing.T) {
	s, tickets, _, winners := newResultsFixture()
	ctx := context.Background()

	require.NoError(t, tickets.CreateMany(ctx, []*models.Ticket{
		{GameID: "1111111111", Contest: "2100", DrawDate: "2025-03-03",
			ChosenNumbers: []int{5, 12, 23, 1, 2}, Status: models.TicketStatusValidated},
		{GameID: "2222222222", Contest: "2100", DrawDate: "2025-03-03",
			ChosenNumbers: []int{5, 12, 1, 2, 3}, Status: models.TicketStatusValidated},
		{GameID: "3333333333", Contest: "2100", DrawDate: "2025-03-03",
			ChosenNumbers: []int{5, 12, 23, 44, 1}, Status: models.TicketStatusInvalid},
	}))
	require.NoError(t, s.PublishResult(ctx, &models.DrawResult{
		Contest: "2100", DrawDate: "2025-03-03", WinningNumbers: []int{5, 12, 23, 44, 70},
	}))

	computed, err := s.ComputeWinners(ctx)
	require.NoError(t, err)

	// The invalid ticket is ignored; the three-match ticket wins alone.
	require.Len(t, computed, 1)
	assert.Equal(t, "1111111111", computed[0].Ticket.GameID)
	assert.Equal(t, 3, computed[0].Matches)
	assert.Equal(t, models.TierThird, computed[0].PrizeTier)
	assert.Equal(t, 1000.0, computed[0].PrizeShare)
	assert.Len(t, winners.winners, 1)

	// Recomputation replaces, not duplicates.
	_, err = s.ComputeWinners(ctx)
	require.NoError(t, err)
	assert.Len(t, winners.winners, 1)
}

func TestWinnersReportBucketsByContest(t *testing.T) {
	s, tickets, _, _ := newResultsFixture()
	ctx := context.Background()

	require.NoError(t, tickets.Create(ctx, &models.Ticket{
		GameID: "1111111111", Contest: "2100", DrawDate: "2025-03-03",
		ChosenNumbers: []int{5, 12, 23, 44, 70}, Status: models.TicketStatusValidated,
	}))
	require.NoError(t, s.PublishResult(ctx, &models.DrawResult{
		Contest: "2100", DrawDate: "2025-03-03", WinningNumbers: []int{5, 12, 23, 44, 70},
	}))
	_, err := s.ComputeWinners(ctx)
	require.NoError(t, err)

	report, err := s.WinnersReport(ctx, "2100")
	require.NoError(t, err)
	assert.Equal(t, 1, report.TotalWinners)
	require.Len(t, report.GrandPrize, 1)
	assert.Equal(t, models.TierGrandPrize, report.GrandPrize[0].PrizeTier)

	report, err = s.WinnersReport(ctx, "9999")
	require.NoError(t, err)
	assert.Equal(t, 0, report.TotalWinners)
}
