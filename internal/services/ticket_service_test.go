package services

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/popsorte/backend/internal/drawcal"
	"github.com/popsorte/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memTicketRepo is an in-memory TicketRepository for service tests.
type memTicketRepo struct {
	tickets []*models.Ticket
}

func (m *memTicketRepo) Create(ctx context.Context, ticket *models.Ticket) error {
	ticket.ID = primitive.NewObjectID()
	m.tickets = append(m.tickets, ticket)
	return nil
}

func (m *memTicketRepo) CreateMany(ctx context.Context, tickets []*models.Ticket) error {
	for _, t := range tickets {
		if err := m.Create(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func (m *memTicketRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Ticket, error) {
	for _, t := range m.tickets {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, nil
}

func (m *memTicketRepo) FindByGameID(ctx context.Context, gameID string) ([]*models.Ticket, error) {
	var out []*models.Ticket
	for _, t := range m.tickets {
		if t.GameID == gameID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memTicketRepo) FindByContest(ctx context.Context, contest string) ([]*models.Ticket, error) {
	var out []*models.Ticket
	for _, t := range m.tickets {
		if t.Contest == contest {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memTicketRepo) FindAll(ctx context.Context) ([]*models.Ticket, error) {
	return m.tickets, nil
}

func (m *memTicketRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.tickets)), nil
}

func newTicketService(repo *memTicketRepo) *TicketService {
	ref := drawcal.ContestRef{Date: brt(2025, time.March, 3, 0, 0, 0), Number: 2100}
	return NewTicketService(repo, drawcal.New(), ref)
}

func TestSubmitTicketRejectsBadGameID(t *testing.T) {
	s := newTicketService(&memTicketRepo{})

	_, err := s.SubmitTicket(context.Background(), &TicketRequest{
		GameID:        "12345",
		ChosenNumbers: []int{1, 2, 3, 4, 5},
	})
	assert.ErrorIs(t, err, ErrInvalidGameID)

	_, err = s.SubmitTicket(context.Background(), &TicketRequest{
		GameID:        "12345678ab",
		ChosenNumbers: []int{1, 2, 3, 4, 5},
	})
	assert.ErrorIs(t, err, ErrInvalidGameID)
}

func TestSubmitTicketRejectsBadNumbers(t *testing.T) {
	s := newTicketService(&memTicketRepo{})

	cases := [][]int{
		{1, 2, 3, 4},              // too few
		{1, 2, 3, 4, 81},          // out of range
		{1, 2, 3, 4, 0},           // out of range
		{1, 2, 3, 4, 4},           // duplicate
		make([]int, MaxNumbers+1), // too many
	}
	for _, numbers := range cases {
		_, err := s.SubmitTicket(context.Background(), &TicketRequest{
			GameID:        "1234567890",
			ChosenNumbers: numbers,
		})
		assert.ErrorIs(t, err, ErrInvalidNumbers, "numbers %v", numbers)
	}
}

func TestSubmitTicketAssignsDrawAndContest(t *testing.T) {
	repo := &memTicketRepo{}
	s := newTicketService(repo)

	ticket, err := s.SubmitTicket(context.Background(), &TicketRequest{
		GameID:        "1234567890",
		ChosenNumbers: []int{5, 12, 23, 44, 70},
	})
	require.NoError(t, err)
	require.Len(t, repo.tickets, 1)

	assert.Equal(t, models.TicketStatusGenerated, ticket.Status)
	assert.Equal(t, "POPN1", ticket.Platform)
	assert.NotEmpty(t, ticket.TicketNumber)
	assert.False(t, ticket.RegistrationTime.IsZero())

	// The assigned draw date must match the assigned contest number.
	contest, err := s.ContestForDate(ticket.DrawDate)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(contest), ticket.Contest)
}

func TestCurrentScheduleBeforeAndAfterCutoff(t *testing.T) {
	s := newTicketService(&memTicketRepo{})

	// Monday Mar 3 2025, before the 20:00 cutoff: today's draw.
	sched, err := s.CurrentSchedule(brt(2025, time.March, 3, 10, 0, 0))
	require.NoError(t, err)
	assert.Equal(t, brt(2025, time.March, 3, 0, 0, 0), sched.DrawDate)
	assert.Equal(t, 2100, sched.Contest)

	// Past the cutoff: next draw day, next contest.
	sched, err = s.CurrentSchedule(brt(2025, time.March, 3, 20, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, brt(2025, time.March, 4, 0, 0, 0), sched.DrawDate)
	assert.Equal(t, 2101, sched.Contest)
}

func TestUpcomingSchedulesSkipSunday(t *testing.T) {
	s := newTicketService(&memTicketRepo{})

	// Saturday Mar 8 2025; Sunday Mar 9 has no draw.
	schedules, err := s.UpcomingSchedules(brt(2025, time.March, 8, 10, 0, 0), 3)
	require.NoError(t, err)
	require.Len(t, schedules, 3)

	assert.Equal(t, brt(2025, time.March, 8, 0, 0, 0), schedules[0].DrawDate)
	assert.Equal(t, brt(2025, time.March, 10, 0, 0, 0), schedules[1].DrawDate)
	assert.Equal(t, brt(2025, time.March, 11, 0, 0, 0), schedules[2].DrawDate)
	assert.Equal(t, schedules[0].Contest+1, schedules[1].Contest)
	assert.Equal(t, schedules[1].Contest+1, schedules[2].Contest)
}
