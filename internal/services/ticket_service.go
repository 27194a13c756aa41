package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/popsorte/backend/internal/drawcal"
	"github.com/popsorte/backend/internal/models"
	"github.com/popsorte/backend/internal/repositories"
	"github.com/popsorte/backend/internal/utils"
)

// Intake limits for a submitted entry.
const (
	GameIDLength = 10
	MinNumbers   = 5
	MaxNumbers   = 20
	MaxNumber    = 80
)

var (
	ErrInvalidGameID   = errors.New("gameId must be exactly 10 digits")
	ErrInvalidNumbers  = fmt.Errorf("chosen numbers must be %d to %d distinct values between 1 and %d", MinNumbers, MaxNumbers, MaxNumber)
	ErrNoUpcomingDraw  = errors.New("no upcoming draw day found")
	ErrUnknownDrawDate = errors.New("drawDate is not a valid date")
)

// TicketRequest is a player entry submission.
type TicketRequest struct {
	GameID        string `json:"gameId" binding:"required"`
	Platform      string `json:"platform"`
	WhatsApp      string `json:"whatsapp"`
	ChosenNumbers []int  `json:"chosenNumbers" binding:"required"`
}

// TicketService handles entry intake and draw-schedule queries
type TicketService struct {
	ticketRepo repositories.TicketRepository
	cal        *drawcal.Calendar
	contestRef drawcal.ContestRef
}

// NewTicketService creates a new TicketService
func NewTicketService(ticketRepo repositories.TicketRepository, cal *drawcal.Calendar, ref drawcal.ContestRef) *TicketService {
	return &TicketService{
		ticketRepo: ticketRepo,
		cal:        cal,
		contestRef: ref,
	}
}

// SubmitTicket validates an entry and assigns it to the current draw.
// The registration instant decides the draw: submissions after the cutoff
// roll to the next draw day.
func (s *TicketService) SubmitTicket(ctx context.Context, req *TicketRequest) (*models.Ticket, error) {
	if !isGameID(req.GameID) {
		return nil, ErrInvalidGameID
	}
	numbers, err := normalizeNumbers(req.ChosenNumbers)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	schedule, ok := s.cal.CurrentSchedule(now)
	if !ok {
		return nil, ErrNoUpcomingDraw
	}
	contest := s.cal.ContestNumber(s.contestRef, schedule.DrawDate)

	ticketNumber, err := utils.GenerateRandomString(12)
	if err != nil {
		return nil, err
	}

	platform := req.Platform
	if platform == "" {
		platform = "POPN1"
	}

	ticket := &models.Ticket{
		GameID:           req.GameID,
		Platform:         platform,
		WhatsApp:         req.WhatsApp,
		RegistrationRaw:  now.Format(time.RFC3339),
		RegistrationTime: now,
		ChosenNumbers:    numbers,
		DrawDate:         drawcal.FormatLocalDate(schedule.DrawDate),
		Contest:          strconv.Itoa(contest),
		TicketNumber:     ticketNumber,
		Status:           models.TicketStatusGenerated,
	}
	if err := s.ticketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}
	return ticket, nil
}

// CurrentSchedule returns the draw an entry submitted now would target,
// with its contest number filled in.
func (s *TicketService) CurrentSchedule(now time.Time) (*drawcal.Schedule, error) {
	schedule, ok := s.cal.CurrentSchedule(now)
	if !ok {
		return nil, ErrNoUpcomingDraw
	}
	schedule.Contest = s.cal.ContestNumber(s.contestRef, schedule.DrawDate)
	return &schedule, nil
}

// UpcomingSchedules returns the next n draw days starting from now.
func (s *TicketService) UpcomingSchedules(now time.Time, n int) ([]drawcal.Schedule, error) {
	first, err := s.CurrentSchedule(now)
	if err != nil {
		return nil, err
	}

	schedules := []drawcal.Schedule{*first}
	day := first.DrawDate
	for len(schedules) < n {
		next, ok := s.cal.FirstDrawDayAfter(s.cal.CutoffInstant(day))
		if !ok {
			break
		}
		sched := s.cal.ScheduleFor(next)
		sched.Contest = s.cal.ContestNumber(s.contestRef, next)
		schedules = append(schedules, sched)
		day = next
	}
	return schedules, nil
}

// GetTicketsByGameID retrieves a player's tickets
func (s *TicketService) GetTicketsByGameID(ctx context.Context, gameID string) ([]*models.Ticket, error) {
	return s.ticketRepo.FindByGameID(ctx, gameID)
}

// GetTicketsByContest retrieves the tickets of one contest
func (s *TicketService) GetTicketsByContest(ctx context.Context, contest string) ([]*models.Ticket, error) {
	return s.ticketRepo.FindByContest(ctx, contest)
}

// ContestForDate maps a "YYYY-MM-DD" draw date to its contest number.
func (s *TicketService) ContestForDate(drawDate string) (int, error) {
	day, err := drawcal.ParseLocalDate(drawDate)
	if err != nil {
		return 0, ErrUnknownDrawDate
	}
	return s.cal.ContestNumber(s.contestRef, day), nil
}

func isGameID(s string) bool {
	if len(s) != GameIDLength {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// normalizeNumbers checks range and cardinality. The submitted order is
// kept; match reporting preserves it.
func normalizeNumbers(numbers []int) ([]int, error) {
	if len(numbers) < MinNumbers || len(numbers) > MaxNumbers {
		return nil, ErrInvalidNumbers
	}
	seen := make(map[int]bool, len(numbers))
	out := make([]int, 0, len(numbers))
	for _, n := range numbers {
		if n < 1 || n > MaxNumber || seen[n] {
			return nil, ErrInvalidNumbers
		}
		seen[n] = true
		out = append(out, n)
	}
	return out, nil
}
