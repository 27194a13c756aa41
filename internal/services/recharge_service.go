package services

import (
	"context"

	"github.com/popsorte/backend/internal/models"
	"github.com/popsorte/backend/internal/repositories"
	"golang.org/x/exp/slog"
)

// RechargeService handles recharge bookkeeping and validation runs
type RechargeService struct {
	rechargeRepo repositories.RechargeRepository
	ticketRepo   repositories.TicketRepository
	validator    *Validator
}

// NewRechargeService creates a new RechargeService
func NewRechargeService(
	rechargeRepo repositories.RechargeRepository,
	ticketRepo repositories.TicketRepository,
	validator *Validator,
) *RechargeService {
	return &RechargeService{
		rechargeRepo: rechargeRepo,
		ticketRepo:   ticketRepo,
		validator:    validator,
	}
}

// GetRechargesByGameID retrieves a player's recharges, oldest first
func (s *RechargeService) GetRechargesByGameID(ctx context.Context, gameID string) ([]*models.Recharge, error) {
	return s.rechargeRepo.FindByGameID(ctx, gameID)
}

// GetAllRecharges retrieves every recharge
func (s *RechargeService) GetAllRecharges(ctx context.Context) ([]*models.Recharge, error) {
	return s.rechargeRepo.FindAll(ctx)
}

// InvalidateRecharge marks a recharge INVALIDATED. The recharge keeps its
// position in the allocation order; tickets bound to it come out invalid
// on the next validation run.
func (s *RechargeService) InvalidateRecharge(ctx context.Context, rechargeID string) error {
	if err := s.rechargeRepo.UpdateStatus(ctx, rechargeID, models.RechargeStatusInvalidated); err != nil {
		return err
	}
	slog.Info("recharge invalidated", "rechargeId", rechargeID)
	return nil
}

// ReinstateRecharge marks a recharge VALID again
func (s *RechargeService) ReinstateRecharge(ctx context.Context, rechargeID string) error {
	return s.rechargeRepo.UpdateStatus(ctx, rechargeID, models.RechargeStatusValid)
}

// ValidationRun is the outcome of one validation pass over the full data set
type ValidationRun struct {
	Tickets []models.ValidatedTicket `json:"tickets"`
	Stats   models.ValidationStats   `json:"stats"`
}

// RunValidation loads a snapshot of all recharges and tickets and computes
// per-ticket validity. Results are derived data and are not written back.
func (s *RechargeService) RunValidation(ctx context.Context) (*ValidationRun, error) {
	recharges, err := s.rechargeRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	tickets, err := s.ticketRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	rechargeSnapshot := make([]models.Recharge, 0, len(recharges))
	for _, r := range recharges {
		rechargeSnapshot = append(rechargeSnapshot, *r)
	}
	ticketSnapshot := make([]models.Ticket, 0, len(tickets))
	for _, t := range tickets {
		ticketSnapshot = append(ticketSnapshot, *t)
	}

	validated := s.validator.Validate(rechargeSnapshot, ticketSnapshot)
	stats := Stats(len(rechargeSnapshot), validated)

	slog.Info("validation run complete",
		"recharges", stats.TotalRecharges,
		"tickets", stats.TotalTickets,
		"valid", stats.ValidTickets,
		"invalid", stats.InvalidTickets,
		"unknown", stats.UnknownTickets,
	)

	return &ValidationRun{Tickets: validated, Stats: stats}, nil
}
