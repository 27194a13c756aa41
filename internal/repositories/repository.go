package repositories

import (
	"context"

	"github.com/popsorte/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RechargeRepository defines the interface for recharge data operations
type RechargeRepository interface {
	Create(ctx context.Context, recharge *models.Recharge) error
	CreateMany(ctx context.Context, recharges []*models.Recharge) error
	FindByRechargeID(ctx context.Context, rechargeID string) (*models.Recharge, error)
	FindByGameID(ctx context.Context, gameID string) ([]*models.Recharge, error)
	FindAll(ctx context.Context) ([]*models.Recharge, error)
	UpdateStatus(ctx context.Context, rechargeID string, status models.RechargeStatus) error
	Count(ctx context.Context) (int64, error)
}

// TicketRepository defines the interface for ticket data operations
type TicketRepository interface {
	Create(ctx context.Context, ticket *models.Ticket) error
	CreateMany(ctx context.Context, tickets []*models.Ticket) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Ticket, error)
	FindByGameID(ctx context.Context, gameID string) ([]*models.Ticket, error)
	FindByContest(ctx context.Context, contest string) ([]*models.Ticket, error)
	FindAll(ctx context.Context) ([]*models.Ticket, error)
	Count(ctx context.Context) (int64, error)
}

// ResultRepository defines the interface for draw result operations
type ResultRepository interface {
	Upsert(ctx context.Context, result *models.DrawResult) error
	FindByContestAndDate(ctx context.Context, contest, drawDate string) (*models.DrawResult, error)
	FindAll(ctx context.Context) ([]*models.DrawResult, error)
}

// WinnerRepository defines the interface for winner export operations.
// Winner records are derived data; each computation replaces the previous
// export for the contests it covers.
type WinnerRepository interface {
	CreateMany(ctx context.Context, winners []*models.Winner) error
	DeleteByContest(ctx context.Context, contest string) error
	FindByContest(ctx context.Context, contest string) ([]*models.Winner, error)
	FindAll(ctx context.Context) ([]*models.Winner, error)
}

// AdminUserRepository defines the interface for admin account operations
type AdminUserRepository interface {
	Create(ctx context.Context, user *models.AdminUser) error
	FindByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.AdminUser, error)
}
