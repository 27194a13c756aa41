package mongodb

import (
	"context"
	"time"

	"github.com/popsorte/backend/internal/models"
	"github.com/popsorte/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TicketRepository implements the repositories.TicketRepository interface
type TicketRepository struct {
	collection *mongo.Collection
}

// NewTicketRepository creates a new TicketRepository
func NewTicketRepository(db *mongo.Database) repositories.TicketRepository {
	return &TicketRepository{
		collection: db.Collection("tickets"),
	}
}

// Create creates a new ticket
func (r *TicketRepository) Create(ctx context.Context, ticket *models.Ticket) error {
	ticket.CreatedAt = time.Now()
	ticket.UpdatedAt = time.Now()
	res, err := r.collection.InsertOne(ctx, ticket)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		ticket.ID = id
	}
	return nil
}

// CreateMany inserts a batch of tickets
func (r *TicketRepository) CreateMany(ctx context.Context, tickets []*models.Ticket) error {
	if len(tickets) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(tickets))
	now := time.Now()
	for _, t := range tickets {
		t.CreatedAt = now
		t.UpdatedAt = now
		docs = append(docs, t)
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// FindByID finds a ticket by ID
func (r *TicketRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Ticket, error) {
	var ticket models.Ticket
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&ticket)
	if err != nil {
		return nil, err
	}
	return &ticket, nil
}

// FindByGameID finds all tickets of one player, registration time ascending
func (r *TicketRepository) FindByGameID(ctx context.Context, gameID string) ([]*models.Ticket, error) {
	return r.find(ctx, bson.M{"gameId": gameID})
}

// FindByContest finds all tickets of one contest
func (r *TicketRepository) FindByContest(ctx context.Context, contest string) ([]*models.Ticket, error) {
	return r.find(ctx, bson.M{"contest": contest})
}

// FindAll returns every ticket, registration time ascending
func (r *TicketRepository) FindAll(ctx context.Context) ([]*models.Ticket, error) {
	return r.find(ctx, bson.M{})
}

func (r *TicketRepository) find(ctx context.Context, filter bson.M) ([]*models.Ticket, error) {
	opts := options.Find().SetSort(bson.M{"registrationTime": 1})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tickets []*models.Ticket
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}

// Count counts all tickets
func (r *TicketRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
