package mongodb

import (
	"context"

	"github.com/popsorte/backend/internal/models"
	"github.com/popsorte/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// WinnerRepository implements the repositories.WinnerRepository interface
type WinnerRepository struct {
	collection *mongo.Collection
}

// NewWinnerRepository creates a new WinnerRepository
func NewWinnerRepository(db *mongo.Database) repositories.WinnerRepository {
	return &WinnerRepository{
		collection: db.Collection("winners"),
	}
}

// CreateMany stores a batch of winner records
func (r *WinnerRepository) CreateMany(ctx context.Context, winners []*models.Winner) error {
	if len(winners) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(winners))
	for _, w := range winners {
		docs = append(docs, w)
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// DeleteByContest removes a previous export before recomputation
func (r *WinnerRepository) DeleteByContest(ctx context.Context, contest string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"contest": contest})
	return err
}

// FindByContest returns the winners of one contest, best matches first
func (r *WinnerRepository) FindByContest(ctx context.Context, contest string) ([]*models.Winner, error) {
	return r.find(ctx, bson.M{"contest": contest})
}

// FindAll returns every winner record
func (r *WinnerRepository) FindAll(ctx context.Context) ([]*models.Winner, error) {
	return r.find(ctx, bson.M{})
}

func (r *WinnerRepository) find(ctx context.Context, filter bson.M) ([]*models.Winner, error) {
	opts := options.Find().SetSort(bson.D{{Key: "contest", Value: 1}, {Key: "matches", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var winners []*models.Winner
	if err := cursor.All(ctx, &winners); err != nil {
		return nil, err
	}
	return winners, nil
}
