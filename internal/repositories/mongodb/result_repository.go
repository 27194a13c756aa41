package mongodb

import (
	"context"
	"time"

	"github.com/popsorte/backend/internal/models"
	"github.com/popsorte/backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ResultRepository implements the repositories.ResultRepository interface
type ResultRepository struct {
	collection *mongo.Collection
}

// NewResultRepository creates a new ResultRepository
func NewResultRepository(db *mongo.Database) repositories.ResultRepository {
	return &ResultRepository{
		collection: db.Collection("results"),
	}
}

// Upsert stores the winning numbers of a contest, replacing any previous
// publication for the same (contest, drawDate) pair.
func (r *ResultRepository) Upsert(ctx context.Context, result *models.DrawResult) error {
	now := time.Now()
	filter := bson.M{"contest": result.Contest, "drawDate": result.DrawDate}
	update := bson.M{
		"$set": bson.M{
			"winningNumbers": result.WinningNumbers,
			"updatedAt":      now,
		},
		"$setOnInsert": bson.M{
			"contest":   result.Contest,
			"drawDate":  result.DrawDate,
			"createdAt": now,
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := r.collection.UpdateOne(ctx, filter, update, opts)
	return err
}

// FindByContestAndDate finds the result of one draw
func (r *ResultRepository) FindByContestAndDate(ctx context.Context, contest, drawDate string) (*models.DrawResult, error) {
	var result models.DrawResult
	err := r.collection.FindOne(ctx, bson.M{"contest": contest, "drawDate": drawDate}).Decode(&result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// FindAll returns every published result, contest ascending
func (r *ResultRepository) FindAll(ctx context.Context) ([]*models.DrawResult, error) {
	opts := options.Find().SetSort(bson.M{"contest": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []*models.DrawResult
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}
