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

// RechargeRepository implements the repositories.RechargeRepository interface
type RechargeRepository struct {
	collection *mongo.Collection
}

// NewRechargeRepository creates a new RechargeRepository
func NewRechargeRepository(db *mongo.Database) repositories.RechargeRepository {
	return &RechargeRepository{
		collection: db.Collection("recharges"),
	}
}

// Create creates a new recharge
func (r *RechargeRepository) Create(ctx context.Context, recharge *models.Recharge) error {
	recharge.CreatedAt = time.Now()
	recharge.UpdatedAt = time.Now()
	_, err := r.collection.InsertOne(ctx, recharge)
	return err
}

// CreateMany inserts a batch of recharges
func (r *RechargeRepository) CreateMany(ctx context.Context, recharges []*models.Recharge) error {
	if len(recharges) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(recharges))
	now := time.Now()
	for _, rec := range recharges {
		rec.CreatedAt = now
		rec.UpdatedAt = now
		docs = append(docs, rec)
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// FindByRechargeID finds a recharge by its sheet identifier
func (r *RechargeRepository) FindByRechargeID(ctx context.Context, rechargeID string) (*models.Recharge, error) {
	var recharge models.Recharge
	err := r.collection.FindOne(ctx, bson.M{"rechargeId": rechargeID}).Decode(&recharge)
	if err != nil {
		return nil, err
	}
	return &recharge, nil
}

// FindByGameID finds all recharges of one player, time ascending
func (r *RechargeRepository) FindByGameID(ctx context.Context, gameID string) ([]*models.Recharge, error) {
	opts := options.Find().SetSort(bson.M{"time": 1})
	cursor, err := r.collection.Find(ctx, bson.M{"gameId": gameID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var recharges []*models.Recharge
	if err := cursor.All(ctx, &recharges); err != nil {
		return nil, err
	}
	return recharges, nil
}

// FindAll returns every recharge, time ascending
func (r *RechargeRepository) FindAll(ctx context.Context) ([]*models.Recharge, error) {
	opts := options.Find().SetSort(bson.M{"time": 1})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var recharges []*models.Recharge
	if err := cursor.All(ctx, &recharges); err != nil {
		return nil, err
	}
	return recharges, nil
}

// UpdateStatus flips a recharge's status (e.g. to INVALIDATED)
func (r *RechargeRepository) UpdateStatus(ctx context.Context, rechargeID string, status models.RechargeStatus) error {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"rechargeId": rechargeID},
		bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Count counts all recharges
func (r *RechargeRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
