package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DrawResult represents the published winning numbers of one contest.
type DrawResult struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Contest        string             `bson:"contest" json:"contest"`
	DrawDate       string             `bson:"drawDate" json:"drawDate"` // YYYY-MM-DD
	WinningNumbers []int              `bson:"winningNumbers" json:"winningNumbers"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
