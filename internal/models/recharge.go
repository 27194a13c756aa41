package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RechargeStatus represents the status of a recharge
type RechargeStatus string

const (
	RechargeStatusValid       RechargeStatus = "VALID"
	RechargeStatusInvalidated RechargeStatus = "INVALIDATED"
)

// Recharge represents a payment recharge made by a player. A recharge funds
// at most one ticket per validation run.
type Recharge struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	GameID     string             `bson:"gameId" json:"gameId"`
	RechargeID string             `bson:"rechargeId" json:"rechargeId"`
	TimeRaw    string             `bson:"timeRaw" json:"timeRaw"`
	// Time is zero when TimeRaw could not be parsed at ingestion.
	Time      time.Time      `bson:"time,omitempty" json:"time,omitempty"`
	Amount    float64        `bson:"amount" json:"amount"`
	Status    RechargeStatus `bson:"status" json:"status"`
	Source    string         `bson:"source" json:"source"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time      `bson:"updatedAt" json:"updatedAt"`
}
