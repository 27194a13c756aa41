package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PrizeTier maps a match count to its prize category.
type PrizeTier string

const (
	TierGrandPrize  PrizeTier = "GRAND_PRIZE" // 5 matches
	TierSecond      PrizeTier = "SECOND"      // 4 matches
	TierThird       PrizeTier = "THIRD"       // 3 matches
	TierConsolation PrizeTier = "CONSOLATION" // 2 matches
	TierNone        PrizeTier = "NO_PRIZE"
)

// Winner represents a winning ticket in one contest: the highest-matching
// tickets of the draw, sharing the prize pool evenly.
type Winner struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Ticket         Ticket             `bson:"ticket" json:"ticket"`
	Contest        string             `bson:"contest" json:"contest"`
	DrawDate       string             `bson:"drawDate" json:"drawDate"`
	Matches        int                `bson:"matches" json:"matches"`
	MatchedNumbers []int              `bson:"matchedNumbers" json:"matchedNumbers"`
	PrizeTier      PrizeTier          `bson:"prizeTier" json:"prizeTier"`
	PrizeShare     float64            `bson:"prizeShare" json:"prizeShare"`
	NotifiedAt     time.Time          `bson:"notifiedAt,omitempty" json:"notifiedAt,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
}

// WinnersReport buckets a winners list by tier for the admin dashboard.
type WinnersReport struct {
	GrandPrize   []Winner `json:"grandPrize"`
	SecondPrize  []Winner `json:"secondPrize"`
	ThirdPrize   []Winner `json:"thirdPrize"`
	Consolation  []Winner `json:"consolation"`
	TotalWinners int      `json:"totalWinners"`
}
