package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ticket statuses as supplied by the entry sheet. Only the "validated" set
// participates in winner computation.
const (
	TicketStatusGenerated = "GENERATED"
	TicketStatusPending   = "PENDING"
	TicketStatusValidated = "VALIDATED"
	TicketStatusInvalid   = "INVALID"
)

// Ticket represents a submitted lottery entry. Immutable once created;
// validation results are derived, never written back.
type Ticket struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	GameID          string             `bson:"gameId" json:"gameId"`
	Platform        string             `bson:"platform" json:"platform"`
	WhatsApp        string             `bson:"whatsapp" json:"whatsapp"`
	RegistrationRaw string             `bson:"registrationRaw" json:"registrationDateTime"`
	// RegistrationTime is zero when RegistrationRaw could not be parsed at
	// ingestion.
	RegistrationTime time.Time `bson:"registrationTime,omitempty" json:"registrationTime,omitempty"`
	ChosenNumbers    []int     `bson:"chosenNumbers" json:"chosenNumbers"`
	DrawDate         string    `bson:"drawDate" json:"drawDate"` // YYYY-MM-DD
	Contest          string    `bson:"contest" json:"contest"`
	TicketNumber     string    `bson:"ticketNumber" json:"ticketNumber"`
	Status           string    `bson:"status" json:"status"`
	CreatedAt        time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time `bson:"updatedAt" json:"updatedAt"`
}
