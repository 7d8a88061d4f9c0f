package domain

import (
	"time"

	"github.com/google/uuid"
)

// TicketStatus state of a dispute ticket
type TicketStatus string

const (
	TicketOpen            TicketStatus = "open"
	TicketClosedForRenter TicketStatus = "closed_for_renter"
	TicketClosedForOwner  TicketStatus = "closed_for_owner"
)

// DisputeDecision arbitration outcome
type DisputeDecision string

const (
	DecisionFavorRenter DisputeDecision = "favor_renter"
	DecisionFavorOwner  DisputeDecision = "favor_owner"
)

// IsValid reports whether d is a known decision
func (d DisputeDecision) IsValid() bool {
	return d == DecisionFavorRenter || d == DecisionFavorOwner
}

// ClosedStatus returns the ticket status matching the decision
func (d DisputeDecision) ClosedStatus() TicketStatus {
	if d == DecisionFavorRenter {
		return TicketClosedForRenter
	}
	return TicketClosedForOwner
}

// DisputeTicket support ticket tied 1:1 to a reservation in Disputed state
type DisputeTicket struct {
	ID              uuid.UUID
	ReservationID   uuid.UUID
	ReporterID      uuid.UUID
	Category        string
	Description     string
	Status          TicketStatus
	PreviousStatus  ReservationStatus // reservation state before the dispute
	ResolutionNotes *string
	ClosedAt        *time.Time
	CreatedAt       time.Time
}

// IsOpen returns true while the ticket awaits a decision
func (t *DisputeTicket) IsOpen() bool {
	return t.Status == TicketOpen
}

// RatingTarget what is being rated
type RatingTarget string

const (
	RatingTargetUser   RatingTarget = "user"
	RatingTargetGarage RatingTarget = "garage"
)

// Rating a score left after a completed reservation
type Rating struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	AuthorID      uuid.UUID
	TargetID      uuid.UUID
	TargetType    RatingTarget
	Score         int
	Comment       *string
	CreatedAt     time.Time
}
