package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/pkg/types"
)

// ReservationStatus lifecycle state of a reservation
type ReservationStatus string

const (
	ReservationPending    ReservationStatus = "pending"
	ReservationPaid       ReservationStatus = "paid"
	ReservationInProgress ReservationStatus = "in_progress"
	ReservationCompleted  ReservationStatus = "completed"
	ReservationDisputed   ReservationStatus = "disputed"
	ReservationRefunded   ReservationStatus = "refunded"
	ReservationCancelled  ReservationStatus = "cancelled"
)

// NonBlockingStatuses reservations in these states do not occupy the garage
var NonBlockingStatuses = []ReservationStatus{
	ReservationCancelled,
	ReservationRefunded,
}

// BlocksAvailability returns true if a reservation in this state occupies its slots
func (s ReservationStatus) BlocksAvailability() bool {
	for _, nb := range NonBlockingStatuses {
		if s == nb {
			return false
		}
	}
	return true
}

// CanBeDisputed returns true for states where escrowed funds exist
func (s ReservationStatus) CanBeDisputed() bool {
	return s == ReservationPaid || s == ReservationInProgress || s == ReservationCompleted
}

// FundsHeld returns true if the owner payout sits in the held bucket
func (s ReservationStatus) FundsHeld() bool {
	return s == ReservationPaid || s == ReservationInProgress
}

// ChargeMode how the base price was computed
type ChargeMode string

const (
	ChargePerHour ChargeMode = "per_hour"
	ChargePerDay  ChargeMode = "per_day"
)

// LineItemStatus sub-state of a reservation date
type LineItemStatus string

const (
	LineItemScheduled  LineItemStatus = "scheduled"
	LineItemInProgress LineItemStatus = "in_progress"
	LineItemCompleted  LineItemStatus = "completed"
)

// Reservation a renter's booking of a garage
type Reservation struct {
	ID       uuid.UUID
	RenterID uuid.UUID
	GarageID uuid.UUID
	OwnerID  uuid.UUID
	Status   ReservationStatus

	ChargeMode  ChargeMode
	Subtotal    Cents
	ServicesSum Cents
	Total       Cents
	Commission  Cents
	OwnerPayout Cents // fixed at creation, the amount that moves through the ledger

	InitialMessage *string
	WaiverAccepted bool
	WaiverVersion  string
	AcceptanceIP   string

	Dates    []ReservationDate
	Services []ReservationService

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsRenter returns true if userID booked the reservation
func (r *Reservation) IsRenter(userID uuid.UUID) bool {
	return r.RenterID == userID
}

// IsParticipant returns true for the renter and the garage owner
func (r *Reservation) IsParticipant(userID uuid.UUID) bool {
	return r.RenterID == userID || r.OwnerID == userID
}

// FindDate returns the line item with the given id
func (r *Reservation) FindDate(id uuid.UUID) (*ReservationDate, bool) {
	for i := range r.Dates {
		if r.Dates[i].ID == id {
			return &r.Dates[i], true
		}
	}
	return nil, false
}

// AllDatesCompleted returns true if every line item is completed
func (r *Reservation) AllDatesCompleted() bool {
	if len(r.Dates) == 0 {
		return false
	}
	for _, d := range r.Dates {
		if d.Status != LineItemCompleted {
			return false
		}
	}
	return true
}

// ReservationDate one date + time-window line item
type ReservationDate struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	Date          time.Time
	StartTime     types.TimeOfDay
	EndTime       types.TimeOfDay
	Status        LineItemStatus
	CheckInAt     *time.Time
	CheckOutAt    *time.Time
}

// Window returns the booked interval
func (d *ReservationDate) Window() types.Interval {
	return types.Interval{Start: d.StartTime, End: d.EndTime}
}

// ReservationService extra service selected at booking, price snapshotted
type ReservationService struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	ServiceID     uuid.UUID
	Quantity      int
	AgreedPrice   Cents
}

// PaymentProofStatus review state of a payment proof
type PaymentProofStatus string

const (
	PaymentProofUnderReview PaymentProofStatus = "under_review"
)

// PaymentProof artifact uploaded by the renter when paying
type PaymentProof struct {
	ID            uuid.UUID
	ReservationID uuid.UUID
	Amount        Cents
	Method        string
	ImageURL      *string
	TransactionID *string
	Status        PaymentProofStatus
	CreatedAt     time.Time
}

// EvidenceMoment when the evidence was captured
type EvidenceMoment string

const (
	EvidenceCheckIn  EvidenceMoment = "check_in"
	EvidenceCheckOut EvidenceMoment = "check_out"
)

// Evidence photographic proof of the garage state at check-in/check-out
type Evidence struct {
	ID                uuid.UUID
	ReservationDateID uuid.UUID
	Moment            EvidenceMoment
	PhotoURL          *string
	Comments          *string
	CreatedAt         time.Time
}
