package domain

import (
	"time"

	"github.com/google/uuid"
)

// Wallet escrow balances of one owner. Both buckets are never negative.
type Wallet struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Available Cents
	Held      Cents
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Total returns available + held
func (w *Wallet) Total() Cents {
	return w.Available + w.Held
}

// MovementType kind of ledger change
type MovementType string

const (
	// MovementHold payout credited to held on payment
	MovementHold MovementType = "hold"
	// MovementRelease held -> available on completion
	MovementRelease MovementType = "release"
	// MovementRefund held funds discarded when a dispute is resolved for the renter
	MovementRefund MovementType = "refund"
	// MovementReversal already released funds taken back from available
	MovementReversal MovementType = "reversal"
	// MovementWithdrawal available debited for a payout request
	MovementWithdrawal MovementType = "withdrawal"
)

// Delta returns the balance change (available, held) a movement of this type
// and amount applies to a wallet.
func (t MovementType) Delta(amount Cents) (available Cents, held Cents) {
	switch t {
	case MovementHold:
		return 0, amount
	case MovementRelease:
		return amount, -amount
	case MovementRefund:
		return 0, -amount
	case MovementReversal, MovementWithdrawal:
		return -amount, 0
	default:
		return 0, 0
	}
}

// Movement immutable ledger record
type Movement struct {
	ID            uuid.UUID
	WalletID      uuid.UUID
	ReservationID *uuid.UUID
	Type          MovementType
	Amount        Cents
	Description   string
	CreatedAt     time.Time
}

// ReplayBalance folds movements into the balances they imply
func ReplayBalance(movements []Movement) (available Cents, held Cents) {
	for _, m := range movements {
		da, dh := m.Type.Delta(m.Amount)
		available += da
		held += dh
	}
	return available, held
}

// WithdrawalStatus state of a withdrawal request
type WithdrawalStatus string

const (
	WithdrawalPending   WithdrawalStatus = "pending"
	WithdrawalProcessed WithdrawalStatus = "processed"
)

// WithdrawalRequest owner's request to pay out available funds
type WithdrawalRequest struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	WalletID      uuid.UUID
	Amount        Cents
	BankName      string
	AccountNumber string
	Status        WithdrawalStatus
	ProofURL      *string
	ProcessedAt   *time.Time
	CreatedAt     time.Time
}
