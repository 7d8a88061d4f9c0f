package ledger

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
)

// Balance баланс кошелька и последние движения
type Balance struct {
	OwnerID   uuid.UUID
	WalletID  *uuid.UUID // nil, если кошелек еще не создан
	Available domain.Cents
	Held      domain.Cents
	Movements []domain.Movement
}

// Audit результат сверки баланса с журналом
type Audit struct {
	OwnerID           uuid.UUID
	StoredAvailable   domain.Cents
	StoredHeld        domain.Cents
	ReplayedAvailable domain.Cents
	ReplayedHeld      domain.Cents
	Movements         int
	Consistent        bool
}
