// Package usecasetest provides in-memory stores with the same conditional
// update semantics as the Postgres repositories, for usecase tests.
package usecasetest

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/reservation"
	ticketRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/ticket"
	walletRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/wallet"
	withdrawalRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/withdrawal"
)

// Tx выполняет fn без транзакции. Err, если задан, возвращается вместо вызова fn
type Tx struct {
	Err error
}

// Do implements the default-isolation transaction
func (tx Tx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if tx.Err != nil {
		return tx.Err
	}
	return fn(ctx)
}

// DoSerializable implements the serializable transaction
func (tx Tx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return tx.Do(ctx, fn)
}

// Metrics запоминает переходы и движения
type Metrics struct {
	mu          sync.Mutex
	Transitions []string
	Movements   []string
}

// ObserveTransition records a reservation transition
func (m *Metrics) ObserveTransition(status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Transitions = append(m.Transitions, status)
}

// ObserveMovement records a ledger movement
func (m *Metrics) ObserveMovement(movementType string, _ int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Movements = append(m.Movements, movementType)
}

// Reservations хранилище бронирований в памяти
type Reservations struct {
	mu       sync.Mutex
	byID     map[uuid.UUID]*domain.Reservation
	Proofs   []domain.PaymentProof
	Evidence []domain.Evidence
}

// NewReservations создает пустое хранилище
func NewReservations() *Reservations {
	return &Reservations{byID: map[uuid.UUID]*domain.Reservation{}}
}

// Put сохраняет бронирование, проставляя недостающие ID
func (s *Reservations) Put(res *domain.Reservation) *domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()

	if res.ID == uuid.Nil {
		res.ID = uuid.New()
	}
	for i := range res.Dates {
		if res.Dates[i].ID == uuid.Nil {
			res.Dates[i].ID = uuid.New()
		}
		res.Dates[i].ReservationID = res.ID
	}
	s.byID[res.ID] = clone(res)
	return clone(res)
}

// Create implements reservation creation
func (s *Reservations) Create(_ context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	return s.Put(res), nil
}

// GetByID returns a copy of the reservation
func (s *Reservations) GetByID(_ context.Context, id uuid.UUID) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.byID[id]
	if !ok {
		return nil, reservationRepo.ErrReservationNotFound
	}
	return clone(res), nil
}

// Status returns the stored status
func (s *Reservations) Status(id uuid.UUID) domain.ReservationStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byID[id].Status
}

// UpdateStatus conditional status transition
func (s *Reservations) UpdateStatus(_ context.Context, id uuid.UUID, from, to domain.ReservationStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.byID[id]
	if !ok || res.Status != from {
		return reservationRepo.ErrStatusMismatch
	}
	res.Status = to
	return nil
}

// UpdateDateStatus conditional line item transition
func (s *Reservations) UpdateDateStatus(_ context.Context, dateID uuid.UUID, from, to domain.LineItemStatus, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, res := range s.byID {
		d, ok := res.FindDate(dateID)
		if !ok {
			continue
		}
		if d.Status != from {
			return reservationRepo.ErrStatusMismatch
		}
		d.Status = to
		switch to {
		case domain.LineItemInProgress:
			d.CheckInAt = &at
		case domain.LineItemCompleted:
			d.CheckOutAt = &at
		}
		return nil
	}
	return reservationRepo.ErrStatusMismatch
}

// CreatePaymentProof stores a payment proof
func (s *Reservations) CreatePaymentProof(_ context.Context, p *domain.PaymentProof) (*domain.PaymentProof, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.New()
	s.Proofs = append(s.Proofs, *p)
	return p, nil
}

// CreateEvidence stores check-in / check-out evidence
func (s *Reservations) CreateEvidence(_ context.Context, e *domain.Evidence) (*domain.Evidence, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = uuid.New()
	s.Evidence = append(s.Evidence, *e)
	return e, nil
}

func clone(res *domain.Reservation) *domain.Reservation {
	cp := *res
	cp.Dates = append([]domain.ReservationDate(nil), res.Dates...)
	cp.Services = append([]domain.ReservationService(nil), res.Services...)
	return &cp
}

// Wallets хранилище кошельков с тем же запретом отрицательного баланса, что и в БД
type Wallets struct {
	mu        sync.Mutex
	byOwner   map[uuid.UUID]*domain.Wallet
	movements map[uuid.UUID][]domain.Movement
}

// NewWallets создает пустое хранилище
func NewWallets() *Wallets {
	return &Wallets{
		byOwner:   map[uuid.UUID]*domain.Wallet{},
		movements: map[uuid.UUID][]domain.Movement{},
	}
}

// EnsureWallet creates a zero wallet if absent
func (s *Wallets) EnsureWallet(_ context.Context, ownerID uuid.UUID) (*domain.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.byOwner[ownerID]
	if !ok {
		w = &domain.Wallet{ID: uuid.New(), OwnerID: ownerID}
		s.byOwner[ownerID] = w
	}
	cp := *w
	return &cp, nil
}

// GetByOwner returns a copy of the wallet
func (s *Wallets) GetByOwner(_ context.Context, ownerID uuid.UUID) (*domain.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.byOwner[ownerID]
	if !ok {
		return nil, walletRepo.ErrWalletNotFound
	}
	cp := *w
	return &cp, nil
}

// ApplyDelta rejects changes that drive a bucket below zero
func (s *Wallets) ApplyDelta(_ context.Context, walletID uuid.UUID, available, held domain.Cents) (*domain.Wallet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range s.byOwner {
		if w.ID != walletID {
			continue
		}
		if w.Available+available < 0 || w.Held+held < 0 {
			return nil, walletRepo.ErrNegativeBalance
		}
		w.Available += available
		w.Held += held
		cp := *w
		return &cp, nil
	}
	return nil, walletRepo.ErrNegativeBalance
}

// InsertMovement appends to the movement log
func (s *Wallets) InsertMovement(_ context.Context, m *domain.Movement) (*domain.Movement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m.ID = uuid.New()
	s.movements[m.WalletID] = append(s.movements[m.WalletID], *m)
	return m, nil
}

// ListMovements returns the log, newest last
func (s *Wallets) ListMovements(_ context.Context, walletID uuid.UUID, limit int) ([]domain.Movement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.movements[walletID]
	if limit > 0 && len(list) > limit {
		list = list[len(list)-limit:]
	}
	return append([]domain.Movement(nil), list...), nil
}

// Balance returns (available, held) of the owner, zeros without a wallet
func (s *Wallets) Balance(ownerID uuid.UUID) (domain.Cents, domain.Cents) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.byOwner[ownerID]
	if !ok {
		return 0, 0
	}
	return w.Available, w.Held
}

// MovementCount number of movements of the owner
func (s *Wallets) MovementCount(ownerID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.byOwner[ownerID]
	if !ok {
		return 0
	}
	return len(s.movements[w.ID])
}

// Tickets хранилище тикетов споров
type Tickets struct {
	mu   sync.Mutex
	byID map[uuid.UUID]*domain.DisputeTicket
}

// NewTickets создает пустое хранилище
func NewTickets() *Tickets {
	return &Tickets{byID: map[uuid.UUID]*domain.DisputeTicket{}}
}

// Create rejects a second open ticket for the same reservation
func (s *Tickets) Create(_ context.Context, t *domain.DisputeTicket) (*domain.DisputeTicket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.byID {
		if existing.ReservationID == t.ReservationID && existing.IsOpen() {
			return nil, ticketRepo.ErrOpenTicketExists
		}
	}
	t.ID = uuid.New()
	cp := *t
	s.byID[t.ID] = &cp
	return t, nil
}

// GetByID returns a copy of the ticket
func (s *Tickets) GetByID(_ context.Context, id uuid.UUID) (*domain.DisputeTicket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byID[id]
	if !ok {
		return nil, ticketRepo.ErrTicketNotFound
	}
	cp := *t
	return &cp, nil
}

// Close conditional open -> closed transition
func (s *Tickets) Close(_ context.Context, id uuid.UUID, status domain.TicketStatus, notes *string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.byID[id]
	if !ok || !t.IsOpen() {
		return ticketRepo.ErrStatusMismatch
	}
	t.Status = status
	t.ResolutionNotes = notes
	t.ClosedAt = &at
	return nil
}

// Withdrawals хранилище заявок на вывод
type Withdrawals struct {
	mu   sync.Mutex
	Items []domain.WithdrawalRequest
}

// Create stores a withdrawal request
func (s *Withdrawals) Create(_ context.Context, w *domain.WithdrawalRequest) (*domain.WithdrawalRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w.ID = uuid.New()
	s.Items = append(s.Items, *w)
	return w, nil
}

// GetByID returns a copy of the request
func (s *Withdrawals) GetByID(_ context.Context, id uuid.UUID) (*domain.WithdrawalRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, w := range s.Items {
		if w.ID == id {
			cp := w
			return &cp, nil
		}
	}
	return nil, withdrawalRepo.ErrWithdrawalNotFound
}
