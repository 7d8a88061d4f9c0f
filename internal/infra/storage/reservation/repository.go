package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/pkg/dbmetrics"
	"github.com/m04kA/SMC-GarageService/pkg/psqlbuilder"
)

var reservationColumns = []string{
	"id",
	"renter_id",
	"garage_id",
	"owner_id",
	"status",
	"charge_mode",
	"subtotal",
	"services_sum",
	"total",
	"commission",
	"owner_payout",
	"initial_message",
	"waiver_accepted",
	"waiver_version",
	"acceptance_ip",
	"created_at",
	"updated_at",
}

// Repository репозиторий бронирований с датами, услугами, оплатами и фотофиксацией
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование вместе с датами и выбранными услугами.
// Вызывается внутри транзакции usecase, иначе вставки не атомарны.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"renter_id",
			"garage_id",
			"owner_id",
			"status",
			"charge_mode",
			"subtotal",
			"services_sum",
			"total",
			"commission",
			"owner_payout",
			"initial_message",
			"waiver_accepted",
			"waiver_version",
			"acceptance_ip",
		).
		Values(
			res.RenterID,
			res.GarageID,
			res.OwnerID,
			res.Status,
			res.ChargeMode,
			res.Subtotal,
			res.ServicesSum,
			res.Total,
			res.Commission,
			res.OwnerPayout,
			res.InitialMessage,
			res.WaiverAccepted,
			res.WaiverVersion,
			res.AcceptanceIP,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &res.CreatedAt, &res.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	for i := range res.Dates {
		d := &res.Dates[i]
		d.ReservationID = res.ID

		query, args, err := psqlbuilder.Insert("reservation_dates").
			Columns("reservation_id", "garage_id", "date", "start_time", "end_time", "status").
			Values(res.ID, res.GarageID, d.Date.Format(domain.DateFormat), d.StartTime, d.EndTime, d.Status).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build date insert query: %w", ErrBuildQuery, err)
		}

		if err := executor.QueryRowContext(ctx, query, args...).Scan(&d.ID); err != nil {
			return nil, fmt.Errorf("%w: Create - execute date insert: %w", ErrExecQuery, err)
		}
	}

	for i := range res.Services {
		s := &res.Services[i]
		s.ReservationID = res.ID

		query, args, err := psqlbuilder.Insert("reservation_services").
			Columns("reservation_id", "service_id", "quantity", "agreed_price").
			Values(res.ID, s.ServiceID, s.Quantity, s.AgreedPrice).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build service insert query: %w", ErrBuildQuery, err)
		}

		if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID); err != nil {
			return nil, fmt.Errorf("%w: Create - execute service insert: %w", ErrExecQuery, err)
		}
	}

	return res, nil
}

// GetByID получает бронирование с датами и услугами.
// Внутри транзакции строка бронирования блокируется (FOR UPDATE).
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(reservationColumns...).From("reservations").Where(squirrel.Eq{"id": id})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan: %w", ErrScanRow, err)
	}

	if err := r.loadDetails(ctx, []*domain.Reservation{res}); err != nil {
		return nil, err
	}

	return res, nil
}

// ListByRenter возвращает бронирования арендатора, новые первыми
func (r *Repository) ListByRenter(ctx context.Context, renterID uuid.UUID) ([]*domain.Reservation, error) {
	return r.list(ctx, "ListByRenter", squirrel.Eq{"renter_id": renterID})
}

// ListByOwner возвращает бронирования гаражей владельца, новые первыми
func (r *Repository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Reservation, error) {
	return r.list(ctx, "ListByOwner", squirrel.Eq{"owner_id": ownerID})
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Eq) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(where).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan: %w", ErrScanRow, op, err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %w", ErrScanRow, op, err)
	}

	if err := r.loadDetails(ctx, reservations); err != nil {
		return nil, err
	}

	return reservations, nil
}

// UpdateStatus переводит бронирование из статуса from в статус to.
// Если текущий статус отличается от from, возвращает ErrStatusMismatch.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrStatusMismatch
	}

	return nil
}

// UpdateDateStatus переводит дату бронирования из from в to и проставляет
// время check-in или check-out в зависимости от целевого статуса
func (r *Repository) UpdateDateStatus(ctx context.Context, dateID uuid.UUID, from, to domain.LineItemStatus, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Update("reservation_dates").
		Set("status", to).
		Where(squirrel.Eq{"id": dateID, "status": from})

	switch to {
	case domain.LineItemInProgress:
		builder = builder.Set("check_in_at", at)
	case domain.LineItemCompleted:
		builder = builder.Set("check_out_at", at)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateDateStatus - build update query: %w", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateDateStatus - execute update: %w", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateDateStatus - get rows affected: %w", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrStatusMismatch
	}

	return nil
}

// CreatePaymentProof сохраняет подтверждение оплаты
func (r *Repository) CreatePaymentProof(ctx context.Context, p *domain.PaymentProof) (*domain.PaymentProof, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("payment_proofs").
		Columns("reservation_id", "amount", "method", "image_url", "transaction_id", "status").
		Values(p.ReservationID, p.Amount, p.Method, p.ImageURL, p.TransactionID, p.Status).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreatePaymentProof - build insert query: %w", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreatePaymentProof - execute insert: %w", ErrExecQuery, err)
	}

	return p, nil
}

// CreateEvidence сохраняет фотофиксацию check-in / check-out
func (r *Repository) CreateEvidence(ctx context.Context, e *domain.Evidence) (*domain.Evidence, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservation_evidence").
		Columns("reservation_date_id", "moment", "photo_url", "comments").
		Values(e.ReservationDateID, e.Moment, e.PhotoURL, e.Comments).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateEvidence - build insert query: %w", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&e.ID, &e.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: CreateEvidence - execute insert: %w", ErrExecQuery, err)
	}

	return e, nil
}

// loadDetails подгружает даты и услуги для набора бронирований
func (r *Repository) loadDetails(ctx context.Context, reservations []*domain.Reservation) error {
	if len(reservations) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	ids := make([]uuid.UUID, 0, len(reservations))
	byID := make(map[uuid.UUID]*domain.Reservation, len(reservations))
	for _, res := range reservations {
		res.Dates = []domain.ReservationDate{}
		res.Services = []domain.ReservationService{}
		ids = append(ids, res.ID)
		byID[res.ID] = res
	}

	query, args, err := psqlbuilder.Select(
		"id", "reservation_id", "date", "start_time", "end_time", "status", "check_in_at", "check_out_at",
	).
		From("reservation_dates").
		Where(squirrel.Eq{"reservation_id": ids}).
		OrderBy("date", "start_time").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadDetails - build dates query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadDetails - execute dates query: %w", ErrExecQuery, err)
	}
	for rows.Next() {
		var d domain.ReservationDate
		if err := rows.Scan(&d.ID, &d.ReservationID, &d.Date, &d.StartTime, &d.EndTime, &d.Status, &d.CheckInAt, &d.CheckOutAt); err != nil {
			rows.Close()
			return fmt.Errorf("%w: loadDetails - scan date: %w", ErrScanRow, err)
		}
		if res, ok := byID[d.ReservationID]; ok {
			res.Dates = append(res.Dates, d)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadDetails - dates iteration: %w", ErrScanRow, err)
	}

	query, args, err = psqlbuilder.Select("id", "reservation_id", "service_id", "quantity", "agreed_price").
		From("reservation_services").
		Where(squirrel.Eq{"reservation_id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadDetails - build services query: %w", ErrBuildQuery, err)
	}

	rows, err = executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadDetails - execute services query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.ReservationService
		if err := rows.Scan(&s.ID, &s.ReservationID, &s.ServiceID, &s.Quantity, &s.AgreedPrice); err != nil {
			return fmt.Errorf("%w: loadDetails - scan service: %w", ErrScanRow, err)
		}
		if res, ok := byID[s.ReservationID]; ok {
			res.Services = append(res.Services, s)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadDetails - services iteration: %w", ErrScanRow, err)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	err := row.Scan(
		&res.ID,
		&res.RenterID,
		&res.GarageID,
		&res.OwnerID,
		&res.Status,
		&res.ChargeMode,
		&res.Subtotal,
		&res.ServicesSum,
		&res.Total,
		&res.Commission,
		&res.OwnerPayout,
		&res.InitialMessage,
		&res.WaiverAccepted,
		&res.WaiverVersion,
		&res.AcceptanceIP,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
