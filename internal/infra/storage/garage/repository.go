package garage

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

var garageColumns = []string{
	"id",
	"owner_id",
	"name",
	"description",
	"address",
	"latitude",
	"longitude",
	"hourly_rate",
	"daily_rate",
	"min_hours",
	"cleaning_buffer_minutes",
	"has_wifi",
	"has_bathroom",
	"has_electricity",
	"has_table",
	"created_at",
	"updated_at",
}

// Repository репозиторий гаражей и их календаря
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория гаражей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает гараж
func (r *Repository) Create(ctx context.Context, g *domain.Garage) (*domain.Garage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("garages").
		Columns(
			"owner_id",
			"name",
			"description",
			"address",
			"latitude",
			"longitude",
			"hourly_rate",
			"daily_rate",
			"min_hours",
			"cleaning_buffer_minutes",
			"has_wifi",
			"has_bathroom",
			"has_electricity",
			"has_table",
		).
		Values(
			g.OwnerID,
			g.Name,
			g.Description,
			g.Address,
			g.Latitude,
			g.Longitude,
			g.HourlyRate,
			g.DailyRate,
			g.MinHours,
			g.CleaningBufferMinutes,
			g.Amenities.Wifi,
			g.Amenities.Bathroom,
			g.Amenities.Electricity,
			g.Amenities.Table,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %w", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	return g, nil
}

// GetByID получает гараж по ID.
// Внутри транзакции строка блокируется (FOR UPDATE), что сериализует
// параллельные бронирования одного гаража.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Garage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(garageColumns...).From("garages").Where(squirrel.Eq{"id": id})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %w", ErrBuildQuery, err)
	}

	g, err := scanGarage(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrGarageNotFound
		}
		return nil, fmt.Errorf("%w: GetByID - scan: %w", ErrScanRow, err)
	}

	return g, nil
}

// ListByOwner возвращает гаражи владельца
func (r *Repository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Garage, error) {
	return r.listGarages(ctx, "ListByOwner", squirrel.Eq{"owner_id": ownerID})
}

func (r *Repository) listGarages(ctx context.Context, op string, where squirrel.Sqlizer) ([]*domain.Garage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(garageColumns...).From("garages").OrderBy("created_at")
	if where != nil {
		builder = builder.Where(where)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %w", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute select: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	garages := make([]*domain.Garage, 0)
	for rows.Next() {
		g, err := scanGarage(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan: %w", ErrScanRow, op, err)
		}
		garages = append(garages, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %w", ErrScanRow, op, err)
	}

	return garages, nil
}

// UpsertSchedule создает или заменяет расписание на день недели
func (r *Repository) UpsertSchedule(ctx context.Context, s *domain.WeeklySchedule) (*domain.WeeklySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("garage_schedules").
		Columns("garage_id", "day_of_week", "is_open", "open_time", "close_time").
		Values(s.GarageID, s.DayOfWeek, s.IsOpen, s.OpenTime, s.CloseTime).
		Suffix(`ON CONFLICT (garage_id, day_of_week) DO UPDATE
			SET is_open = EXCLUDED.is_open, open_time = EXCLUDED.open_time, close_time = EXCLUDED.close_time
			RETURNING id`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpsertSchedule - build insert query: %w", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID); err != nil {
		return nil, fmt.Errorf("%w: UpsertSchedule - execute insert: %w", ErrExecQuery, err)
	}

	return s, nil
}

// AddBlackout блокирует календарный день. Повтор возвращает ErrBlackoutExists
func (r *Repository) AddBlackout(ctx context.Context, b *domain.BlackoutDate) (*domain.BlackoutDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("garage_blackout_dates").
		Columns("garage_id", "date", "reason").
		Values(b.GarageID, b.Date.Format(domain.DateFormat), b.Reason).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: AddBlackout - build insert query: %w", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&b.ID); err != nil {
		if psqlbuilder.IsUniqueViolation(err) {
			return nil, ErrBlackoutExists
		}
		return nil, fmt.Errorf("%w: AddBlackout - execute insert: %w", ErrExecQuery, err)
	}

	return b, nil
}

// AddService добавляет дополнительную услугу в каталог гаража
func (r *Repository) AddService(ctx context.Context, s *domain.ExtraService) (*domain.ExtraService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("garage_services").
		Columns("garage_id", "name", "price", "per_day").
		Values(s.GarageID, s.Name, s.Price, s.PerDay).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: AddService - build insert query: %w", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&s.ID); err != nil {
		return nil, fmt.Errorf("%w: AddService - execute insert: %w", ErrExecQuery, err)
	}

	return s, nil
}

// AddImage добавляет фото гаража
func (r *Repository) AddImage(ctx context.Context, img *domain.GarageImage) (*domain.GarageImage, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("garage_images").
		Columns("garage_id", "url").
		Values(img.GarageID, img.URL).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: AddImage - build insert query: %w", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&img.ID, &img.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: AddImage - execute insert: %w", ErrExecQuery, err)
	}

	return img, nil
}

// ListServices возвращает каталог дополнительных услуг гаража
func (r *Repository) ListServices(ctx context.Context, garageID uuid.UUID) ([]domain.ExtraService, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "garage_id", "name", "price", "per_day").
		From("garage_services").
		Where(squirrel.Eq{"garage_id": garageID}).
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	services := make([]domain.ExtraService, 0)
	for rows.Next() {
		var s domain.ExtraService
		if err := rows.Scan(&s.ID, &s.GarageID, &s.Name, &s.Price, &s.PerDay); err != nil {
			return nil, fmt.Errorf("%w: ListServices - scan: %w", ErrScanRow, err)
		}
		services = append(services, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListServices - rows iteration: %w", ErrScanRow, err)
	}

	return services, nil
}

// GetCalendar собирает календарь одного гаража на дату
func (r *Repository) GetCalendar(ctx context.Context, garageID uuid.UUID, date time.Time) (*domain.GarageCalendar, error) {
	g, err := r.GetByID(ctx, garageID)
	if err != nil {
		return nil, err
	}

	calendars, err := r.assembleCalendars(ctx, []*domain.Garage{g}, date)
	if err != nil {
		return nil, err
	}

	return calendars[0], nil
}

// ListCalendars собирает календари всех гаражей на дату
func (r *Repository) ListCalendars(ctx context.Context, date time.Time) ([]*domain.GarageCalendar, error) {
	garages, err := r.listGarages(ctx, "ListCalendars", nil)
	if err != nil {
		return nil, err
	}
	if len(garages) == 0 {
		return []*domain.GarageCalendar{}, nil
	}

	return r.assembleCalendars(ctx, garages, date)
}

// assembleCalendars подгружает расписание на день недели, блокировки и занятые
// интервалы на дату и фото для набора гаражей (по одному запросу на сущность)
func (r *Repository) assembleCalendars(ctx context.Context, garages []*domain.Garage, date time.Time) ([]*domain.GarageCalendar, error) {
	ids := make([]uuid.UUID, 0, len(garages))
	byID := make(map[uuid.UUID]*domain.GarageCalendar, len(garages))
	calendars := make([]*domain.GarageCalendar, 0, len(garages))

	for _, g := range garages {
		cal := &domain.GarageCalendar{
			Garage:    g,
			Schedules: []domain.WeeklySchedule{},
			Blackouts: []domain.BlackoutDate{},
			Booked:    []domain.BookedSlot{},
			Images:    []domain.GarageImage{},
		}
		ids = append(ids, g.ID)
		byID[g.ID] = cal
		calendars = append(calendars, cal)
	}

	if err := r.loadSchedules(ctx, ids, int(date.Weekday()), byID); err != nil {
		return nil, err
	}
	if err := r.loadBlackouts(ctx, ids, date, byID); err != nil {
		return nil, err
	}
	if err := r.loadBooked(ctx, ids, date, byID); err != nil {
		return nil, err
	}
	if err := r.loadImages(ctx, ids, byID); err != nil {
		return nil, err
	}

	return calendars, nil
}

func (r *Repository) loadSchedules(ctx context.Context, ids []uuid.UUID, dayOfWeek int, byID map[uuid.UUID]*domain.GarageCalendar) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "garage_id", "day_of_week", "is_open", "open_time", "close_time").
		From("garage_schedules").
		Where(squirrel.Eq{"garage_id": ids, "day_of_week": dayOfWeek}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadSchedules - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadSchedules - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var s domain.WeeklySchedule
		if err := rows.Scan(&s.ID, &s.GarageID, &s.DayOfWeek, &s.IsOpen, &s.OpenTime, &s.CloseTime); err != nil {
			return fmt.Errorf("%w: loadSchedules - scan: %w", ErrScanRow, err)
		}
		if cal, ok := byID[s.GarageID]; ok {
			cal.Schedules = append(cal.Schedules, s)
		}
	}

	return rows.Err()
}

func (r *Repository) loadBlackouts(ctx context.Context, ids []uuid.UUID, date time.Time, byID map[uuid.UUID]*domain.GarageCalendar) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "garage_id", "date", "reason").
		From("garage_blackout_dates").
		Where(squirrel.Eq{"garage_id": ids, "date": date.Format(domain.DateFormat)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadBlackouts - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadBlackouts - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var b domain.BlackoutDate
		if err := rows.Scan(&b.ID, &b.GarageID, &b.Date, &b.Reason); err != nil {
			return fmt.Errorf("%w: loadBlackouts - scan: %w", ErrScanRow, err)
		}
		if cal, ok := byID[b.GarageID]; ok {
			cal.Blackouts = append(cal.Blackouts, b)
		}
	}

	return rows.Err()
}

// loadBooked загружает интервалы бронирований, которые занимают гараж
// (все статусы кроме отмененных и возвращенных)
func (r *Repository) loadBooked(ctx context.Context, ids []uuid.UUID, date time.Time, byID map[uuid.UUID]*domain.GarageCalendar) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	nonBlocking := make([]string, 0, len(domain.NonBlockingStatuses))
	for _, s := range domain.NonBlockingStatuses {
		nonBlocking = append(nonBlocking, string(s))
	}

	query, args, err := psqlbuilder.Select("rd.garage_id", "rd.reservation_id", "r.status", "rd.date", "rd.start_time", "rd.end_time").
		From("reservation_dates rd").
		Join("reservations r ON r.id = rd.reservation_id").
		Where(squirrel.Eq{"rd.garage_id": ids, "rd.date": date.Format(domain.DateFormat)}).
		Where(squirrel.NotEq{"r.status": nonBlocking}).
		OrderBy("rd.start_time").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadBooked - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadBooked - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			garageID uuid.UUID
			slot     domain.BookedSlot
		)
		if err := rows.Scan(
			&garageID,
			&slot.ReservationID,
			&slot.ReservationStatus,
			&slot.Date,
			&slot.Window.Start,
			&slot.Window.End,
		); err != nil {
			return fmt.Errorf("%w: loadBooked - scan: %w", ErrScanRow, err)
		}
		if cal, ok := byID[garageID]; ok {
			cal.Booked = append(cal.Booked, slot)
		}
	}

	return rows.Err()
}

func (r *Repository) loadImages(ctx context.Context, ids []uuid.UUID, byID map[uuid.UUID]*domain.GarageCalendar) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "garage_id", "url", "created_at").
		From("garage_images").
		Where(squirrel.Eq{"garage_id": ids}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadImages - build select query: %w", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadImages - execute select: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var img domain.GarageImage
		if err := rows.Scan(&img.ID, &img.GarageID, &img.URL, &img.CreatedAt); err != nil {
			return fmt.Errorf("%w: loadImages - scan: %w", ErrScanRow, err)
		}
		if cal, ok := byID[img.GarageID]; ok {
			cal.Images = append(cal.Images, img)
		}
	}

	return rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGarage(row rowScanner) (*domain.Garage, error) {
	var g domain.Garage
	err := row.Scan(
		&g.ID,
		&g.OwnerID,
		&g.Name,
		&g.Description,
		&g.Address,
		&g.Latitude,
		&g.Longitude,
		&g.HourlyRate,
		&g.DailyRate,
		&g.MinHours,
		&g.CleaningBufferMinutes,
		&g.Amenities.Wifi,
		&g.Amenities.Bathroom,
		&g.Amenities.Electricity,
		&g.Amenities.Table,
		&g.CreatedAt,
		&g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}
