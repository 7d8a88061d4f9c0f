package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/internal/infra/cache"
	garageRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/garage"
	"github.com/m04kA/SMC-GarageService/internal/service/availability"
	"github.com/m04kA/SMC-GarageService/pkg/txmanager"
	"github.com/m04kA/SMC-GarageService/pkg/types"
)

// UseCase use case для создания бронирования
type UseCase struct {
	garageRepo      GarageRepository
	reservationRepo ReservationRepository
	calculator      PriceCalculator
	txManager       TransactionManager
	cache           SearchCache
	metrics         MetricsRecorder
	logger          Logger
	opts            Options
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	garageRepo GarageRepository,
	reservationRepo ReservationRepository,
	calculator PriceCalculator,
	txManager TransactionManager,
	searchCache SearchCache,
	metrics MetricsRecorder,
	logger Logger,
	opts Options,
) *UseCase {
	if opts.TermsVersion == "" {
		opts.TermsVersion = domain.DefaultTermsVersion
	}

	return &UseCase{
		garageRepo:      garageRepo,
		reservationRepo: reservationRepo,
		calculator:      calculator,
		txManager:       txManager,
		cache:           searchCache,
		metrics:         metrics,
		logger:          logger,
		opts:            opts,
	}
}

// Execute создает бронирование в статусе pending. Ledger не меняется.
// Гараж блокируется на время транзакции, поэтому параллельные бронирования
// одного гаража выполняются по очереди.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Reservation, error) {
	uc.logger.Info("CreateReservation: renter=%s, garage=%s, dates=%d, extras=%d",
		req.RenterID, req.GarageID, len(req.Dates), len(req.Extras))

	// 1. Валидация входных данных
	items, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	windows := make([]types.Interval, 0, len(items))
	for _, item := range items {
		windows = append(windows, item.window)
	}

	var result *domain.Reservation

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем гараж с блокировкой строки
		garage, err := uc.garageRepo.GetByID(txCtx, req.GarageID)
		if err != nil {
			if errors.Is(err, garageRepo.ErrGarageNotFound) {
				uc.logger.Warn("CreateReservation: garage id=%s not found", req.GarageID)
				return ErrGarageNotFound
			}
			uc.logger.Error("CreateReservation: failed to get garage id=%s: %v", req.GarageID, err)
			return fmt.Errorf("%w: get garage: %w", ErrInternal, err)
		}

		if garage.IsOwnedBy(req.RenterID) {
			uc.logger.Warn("CreateReservation: owner=%s tried to book own garage=%s", req.RenterID, garage.ID)
			return ErrOwnGarage
		}

		// 2.2. Каталог услуг гаража
		catalog, err := uc.garageRepo.ListServices(txCtx, garage.ID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to list services of garage=%s: %v", garage.ID, err)
			return fmt.Errorf("%w: list services: %w", ErrInternal, err)
		}

		// 2.3. Считаем стоимость
		quote, err := uc.calculator.Quote(garage, windows, catalog, req.Extras)
		if err != nil {
			uc.logger.Warn("CreateReservation: pricing failed: %v", err)
			return err
		}

		// 2.4. Повторная проверка доступности на момент записи
		if uc.opts.RevalidateAvailability {
			for _, item := range items {
				cal, err := uc.garageRepo.GetCalendar(txCtx, garage.ID, item.date)
				if err != nil {
					uc.logger.Error("CreateReservation: failed to load calendar of garage=%s: %v", garage.ID, err)
					return fmt.Errorf("%w: get calendar: %w", ErrInternal, err)
				}
				if err := availability.Check(cal, item.date, item.window); err != nil {
					uc.logger.Warn("CreateReservation: garage=%s not available on %s %s-%s: %v",
						garage.ID, item.date.Format(domain.DateFormat), item.window.Start, item.window.End, err)
					return fmt.Errorf("%w: %s %s-%s: %w", ErrSlotUnavailable,
						item.date.Format(domain.DateFormat), item.window.Start, item.window.End, err)
				}
			}
		}

		// 2.5. Создаем бронирование со снимком цены
		reservation := &domain.Reservation{
			RenterID:       req.RenterID,
			GarageID:       garage.ID,
			OwnerID:        garage.OwnerID,
			Status:         domain.ReservationPending,
			ChargeMode:     quote.ChargeMode,
			Subtotal:       quote.Subtotal,
			ServicesSum:    quote.ServicesSum,
			Total:          quote.Total,
			Commission:     quote.Commission,
			OwnerPayout:    quote.OwnerPayout,
			InitialMessage: req.InitialMessage,
			WaiverAccepted: true,
			WaiverVersion:  uc.opts.TermsVersion,
			AcceptanceIP:   req.ClientIP,
			Services:       quote.Services,
		}
		for _, item := range items {
			reservation.Dates = append(reservation.Dates, domain.ReservationDate{
				Date:      item.date,
				StartTime: item.window.Start,
				EndTime:   item.window.End,
				Status:    domain.LineItemScheduled,
			})
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: create reservation: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("CreateReservation: concurrent booking of garage=%s: %v", req.GarageID, err)
			return nil, ErrConcurrentUpdate
		}
		return nil, err
	}

	uc.metrics.ObserveTransition(string(domain.ReservationPending))

	// 3. Сбрасываем кэш поиска по затронутым датам
	for _, item := range items {
		pattern := cache.SearchDatePattern(item.date)
		if err := uc.cache.DelPattern(ctx, pattern); err != nil {
			uc.logger.Warn("CreateReservation: failed to invalidate search cache %s: %v", pattern, err)
		}
	}

	uc.logger.Info("CreateReservation: created reservation id=%s total=%s commission=%s payout=%s",
		result.ID, result.Total, result.Commission, result.OwnerPayout)

	return result, nil
}
