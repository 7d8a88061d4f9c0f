// Package pricing computes the price breakdown of a reservation. All amounts
// are integer cents and commission + owner payout always equals the total.
package pricing

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/pkg/types"
)

// ExtraSelection услуга, выбранная арендатором. Quantity 0 означает 1
type ExtraSelection struct {
	ServiceID uuid.UUID
	Quantity  int
}

// Quote разбивка стоимости бронирования
type Quote struct {
	ChargeMode  domain.ChargeMode
	Subtotal    domain.Cents
	ServicesSum domain.Cents
	Total       domain.Cents
	Commission  domain.Cents
	OwnerPayout domain.Cents
	Services    []domain.ReservationService
}

// Calculator калькулятор стоимости
type Calculator struct {
	commissionPercent int64
	extrasPolicy      domain.ExtrasPolicy
}

// NewCalculator создает калькулятор с процентом комиссии платформы и политикой
// обработки неизвестных услуг
func NewCalculator(commissionPercent int64, extrasPolicy domain.ExtrasPolicy) *Calculator {
	return &Calculator{
		commissionPercent: commissionPercent,
		extrasPolicy:      extrasPolicy,
	}
}

// Quote считает стоимость набора окон (по одному на дату) в гараже g.
//
// Почасовой тариф приоритетнее дневного: окно стоит rate * минуты / 60
// с округлением до цента. При дневном тарифе каждая дата стоит rate целиком.
// Доп. услуги считаются один раз на бронирование: цена каталога * количество.
func (c *Calculator) Quote(g *domain.Garage, windows []types.Interval, catalog []domain.ExtraService, extras []ExtraSelection) (*Quote, error) {
	if len(windows) == 0 {
		return nil, ErrNoItems
	}
	if !g.HasRate() {
		return nil, ErrNoRate
	}

	q := &Quote{ChargeMode: chargeMode(g)}

	for _, w := range windows {
		itemPrice, err := c.priceWindow(g, q.ChargeMode, w)
		if err != nil {
			return nil, err
		}
		q.Subtotal += itemPrice
	}

	services, sum, err := c.priceExtras(catalog, extras)
	if err != nil {
		return nil, err
	}
	q.Services = services
	q.ServicesSum = sum

	q.Total = q.Subtotal + q.ServicesSum
	q.Commission = q.Total.Percent(c.commissionPercent)
	q.OwnerPayout = q.Total - q.Commission

	return q, nil
}

func chargeMode(g *domain.Garage) domain.ChargeMode {
	if g.HourlyRate != nil && *g.HourlyRate > 0 {
		return domain.ChargePerHour
	}
	return domain.ChargePerDay
}

func (c *Calculator) priceWindow(g *domain.Garage, mode domain.ChargeMode, w types.Interval) (domain.Cents, error) {
	minutes := w.DurationMinutes()
	if minutes <= 0 {
		return 0, ErrInvalidWindow
	}

	// minutes < minHours*60 эквивалентно часы < минимум без дробной арифметики
	if minutes < g.MinHours*60 {
		return 0, fmt.Errorf("%w: minimum is %d h, got %s-%s", ErrBelowMinimumHours, g.MinHours, w.Start, w.End)
	}

	if mode == domain.ChargePerHour {
		rate := int64(*g.HourlyRate)
		return domain.Cents((rate*int64(minutes) + 30) / 60), nil
	}

	return *g.DailyRate, nil
}

func (c *Calculator) priceExtras(catalog []domain.ExtraService, extras []ExtraSelection) ([]domain.ReservationService, domain.Cents, error) {
	byID := make(map[uuid.UUID]domain.ExtraService, len(catalog))
	for _, s := range catalog {
		byID[s.ID] = s
	}

	services := make([]domain.ReservationService, 0, len(extras))
	var sum domain.Cents

	for _, e := range extras {
		quantity := e.Quantity
		if quantity == 0 {
			quantity = domain.DefaultServiceQuantity
		}
		if quantity < 0 {
			return nil, 0, ErrInvalidQuantity
		}

		s, ok := byID[e.ServiceID]
		if !ok {
			if c.extrasPolicy == domain.ExtrasStrict {
				return nil, 0, fmt.Errorf("%w: %s", ErrUnknownService, e.ServiceID)
			}
			continue
		}

		sum += s.Price * domain.Cents(quantity)
		services = append(services, domain.ReservationService{
			ServiceID:   s.ID,
			Quantity:    quantity,
			AgreedPrice: s.Price,
		})
	}

	return services, sum, nil
}
