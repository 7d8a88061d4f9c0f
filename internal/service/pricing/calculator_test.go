package pricing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	"github.com/m04kA/SMC-GarageService/pkg/ptr"
	"github.com/m04kA/SMC-GarageService/pkg/types"
)

func window(start, end string) types.Interval {
	return types.Interval{Start: types.MustTimeOfDay(start), End: types.MustTimeOfDay(end)}
}

func hourlyGarage(rate domain.Cents, minHours int) *domain.Garage {
	return &domain.Garage{ID: uuid.New(), HourlyRate: ptr.Ptr(rate), MinHours: minHours}
}

func TestQuote_HourlyTwoHours(t *testing.T) {
	c := NewCalculator(10, domain.ExtrasLenient)

	q, err := c.Quote(hourlyGarage(5000, 1), []types.Interval{window("10:00", "12:00")}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.ChargePerHour, q.ChargeMode)
	assert.Equal(t, domain.Cents(10000), q.Subtotal)
	assert.Equal(t, domain.Cents(10000), q.Total)
	assert.Equal(t, domain.Cents(1000), q.Commission)
	assert.Equal(t, domain.Cents(9000), q.OwnerPayout)
}

func TestQuote_FractionalHours(t *testing.T) {
	c := NewCalculator(10, domain.ExtrasLenient)

	q, err := c.Quote(hourlyGarage(5000, 1), []types.Interval{window("14:00", "16:30")}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.Cents(12500), q.Subtotal)
}

func TestQuote_BelowMinimumHours(t *testing.T) {
	c := NewCalculator(10, domain.ExtrasLenient)

	_, err := c.Quote(hourlyGarage(5000, 3), []types.Interval{window("10:00", "12:00")}, nil, nil)

	assert.ErrorIs(t, err, ErrBelowMinimumHours)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestQuote_EmptyWindow(t *testing.T) {
	c := NewCalculator(10, domain.ExtrasLenient)

	_, err := c.Quote(hourlyGarage(5000, 0), []types.Interval{window("10:00", "10:00")}, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestQuote_HourlyTakesPrecedenceOverDaily(t *testing.T) {
	c := NewCalculator(10, domain.ExtrasLenient)
	g := hourlyGarage(1000, 1)
	g.DailyRate = ptr.Ptr(domain.Cents(50000))

	q, err := c.Quote(g, []types.Interval{window("08:00", "10:00")}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.ChargePerHour, q.ChargeMode)
	assert.Equal(t, domain.Cents(2000), q.Subtotal)
}

func TestQuote_DailyPerDate(t *testing.T) {
	c := NewCalculator(10, domain.ExtrasLenient)
	g := &domain.Garage{DailyRate: ptr.Ptr(domain.Cents(30000)), MinHours: 1}

	q, err := c.Quote(g, []types.Interval{window("08:00", "20:00"), window("09:00", "11:00")}, nil, nil)
	require.NoError(t, err)

	assert.Equal(t, domain.ChargePerDay, q.ChargeMode)
	assert.Equal(t, domain.Cents(60000), q.Subtotal)
	assert.Equal(t, domain.Cents(6000), q.Commission)
	assert.Equal(t, domain.Cents(54000), q.OwnerPayout)
}

func TestQuote_Extras(t *testing.T) {
	wash := domain.ExtraService{ID: uuid.New(), Name: "wash", Price: 1500}
	power := domain.ExtraService{ID: uuid.New(), Name: "power", Price: 700}
	catalog := []domain.ExtraService{wash, power}

	extras := []ExtraSelection{
		{ServiceID: wash.ID, Quantity: 2},
		{ServiceID: power.ID},
		{ServiceID: uuid.New(), Quantity: 1},
	}

	t.Run("lenient drops unknown", func(t *testing.T) {
		c := NewCalculator(10, domain.ExtrasLenient)

		q, err := c.Quote(hourlyGarage(5000, 1), []types.Interval{window("10:00", "12:00")}, catalog, extras)
		require.NoError(t, err)

		assert.Equal(t, domain.Cents(3700), q.ServicesSum)
		assert.Equal(t, domain.Cents(13700), q.Total)
		assert.Equal(t, domain.Cents(1370), q.Commission)
		assert.Equal(t, domain.Cents(12330), q.OwnerPayout)
		require.Len(t, q.Services, 2)
		assert.Equal(t, 1, q.Services[1].Quantity)
		assert.Equal(t, domain.Cents(1500), q.Services[0].AgreedPrice)
	})

	t.Run("strict rejects unknown", func(t *testing.T) {
		c := NewCalculator(10, domain.ExtrasStrict)

		_, err := c.Quote(hourlyGarage(5000, 1), []types.Interval{window("10:00", "12:00")}, catalog, extras)
		assert.ErrorIs(t, err, ErrUnknownService)
	})
}

func TestQuote_CommissionPlusPayoutEqualsTotal(t *testing.T) {
	c := NewCalculator(10, domain.ExtrasLenient)

	for _, rate := range []domain.Cents{1, 7, 333, 999, 1234, 4999} {
		for _, w := range []types.Interval{window("10:00", "10:07"), window("10:00", "11:13"), window("00:00", "23:59")} {
			q, err := c.Quote(hourlyGarage(rate, 0), []types.Interval{w}, nil, nil)
			require.NoError(t, err)
			assert.Equal(t, q.Total, q.Commission+q.OwnerPayout)
			assert.GreaterOrEqual(t, int64(q.OwnerPayout), int64(0))
		}
	}
}

func TestQuote_NoItems(t *testing.T) {
	_, err := NewCalculator(10, domain.ExtrasLenient).Quote(hourlyGarage(5000, 1), nil, nil, nil)
	assert.ErrorIs(t, err, ErrNoItems)
}
