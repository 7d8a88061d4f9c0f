package garages_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/domain"
	garageRepo "github.com/m04kA/SMC-GarageService/internal/infra/storage/garage"
	"github.com/m04kA/SMC-GarageService/internal/service/garages"
	"github.com/m04kA/SMC-GarageService/pkg/logger"
	"github.com/m04kA/SMC-GarageService/pkg/ptr"
	"github.com/m04kA/SMC-GarageService/pkg/types"
)

type mockGarageRepo struct {
	garages   map[uuid.UUID]*domain.Garage
	schedules []*domain.WeeklySchedule
	blackouts []*domain.BlackoutDate
	services  []*domain.ExtraService
	images    []*domain.GarageImage
}

var _ garages.GarageRepository = (*mockGarageRepo)(nil)

func newMockGarageRepo() *mockGarageRepo {
	return &mockGarageRepo{garages: map[uuid.UUID]*domain.Garage{}}
}

func (m *mockGarageRepo) Create(_ context.Context, g *domain.Garage) (*domain.Garage, error) {
	g.ID = uuid.New()
	m.garages[g.ID] = g
	return g, nil
}

func (m *mockGarageRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Garage, error) {
	g, ok := m.garages[id]
	if !ok {
		return nil, garageRepo.ErrGarageNotFound
	}
	return g, nil
}

func (m *mockGarageRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*domain.Garage, error) {
	var out []*domain.Garage
	for _, g := range m.garages {
		if g.OwnerID == ownerID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (m *mockGarageRepo) UpsertSchedule(_ context.Context, s *domain.WeeklySchedule) (*domain.WeeklySchedule, error) {
	s.ID = uuid.New()
	m.schedules = append(m.schedules, s)
	return s, nil
}

func (m *mockGarageRepo) AddBlackout(_ context.Context, b *domain.BlackoutDate) (*domain.BlackoutDate, error) {
	for _, existing := range m.blackouts {
		if existing.GarageID == b.GarageID && domain.SameDate(existing.Date, b.Date) {
			return nil, garageRepo.ErrBlackoutExists
		}
	}
	b.ID = uuid.New()
	m.blackouts = append(m.blackouts, b)
	return b, nil
}

func (m *mockGarageRepo) AddService(_ context.Context, s *domain.ExtraService) (*domain.ExtraService, error) {
	s.ID = uuid.New()
	m.services = append(m.services, s)
	return s, nil
}

func (m *mockGarageRepo) AddImage(_ context.Context, img *domain.GarageImage) (*domain.GarageImage, error) {
	img.ID = uuid.New()
	m.images = append(m.images, img)
	return img, nil
}

func (m *mockGarageRepo) ListServices(_ context.Context, garageID uuid.UUID) ([]domain.ExtraService, error) {
	var out []domain.ExtraService
	for _, s := range m.services {
		if s.GarageID == garageID {
			out = append(out, *s)
		}
	}
	return out, nil
}

type recordingCache struct {
	patterns []string
}

func (c *recordingCache) DelPattern(_ context.Context, pattern string) error {
	c.patterns = append(c.patterns, pattern)
	return nil
}

func setup(t *testing.T) (*garages.Service, *mockGarageRepo, *recordingCache, *domain.Garage) {
	t.Helper()

	repo := newMockGarageRepo()
	c := &recordingCache{}
	svc := garages.NewService(repo, c, logger.Nop())

	g, err := svc.Create(context.Background(), &garages.CreateRequest{
		OwnerID:    uuid.New(),
		Name:       "Cochera Centro",
		HourlyRate: ptr.Ptr(domain.Cents(5000)),
	})
	require.NoError(t, err)

	return svc, repo, c, g
}

func TestCreate_AppliesDefaults(t *testing.T) {
	_, _, _, g := setup(t)

	assert.Equal(t, domain.DefaultMinHours, g.MinHours)
	assert.Equal(t, domain.DefaultCleaningBufferMinutes, g.CleaningBufferMinutes)
	assert.True(t, g.HasRate())
}

func TestCreate_Validation(t *testing.T) {
	svc := garages.NewService(newMockGarageRepo(), &recordingCache{}, logger.Nop())

	tests := []struct {
		name    string
		req     garages.CreateRequest
		wantErr error
	}{
		{
			name:    "missing name",
			req:     garages.CreateRequest{HourlyRate: ptr.Ptr(domain.Cents(100))},
			wantErr: garages.ErrNameRequired,
		},
		{
			name:    "no rate",
			req:     garages.CreateRequest{Name: "G"},
			wantErr: garages.ErrRateRequired,
		},
		{
			name:    "negative rate",
			req:     garages.CreateRequest{Name: "G", DailyRate: ptr.Ptr(domain.Cents(-1))},
			wantErr: garages.ErrInvalidRate,
		},
		{
			name:    "zero min hours",
			req:     garages.CreateRequest{Name: "G", DailyRate: ptr.Ptr(domain.Cents(100)), MinHours: ptr.Ptr(0)},
			wantErr: garages.ErrInvalidMinHours,
		},
		{
			name:    "buffer too big",
			req:     garages.CreateRequest{Name: "G", DailyRate: ptr.Ptr(domain.Cents(100)), CleaningBufferMinutes: ptr.Ptr(domain.MaxCleaningBufferMinutes + 1)},
			wantErr: garages.ErrInvalidBuffer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), &tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestSetSchedule_DefaultsAndOwnership(t *testing.T) {
	svc, repo, c, g := setup(t)

	s, err := svc.SetSchedule(context.Background(), &garages.ScheduleRequest{
		ActorID:   g.OwnerID,
		GarageID:  g.ID,
		DayOfWeek: 0,
	})
	require.NoError(t, err)
	assert.True(t, s.IsOpen)
	assert.Equal(t, types.MustTimeOfDay("08:00"), s.OpenTime)
	assert.Equal(t, types.MustTimeOfDay("20:00"), s.CloseTime)
	assert.Len(t, repo.schedules, 1)
	assert.Contains(t, c.patterns, "search:*")

	_, err = svc.SetSchedule(context.Background(), &garages.ScheduleRequest{
		ActorID:   uuid.New(),
		GarageID:  g.ID,
		DayOfWeek: 1,
	})
	assert.ErrorIs(t, err, garages.ErrNotOwner)
	assert.ErrorIs(t, err, domain.ErrAuthorization)

	_, err = svc.SetSchedule(context.Background(), &garages.ScheduleRequest{
		ActorID:   g.OwnerID,
		GarageID:  uuid.New(),
		DayOfWeek: 1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.SetSchedule(context.Background(), &garages.ScheduleRequest{
		ActorID:   g.OwnerID,
		GarageID:  g.ID,
		DayOfWeek: 2,
		OpenTime:  ptr.Ptr("20:00"),
		CloseTime: ptr.Ptr("08:00"),
	})
	assert.ErrorIs(t, err, garages.ErrInvalidHours)

	_, err = svc.SetSchedule(context.Background(), &garages.ScheduleRequest{
		ActorID:   g.OwnerID,
		GarageID:  g.ID,
		DayOfWeek: 7,
	})
	assert.ErrorIs(t, err, garages.ErrInvalidDayOfWeek)
}

func TestBlockDate(t *testing.T) {
	svc, _, c, g := setup(t)

	b, err := svc.BlockDate(context.Background(), &garages.BlackoutRequest{
		ActorID:  g.OwnerID,
		GarageID: g.ID,
		Date:     "2026-03-01",
		Reason:   ptr.Ptr("maintenance"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01", b.Date.Format(domain.DateFormat))
	assert.Contains(t, c.patterns, "search:2026-03-01:*")

	_, err = svc.BlockDate(context.Background(), &garages.BlackoutRequest{
		ActorID:  g.OwnerID,
		GarageID: g.ID,
		Date:     "2026-03-01",
	})
	assert.ErrorIs(t, err, garages.ErrBlackoutExists)

	_, err = svc.BlockDate(context.Background(), &garages.BlackoutRequest{
		ActorID:  g.OwnerID,
		GarageID: g.ID,
		Date:     "01/03/2026",
	})
	assert.ErrorIs(t, err, garages.ErrInvalidDate)
}

func TestAddService_PerDayDefault(t *testing.T) {
	svc, _, _, g := setup(t)

	s, err := svc.AddService(context.Background(), &garages.ServiceRequest{
		ActorID:  g.OwnerID,
		GarageID: g.ID,
		Name:     "Lavado",
		Price:    1500,
	})
	require.NoError(t, err)
	assert.True(t, s.PerDay)

	details, err := svc.Get(context.Background(), g.ID)
	require.NoError(t, err)
	assert.Len(t, details.Services, 1)

	_, err = svc.AddService(context.Background(), &garages.ServiceRequest{
		ActorID:  g.OwnerID,
		GarageID: g.ID,
		Name:     "Lavado",
		Price:    -1,
	})
	assert.ErrorIs(t, err, garages.ErrInvalidPrice)
}

func TestAddImage(t *testing.T) {
	svc, repo, _, g := setup(t)

	_, err := svc.AddImage(context.Background(), &garages.ImageRequest{
		ActorID:  g.OwnerID,
		GarageID: g.ID,
		URL:      "https://cdn/garage.jpg",
	})
	require.NoError(t, err)
	assert.Len(t, repo.images, 1)

	_, err = svc.AddImage(context.Background(), &garages.ImageRequest{
		ActorID:  uuid.New(),
		GarageID: g.ID,
		URL:      "https://cdn/garage.jpg",
	})
	assert.ErrorIs(t, err, garages.ErrNotOwner)
}
