package create_reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-GarageService/internal/auth"
	"github.com/m04kA/SMC-GarageService/internal/domain"
	createReservation "github.com/m04kA/SMC-GarageService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-GarageService/pkg/logger"
)

type stubUseCase struct {
	got *createReservation.Request
	err error
}

func (s *stubUseCase) Execute(_ context.Context, req *createReservation.Request) (*domain.Reservation, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Reservation{
		ID:          uuid.New(),
		RenterID:    req.RenterID,
		GarageID:    req.GarageID,
		Status:      domain.ReservationPending,
		Total:       10000,
		Commission:  1000,
		OwnerPayout: 9000,
	}, nil
}

func post(h *Handler, actor *auth.Actor, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	req.RemoteAddr = "198.51.100.4:4000"
	if actor != nil {
		req = req.WithContext(auth.WithActor(req.Context(), actor))
	}
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_SingleDateBody(t *testing.T) {
	uc := &stubUseCase{}
	h := NewHandler(uc, logger.Nop())
	actor := &auth.Actor{ID: uuid.New(), Verified: true}
	garageID := uuid.New()

	rec := post(h, actor, fmt.Sprintf(`{
		"id_garaje": %q,
		"fecha": "2026-03-01", "hora_inicio": "10:00", "hora_fin": "12:00",
		"servicios_extra": [{"id_servicio": %q, "cantidad": 2}],
		"acepto_terminos_responsabilidad": true
	}`, garageID, uuid.New()))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, actor.ID, uc.got.RenterID)
	assert.Equal(t, garageID, uc.got.GarageID)
	assert.Equal(t, []createReservation.DateWindow{{Date: "2026-03-01", StartTime: "10:00", EndTime: "12:00"}}, uc.got.Dates)
	require.Len(t, uc.got.Extras, 1)
	assert.Equal(t, 2, uc.got.Extras[0].Quantity)
	assert.True(t, uc.got.WaiverAccepted)
	assert.Equal(t, "198.51.100.4", uc.got.ClientIP)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, 100.0, body["total"])
	assert.Equal(t, 90.0, body["owner_payout"])
}

func TestHandle_MultiDateBody(t *testing.T) {
	uc := &stubUseCase{}
	h := NewHandler(uc, logger.Nop())

	rec := post(h, &auth.Actor{ID: uuid.New()}, fmt.Sprintf(`{
		"id_garaje": %q,
		"fechas": [
			{"fecha": "2026-03-01", "hora_inicio": "10:00", "hora_fin": "12:00"},
			{"fecha": "2026-03-02", "hora_inicio": "09:00", "hora_fin": "11:00"}
		],
		"acepto_terminos_responsabilidad": true
	}`, uuid.New()))

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, uc.got.Dates, 2)
}

func TestHandle_ErrorKinds(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"waiver", createReservation.ErrWaiverRequired, http.StatusBadRequest},
		{"garage", createReservation.ErrGarageNotFound, http.StatusNotFound},
		{"own garage", createReservation.ErrOwnGarage, http.StatusBadRequest},
		{"slot taken", createReservation.ErrSlotUnavailable, http.StatusConflict},
		{"storage", createReservation.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, logger.Nop())
			rec := post(h, &auth.Actor{ID: uuid.New()}, fmt.Sprintf(`{"id_garaje": %q}`, uuid.New()))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestHandle_BadRequests(t *testing.T) {
	h := NewHandler(&stubUseCase{}, logger.Nop())

	assert.Equal(t, http.StatusUnauthorized, post(h, nil, `{}`).Code)
	assert.Equal(t, http.StatusBadRequest, post(h, &auth.Actor{ID: uuid.New()}, `{not json`).Code)
	assert.Equal(t, http.StatusBadRequest, post(h, &auth.Actor{ID: uuid.New()}, `{}`).Code)
}
